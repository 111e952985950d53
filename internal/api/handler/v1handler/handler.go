// Package v1handler implements version 1 of the admin automation HTTP API:
// the registration intake and the account deletion endpoint.
package v1handler

import (
	"adminops/internal/deleter"
	"adminops/internal/registrar"
	"adminops/pkg/logger"
	"adminops/pkg/serrors"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Deps bundles the services the handlers delegate to.
type Deps struct {
	Deleter   deleter.Deleter
	Registrar registrar.Registrar
}

// Handler serves the v1 endpoints.
type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers the v1 endpoints on the given mux. The deletion endpoint
// carries bearer authentication; the registration intake is called by the
// trusted registration flow and authenticated at the network layer.
func (h *Handler) Routes(mux *http.ServeMux, sec *SecHandler) {
	mux.Handle("POST /v1/users", http.HandlerFunc(h.RegisterUser))
	mux.Handle("POST /v1/users/delete", sec.WithBearerAuth(http.HandlerFunc(h.DeleteUser)))
}

// errorResponse is the JSON body returned for all error statuses.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusCode maps semantic error kinds to HTTP statuses.
func statusCode(err error) int {
	switch {
	case errors.Is(err, serrors.ErrAuthenticationRequired):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, serrors.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// clientVisible reports whether the error's kind and message belong in the
// response body. Deletion and identity provider failures stay 500 but are
// reported with their kind and reason so a caller UI can show what went
// wrong; unclassified errors are masked.
func clientVisible(err error) bool {
	if statusCode(err) != http.StatusInternalServerError {
		return true
	}

	return errors.Is(err, serrors.ErrDeletionFailed) || errors.Is(err, serrors.ErrIdentityProvider)
}

// writeError logs the error and writes the mapped status with a JSON body.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	logger.Error(ctx, err.Error())

	code := serrors.ErrInternal.Error()
	message := "internal error"
	if clientVisible(err) {
		var sErr *serrors.Error
		if errors.As(err, &sErr) {
			code = sErr.Kind().Error()
			message = sErr.Message()
		} else {
			code = err.Error()
			message = err.Error()
		}
	}

	writeJSON(ctx, w, statusCode(err), errorResponse{Code: code, Message: message})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "could not write response body", zap.Error(err))
	}
}
