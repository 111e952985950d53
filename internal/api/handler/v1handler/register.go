package v1handler

import (
	"adminops/pkg/domain"
	"adminops/pkg/serrors"
	"encoding/json"
	"net/http"
)

// RegisterUserRequest is the payload for the registration intake. The
// embedded snapshot accepts both field spellings the registration flow has
// used over time.
type RegisterUserRequest struct {
	ID string `json:"id"`

	domain.UserSnapshot
}

// RegisterUser stores a newly registered user and schedules the admin
// notification.
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrInvalidArgument, err, "invalid request body"))

		return
	}

	account, err := h.deps.Registrar.Register(ctx, domain.UserID(req.ID), req.UserSnapshot)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, account)
}
