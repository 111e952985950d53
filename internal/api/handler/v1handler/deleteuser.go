package v1handler

import (
	"adminops/pkg/domain"
	"adminops/pkg/serrors"
	"encoding/json"
	"net/http"
)

// DeleteUserRequest is the payload for the account deletion endpoint.
type DeleteUserRequest struct {
	UserID string `json:"userId"`
}

// DeleteUser removes a user account on behalf of the authenticated admin.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DeleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrInvalidArgument, err, "invalid request body"))

		return
	}

	res, err := h.deps.Deleter.DeleteAccount(ctx, GetAdminIDFromContext(ctx), domain.UserID(req.UserID))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, res)
}
