package deleter

import (
	"adminops/pkg/domain"
	"context"
)

// Result describes a completed account deletion.
type Result struct {
	// Success is always true on a returned result; failures surface as errors.
	Success bool `json:"success"`
	// Message is a human-readable confirmation naming the removed user.
	Message string `json:"message"`
	// DeletedPendingScanRequests is the number of pending scan requests that
	// were removed together with the account.
	DeletedPendingScanRequests int `json:"deletedPendingScanRequests"`
}

// Deleter removes user accounts on behalf of admins.
//
//go:generate mockgen -package mockdeleter -source=interface.go -destination=mock/mockdeleter.go *
type Deleter interface {
	// DeleteAccount removes the user's authentication identity, the user row
	// and all of the user's pending scan requests. The caller must be present
	// in the admin directory. Completed and reviewed scan requests are kept as
	// historical record.
	DeleteAccount(ctx context.Context, caller domain.AdminID, userID domain.UserID) (*Result, error)
}
