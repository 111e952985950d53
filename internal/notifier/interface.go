package notifier

import (
	"adminops/pkg/domain"
	"context"
)

// Notifier emails the admin directory about newly registered users.
//
//go:generate mockgen -package mocknotifier -source=interface.go -destination=mock/mocknotifier.go *
type Notifier interface {
	// Notify composes and sends the registration notification for the given
	// user to every eligible admin. It returns nil when there is nothing to
	// send (no recipients or mail credentials not configured) and an error
	// only when delivery itself failed, so the job queue retries exactly the
	// transient failures.
	Notify(ctx context.Context, user domain.UserAccount) error
}
