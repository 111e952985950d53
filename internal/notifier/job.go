package notifier

import (
	"adminops/pkg/domain"

	"github.com/riverqueue/river"
)

// JobArgs contains the arguments for a registration notification job. The
// user fields are captured at registration time so the job does not depend on
// the user row still existing when it runs.
type JobArgs struct {
	// User is the registered account as stored, after field normalization.
	User domain.UserAccount `json:"user"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// NewJobArgs builds the arguments for a notification job with the given retry
// budget.
func NewJobArgs(user domain.UserAccount, maxAttempts int) JobArgs {
	return JobArgs{
		User:        user,
		maxAttempts: maxAttempts,
	}
}

// Kind returns the River job kind used to register and dispatch the notification worker.
func (args JobArgs) Kind() string { return "NotifyAdminOnUserRegister" }

// InsertOpts returns the River options that control how the job is enqueued.
// Every registration gets its own notification, so no uniqueness constraints
// are applied.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}
