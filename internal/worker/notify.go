package worker

import (
	"adminops/internal/notifier"
	"adminops/pkg/logger"
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// NotifyWorker is a River worker that sends registration notification emails.
// The notifier itself decides whether there is anything to send; only real
// delivery failures are returned so the queue retries exactly those.
type NotifyWorker struct {
	river.WorkerDefaults[notifier.JobArgs]

	notifier notifier.Notifier
}

// NewNotifyWorker constructs a NotifyWorker using the provided notifier.
func NewNotifyWorker(notifier notifier.Notifier) *NotifyWorker {
	return &NotifyWorker{
		notifier: notifier,
	}
}

// Work executes a single notification job.
func (w *NotifyWorker) Work(ctx context.Context, job *river.Job[notifier.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("userID", string(job.Args.User.ID)))

	if err := w.notifier.Notify(ctx, job.Args.User); err != nil {
		logger.Error(ctx, "error sending registration notification", zap.Error(err))

		return fmt.Errorf("could not send registration notification: %w", err)
	}

	return nil
}
