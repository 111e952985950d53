package registrar

import (
	"adminops/internal/config"
	"adminops/internal/notifier"
	"adminops/pkg/domain"
	"adminops/pkg/serrors"
	"adminops/pkg/storage"
	"context"
	"errors"
	"fmt"
)

// Options configure registration handling.
type Options struct {
	// NotifyMaxAttempts is the retry budget for the enqueued notification job.
	NotifyMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		NotifyMaxAttempts: cfg.Notifier.MaxAttempts,
	}
}

// registrar is the concrete implementation of the Registrar interface.
type registrar struct {
	options Options
	storage storage.Storage
}

// Register stores the user and schedules the admin notification in a single
// transaction.
func (r registrar) Register(ctx context.Context,
	id domain.UserID,
	snapshot domain.UserSnapshot) (*domain.UserAccount, error) {
	if id == "" {
		return nil, serrors.With(serrors.ErrInvalidArgument, "user id is required")
	}

	account := snapshot.Normalize(id)

	var stored *domain.UserAccount
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreUsers(ctx, account)
		if err != nil {
			return fmt.Errorf("could not store user: %w", err)
		}
		if len(res) == 0 {
			return errors.New("storing the user returned no rows")
		}
		stored = &res[0]

		if _, err := tx.AddJob(ctx,
			notifier.NewJobArgs(*stored, r.options.NotifyMaxAttempts), nil); err != nil {
			return fmt.Errorf("could not enqueue notification job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not register user: %w", err)
	}

	return stored, nil
}

// New creates a Registrar backed by the provided storage.
func New(storage storage.Storage, options Options) Registrar {
	return &registrar{
		options: options,
		storage: storage,
	}
}
