package deleter

import (
	"adminops/pkg/domain"
	"adminops/pkg/identity"
	"adminops/pkg/logger"
	"adminops/pkg/metrics"
	"adminops/pkg/serrors"
	"adminops/pkg/storage"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// deleter is the concrete implementation of the Deleter interface. It
// coordinates the identity provider and the storage layer.
type deleter struct {
	storage  storage.Storage
	identity identity.Provider
}

// DeleteAccount removes a user account end to end. Precondition failures
// (missing authentication, non-admin caller, empty user ID) are reported
// before anything is touched; failures after that point are wrapped as
// deletion failures.
//
// The user row and the pending scan requests are removed even when the user
// does not exist anymore, so a repeated call for the same user succeeds and
// reports "unknown" in the confirmation message.
func (d deleter) DeleteAccount(ctx context.Context,
	caller domain.AdminID,
	userID domain.UserID) (*Result, error) {
	if caller == "" {
		return nil, serrors.With(serrors.ErrAuthenticationRequired, "authentication required to delete users")
	}

	admin, err := d.storage.AdminByID(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("could not check admin directory: %w", err)
	}
	if admin == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "only admins can delete users")
	}

	if userID == "" {
		return nil, serrors.With(serrors.ErrInvalidArgument, "userId is required")
	}

	ctx = logger.WithFields(ctx,
		zap.String("userID", string(userID)),
		zap.String("adminID", string(caller)))
	logger.Info(ctx, "deleting user account")

	// fetch the user first so the confirmation message can name them
	userName, userEmail := "unknown", "unknown"
	user, err := d.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrDeletionFailed, err, "could not fetch user")
	}
	if user != nil {
		if user.FullName != "" {
			userName = user.FullName
		}
		if user.Email != "" {
			userEmail = user.Email
		}
	}

	// an absent identity is fine, the account may have been created without
	// one or a previous deletion attempt already removed it
	if err := d.identity.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, serrors.ErrNotFound) {
			return nil, serrors.Wrap(serrors.ErrIdentityProvider, err, "could not delete authentication identity")
		}
		logger.Info(ctx, "authentication identity not found, continuing")
	}

	if err := d.storage.DeleteUser(ctx, userID); err != nil {
		return nil, serrors.Wrap(serrors.ErrDeletionFailed, err, "could not delete user record")
	}

	deleted, err := d.deletePendingScanRequests(ctx, userID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrDeletionFailed, err, "could not delete pending scan requests")
	}

	logger.Info(ctx, "user account deleted", zap.Int("deletedPendingScanRequests", deleted))
	metrics.AccountsDeleted.Inc()
	metrics.PendingScanRequestsDeleted.Add(float64(deleted))

	return &Result{
		Success:                    true,
		Message:                    fmt.Sprintf("Successfully deleted user %s (%s)", userName, userEmail),
		DeletedPendingScanRequests: deleted,
	}, nil
}

// deletePendingScanRequests removes the user's pending scan requests
// concurrently and returns how many were targeted. The join fails fast: the
// first delete error cancels the remaining ones and is returned.
func (d deleter) deletePendingScanRequests(ctx context.Context, userID domain.UserID) (int, error) {
	pending, err := d.storage.PendingScanRequestsByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("could not list pending scan requests: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, req := range pending {
		g.Go(func() error {
			return d.storage.DeleteScanRequest(gctx, req.ID) //nolint: wrapcheck
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("could not delete scan request: %w", err)
	}

	return len(pending), nil
}

// New creates a Deleter backed by the provided storage and identity provider.
func New(storage storage.Storage, identity identity.Provider) Deleter {
	return &deleter{
		storage:  storage,
		identity: identity,
	}
}
