package storage

import (
	"adminops/pkg/domain"
	"context"
)

// UserStorage defines the operations on user account records. The service
// creates rows through the registration intake and removes them during
// account deletion; user-visible fields are never updated here.
type UserStorage interface {
	// StoreUsers inserts one or more user accounts and returns the stored rows
	// as they exist in the database (including generated fields).
	StoreUsers(ctx context.Context, users ...domain.UserAccount) ([]domain.UserAccount, error)
	// UserByID fetches a user account by its identifier. Returns nil when the
	// record does not exist.
	UserByID(ctx context.Context, id domain.UserID) (*domain.UserAccount, error)
	// DeleteUser removes the user row. Deleting an absent row is a no-op, not
	// an error, so concurrent deletions of the same user converge.
	DeleteUser(ctx context.Context, id domain.UserID) error
}
