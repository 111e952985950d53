// Package identity defines the abstraction over the external identity
// provider that owns authentication accounts. This service only ever deletes
// identities; creation and sign-in live elsewhere.
package identity

import (
	"adminops/pkg/domain"
	"context"
)

// Provider is the client abstraction for the identity provider.
//
//go:generate mockgen -package mockidentity -source=interface.go -destination=mock/mockidentity.go *
type Provider interface {
	// DeleteUser removes the authentication identity for the given user ID.
	// When the identity does not exist the returned error matches
	// serrors.ErrNotFound; callers decide whether that condition is fatal.
	DeleteUser(ctx context.Context, id domain.UserID) error
}
