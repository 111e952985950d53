package registrar

import (
	"adminops/pkg/domain"
	"context"
)

// Registrar handles incoming user registrations.
//
//go:generate mockgen -package mockregistrar -source=interface.go -destination=mock/mockregistrar.go *
type Registrar interface {
	// Register normalizes and stores a newly registered user and enqueues the
	// admin notification. The stored account and the notification job commit
	// atomically, a registration is never persisted without its notification
	// being scheduled.
	Register(ctx context.Context, id domain.UserID, snapshot domain.UserSnapshot) (*domain.UserAccount, error)
}
