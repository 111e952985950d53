package storage

import (
	"adminops/pkg/domain"
	"context"
)

// AdminStorage is the read-only view of the admin directory. Admin records
// are provisioned out of band; this service only reads them for notification
// fan-out and authorization checks.
type AdminStorage interface {
	// Admins returns the full set of admin records, in no particular order.
	Admins(ctx context.Context) ([]domain.AdminRecord, error)
	// AdminByID fetches a single admin record by its identifier. Returns nil
	// when no such admin exists.
	AdminByID(ctx context.Context, id domain.AdminID) (*domain.AdminRecord, error)
}
