package storage

import (
	"adminops/pkg/domain"
	"context"
)

// ScanRequestStorage defines the operations on scan request records. The
// analysis pipeline owns these rows; this service only queries them by owner
// and removes the pending ones when the owner is deleted. Completed and
// reviewed requests are historical record and are never touched.
type ScanRequestStorage interface {
	// StoreScanRequests inserts one or more scan requests and returns the
	// stored rows (including generated identifiers).
	StoreScanRequests(ctx context.Context, requests ...domain.ScanRequest) ([]domain.ScanRequest, error)
	// PendingScanRequestsByUser returns all requests owned by the given user
	// whose status is pending.
	PendingScanRequestsByUser(ctx context.Context, userID domain.UserID) ([]domain.ScanRequest, error)
	// DeleteScanRequest removes a single scan request row. Deleting an absent
	// row is a no-op, not an error.
	DeleteScanRequest(ctx context.Context, id domain.ScanRequestID) error
}
