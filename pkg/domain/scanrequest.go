package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScanRequestID uniquely identifies a scan request. It wraps uuid.UUID to
// provide type safety at the domain layer.
type ScanRequestID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id ScanRequestID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the ID in its canonical UUID form, so JSON and other
// textual encodings carry the UUID string rather than a byte array.
func (id ScanRequestID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText parses the ID from its canonical UUID form.
func (id *ScanRequestID) UnmarshalText(b []byte) error {
	var u uuid.UUID
	if err := u.UnmarshalText(b); err != nil {
		return fmt.Errorf("could not parse scan request ID: %w", err)
	}
	*id = ScanRequestID(u)

	return nil
}

// ScanRequestStatus is the lifecycle state of a scan request.
type ScanRequestStatus string

const (
	// ScanRequestStatusPending indicates the request has not been analyzed yet.
	// Pending requests are the only ones removed when their owner is deleted.
	ScanRequestStatusPending ScanRequestStatus = "pending"
	// ScanRequestStatusCompleted indicates analysis finished; kept as history.
	ScanRequestStatusCompleted ScanRequestStatus = "completed"
	// ScanRequestStatusReviewed indicates an admin reviewed the result; kept as history.
	ScanRequestStatusReviewed ScanRequestStatus = "reviewed"
	// ScanRequestStatusFailed indicates analysis failed; kept as history.
	ScanRequestStatusFailed ScanRequestStatus = "failed"
)

// ScanRequest is a single image-analysis request owned by a user.
// The analysis pipeline itself lives outside this service; only ownership
// and status matter here.
type ScanRequest struct {
	ID     ScanRequestID `json:"id"`
	UserID UserID        `json:"userId"`

	Status ScanRequestStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}
