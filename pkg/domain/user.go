package domain

import "time"

// UserID uniquely identifies a user account. It matches the identity
// provider's UID so the account row, the identity and the scan requests all
// share one key.
type UserID string

const (
	// DefaultUserRole is assumed when a registration document carries no role.
	DefaultUserRole = "user"
	// DefaultUserStatus is assumed when a registration document carries no
	// status. Newly registered users await admin review.
	DefaultUserStatus = "pending"
)

// UserAccount is the canonical, fully defaulted form of a user record.
// It is produced from a UserSnapshot by Normalize and is the only shape the
// notification and deletion logic consume.
type UserAccount struct {
	ID UserID `json:"id"`

	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Role     string `json:"role"`
	Status   string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// UserSnapshot is the raw registration document as written by the external
// registration flow. Older documents use "name" and "phone" where newer ones
// use "fullName" and "phoneNumber"; both spellings are honored.
type UserSnapshot struct {
	Email       string `json:"email"`
	FullName    string `json:"fullName,omitempty"`
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Role        string `json:"role,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Normalize resolves the snapshot's fallback chains and defaults into a
// canonical UserAccount: fullName wins over name, phoneNumber wins over
// phone, role defaults to "user" and status to "pending". Missing name,
// phone and address stay empty.
func (s UserSnapshot) Normalize(id UserID) UserAccount {
	name := s.FullName
	if name == "" {
		name = s.Name
	}

	phone := s.PhoneNumber
	if phone == "" {
		phone = s.Phone
	}

	role := s.Role
	if role == "" {
		role = DefaultUserRole
	}

	status := s.Status
	if status == "" {
		status = DefaultUserStatus
	}

	return UserAccount{
		ID:       id,
		Email:    s.Email,
		FullName: name,
		Phone:    phone,
		Address:  s.Address,
		Role:     role,
		Status:   status,
	}
}
