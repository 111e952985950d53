package postgres

import (
	"adminops/pkg/domain"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type PgUser struct {
	ID string `db:"id"`

	Email    string `db:"email"`
	FullName string `db:"full_name"`
	Phone    string `db:"phone"`
	Address  string `db:"address"`
	Role     string `db:"role"`
	Status   string `db:"status"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() domain.UserAccount {
	return domain.UserAccount{
		ID:        domain.UserID(p.ID),
		Email:     p.Email,
		FullName:  p.FullName,
		Phone:     p.Phone,
		Address:   p.Address,
		Role:      p.Role,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.UserAccount) {
	*p = PgUser{
		ID:        string(user.ID),
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		Address:   user.Address,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}

type PgAdmin struct {
	ID    string `db:"id"`
	Email string `db:"email"`

	// NotifyEmail maps the admin's email notification preference; NULL means
	// the preference was never set.
	NotifyEmail sql.NullBool `db:"notify_email"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgAdmin) ToDomain() domain.AdminRecord {
	rec := domain.AdminRecord{
		ID:    domain.AdminID(p.ID),
		Email: p.Email,
	}
	if p.NotifyEmail.Valid {
		v := p.NotifyEmail.Bool
		rec.NotificationPrefs.Email = &v
	}

	return rec
}

type PgScanRequest struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID string    `db:"user_id"`
	Status string    `db:"status"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgScanRequest) ToDomain() domain.ScanRequest {
	return domain.ScanRequest{
		ID:        domain.ScanRequestID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Status:    domain.ScanRequestStatus(p.Status),
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgScanRequest) FromDomain(req domain.ScanRequest) {
	*p = PgScanRequest{
		ID:        uuid.UUID(req.ID),
		UserID:    string(req.UserID),
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt,
	}
}

func domainUsersToPg(users []domain.UserAccount) []PgUser {
	out := make([]PgUser, len(users))
	for i := range out {
		out[i].FromDomain(users[i])
	}

	return out
}

func pgUsersToDomain(users []PgUser) []domain.UserAccount {
	out := make([]domain.UserAccount, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToDomain())
	}

	return out
}

func domainScanRequestsToPg(requests []domain.ScanRequest) []PgScanRequest {
	out := make([]PgScanRequest, len(requests))
	for i := range out {
		out[i].FromDomain(requests[i])
	}

	return out
}

func pgScanRequestsToDomain(requests []PgScanRequest) []domain.ScanRequest {
	out := make([]domain.ScanRequest, 0, len(requests))
	for i := range requests {
		out = append(out, requests[i].ToDomain())
	}

	return out
}

func pgAdminsToDomain(admins []PgAdmin) []domain.AdminRecord {
	out := make([]domain.AdminRecord, 0, len(admins))
	for i := range admins {
		out = append(out, admins[i].ToDomain())
	}

	return out
}
