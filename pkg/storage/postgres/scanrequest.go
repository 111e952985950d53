package postgres

import (
	"adminops/pkg/domain"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const scanRequestsTable = "scan_requests"

func (p *PgSQL) StoreScanRequests(ctx context.Context,
	requests ...domain.ScanRequest) ([]domain.ScanRequest, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	var result []PgScanRequest
	if err := p.Builder.Insert(scanRequestsTable).
		Rows(domainScanRequestsToPg(requests)).
		Returning(&PgScanRequest{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store scan requests into pg: %w", err)
	}

	return pgScanRequestsToDomain(result), nil
}

// PendingScanRequestsByUser returns all scan requests owned by the user whose
// status is pending. Requests in any other status are historical record and
// are excluded.
func (p *PgSQL) PendingScanRequestsByUser(ctx context.Context,
	userID domain.UserID) ([]domain.ScanRequest, error) {
	var rows []PgScanRequest
	if err := p.Builder.From(scanRequestsTable).
		Where(
			goqu.I("user_id").Eq(string(userID)),
			goqu.I("status").Eq(string(domain.ScanRequestStatusPending)),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch pending scan requests from pg: %w", err)
	}

	return pgScanRequestsToDomain(rows), nil
}

// DeleteScanRequest removes a single scan request row. An absent row is a
// no-op, not an error.
func (p *PgSQL) DeleteScanRequest(ctx context.Context, id domain.ScanRequestID) error {
	if _, err := p.Builder.Delete(scanRequestsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete scan request in pg: %w", err)
	}

	return nil
}
