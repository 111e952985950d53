package postgres

import (
	"adminops/pkg/domain"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const adminsTable = "admins"

// Admins returns every admin record in the directory. The notification
// fan-out filters by preference in code, mirroring how the directory is
// consumed, so no predicate is pushed down here.
func (p *PgSQL) Admins(ctx context.Context) ([]domain.AdminRecord, error) {
	var rows []PgAdmin
	if err := p.Builder.From(adminsTable).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch admins from pg: %w", err)
	}

	return pgAdminsToDomain(rows), nil
}

// AdminByID fetches a single admin record, returning nil when absent.
func (p *PgSQL) AdminByID(ctx context.Context, id domain.AdminID) (*domain.AdminRecord, error) {
	var row PgAdmin
	found, err := p.Builder.From(adminsTable).
		Where(goqu.I("id").Eq(string(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch admin by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	rec := row.ToDomain()

	return &rec, nil
}
