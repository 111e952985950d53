package postgres

import (
	"adminops/pkg/domain"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const usersTable = "users"

func (p *PgSQL) StoreUsers(ctx context.Context, users ...domain.UserAccount) ([]domain.UserAccount, error) {
	if len(users) == 0 {
		return nil, nil
	}

	var result []PgUser
	if err := p.Builder.Insert(usersTable).
		Rows(domainUsersToPg(users)).
		Returning(&PgUser{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store users into pg: %w", err)
	}

	return pgUsersToDomain(result), nil
}

// UserByID fetches a user account by its identifier, returning nil when the
// record does not exist.
func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.UserAccount, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(string(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	acct := row.ToDomain()

	return &acct, nil
}

// DeleteUser removes the user row. An absent row is a no-op so repeated or
// concurrent deletions converge on the same end state.
func (p *PgSQL) DeleteUser(ctx context.Context, id domain.UserID) error {
	if _, err := p.Builder.Delete(usersTable).
		Where(goqu.I("id").Eq(string(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete user in pg: %w", err)
	}

	return nil
}
