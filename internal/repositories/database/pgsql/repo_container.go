package pgsql

import (
	portsrepo "github.com/SscSPs/fiscal_balance/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		CurrencyRepo:  newPgxCurrencyRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		JournalRepo:   newPgxJournalRepository(dbPool),
		WorkplaceRepo: newPgxWorkplaceRepository(dbPool),
	}
}
