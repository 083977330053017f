// Package memory is a process-local implementation of every repository port.
// All writes happen under one mutex, so each multi-row operation is atomic.
package memory

import (
	"sync"

	"github.com/SscSPs/fiscal_balance/internal/core/domain"
	portsrepo "github.com/SscSPs/fiscal_balance/internal/core/ports/repositories"
)

// Store holds all ledger data in maps.
type Store struct {
	mu         sync.RWMutex
	users      map[string]domain.User
	currencies map[string]domain.Currency
	workplaces map[string]domain.Workplace
	members    map[string]map[string]domain.UserWorkplace // workplace ID -> user ID
	accounts   map[string]domain.Account
	journals   map[string]domain.Journal
	legs       map[string][]domain.Transaction // journal ID -> legs in insertion order
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:      make(map[string]domain.User),
		currencies: make(map[string]domain.Currency),
		workplaces: make(map[string]domain.Workplace),
		members:    make(map[string]map[string]domain.UserWorkplace),
		accounts:   make(map[string]domain.Account),
		journals:   make(map[string]domain.Journal),
		legs:       make(map[string][]domain.Transaction),
	}
}

var (
	_ portsrepo.AccountRepositoryFacade   = (*Store)(nil)
	_ portsrepo.CurrencyRepositoryFacade  = (*Store)(nil)
	_ portsrepo.UserRepositoryFacade      = (*Store)(nil)
	_ portsrepo.JournalRepositoryFacade   = (*Store)(nil)
	_ portsrepo.WorkplaceRepositoryFacade = (*Store)(nil)
)

// NewRepositoryProvider exposes a single store through every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   store,
		CurrencyRepo:  store,
		UserRepo:      store,
		JournalRepo:   store,
		WorkplaceRepo: store,
	}
}
