package services

import (
	portsrepo "github.com/SscSPs/fiscal_balance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fiscal_balance/internal/core/ports/services"
	"github.com/SscSPs/fiscal_balance/internal/platform/config"
	"github.com/SscSPs/fiscal_balance/internal/platform/events"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.Publisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Workplace service first, every other workplace-scoped service authorizes through it
	container.Workplace = NewWorkplaceService(repos.WorkplaceRepo, repos.CurrencyRepo)
	authorizer := WithWorkplaceAuthorizer(container.Workplace)

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Account = NewAccountService(repos.AccountRepo, repos.CurrencyRepo, repos.JournalRepo, authorizer)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, repos.CurrencyRepo, publisher, authorizer)
	container.Reporting = NewReportingService(repos.JournalRepo, repos.AccountRepo, authorizer)

	return container
}
