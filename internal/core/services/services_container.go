package services

import (
	portsrepo "github.com/tripofis/travel_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tripofis/travel_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Entity service first: reporting needs its directory view.
	container.Entity = NewEntityService(repos.EntityRepo)
	directory := container.Entity.(portssvc.EntityDirectory)

	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.EntityRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Reporting = NewReportingService(repos.LedgerRepo, repos.TransactionFeedRepo, directory)

	return container
}
