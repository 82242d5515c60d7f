package services

import (
	portsrepo "github.com/chaikhata/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, generator AdviceGenerator) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos.TransactionRepo)
	container.Payroll = NewPayrollService(repos.PayrollRepo)
	container.Reporting = NewReportingService(repos.TransactionRepo)
	container.Profile = NewProfileService(repos.ProfileRepo)
	container.Export = NewExportService(repos.TransactionRepo, repos.PayrollRepo)
	container.Advisor = NewAdvisorService(container.Ledger, container.Reporting, container.Profile, generator)

	return container
}
