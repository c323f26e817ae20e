package services

import (
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service against the given repositories.
// defaultDueDays applies when documents are created without a due date.
func NewServiceContainer(repos portsrepo.RepositoryProvider, defaultDueDays int) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		PartySvc:     NewPartyService(repos.PartyRepo),
		InventorySvc: NewInventoryService(repos.InventoryRepo),
		DocumentSvc: NewDocumentService(
			repos.DocumentRepo,
			repos.PartyRepo,
			repos.InventoryRepo,
			repos.AlertRepo,
			defaultDueDays,
		),
		ExpenseSvc:   NewExpenseService(repos.ExpenseRepo),
		LedgerSvc:    NewLedgerService(repos.LedgerRepo, repos.PartyRepo),
		AlertSvc:     NewAlertService(repos.AlertRepo, repos.InventoryRepo, repos.DocumentRepo),
		ReportingSvc: NewReportingService(repos.DocumentRepo, repos.ExpenseRepo, repos.InventoryRepo, repos.AlertRepo),
		CompanySvc:   NewCompanyService(repos.CompanyRepo),
	}
}
