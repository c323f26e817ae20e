package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	PartyRepo     PartyRepository
	InventoryRepo InventoryRepository
	DocumentRepo  DocumentRepository
	ExpenseRepo   ExpenseRepository
	LedgerRepo    LedgerRepository
	AlertRepo     AlertRepository
	CompanyRepo   CompanyRepository
}
