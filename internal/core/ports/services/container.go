package services

// ServiceContainer aggregates every service the handlers need.
type ServiceContainer struct {
	PartySvc     PartySvc
	InventorySvc InventorySvc
	DocumentSvc  DocumentSvc
	ExpenseSvc   ExpenseSvc
	LedgerSvc    LedgerSvc
	AlertSvc     AlertSvc
	ReportingSvc ReportingSvc
	CompanySvc   CompanySvc
}
