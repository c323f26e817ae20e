package pgsql

import (
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartyRepo:     newPgxPartyRepository(dbPool),
		InventoryRepo: newPgxInventoryRepository(dbPool),
		DocumentRepo:  newPgxDocumentRepository(dbPool),
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		LedgerRepo:    newPgxLedgerRepository(dbPool),
		AlertRepo:     newPgxAlertRepository(dbPool),
		CompanyRepo:   newPgxCompanyRepository(dbPool),
	}
}
