package repositories

import (
	"context"
	"time"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

// ListLedgerParams filters and paginates the day book.
type ListLedgerParams struct {
	Type      domain.LedgerEntryType
	PartyID   string
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
	NextToken string
}

// LedgerRepository reads the day book. Writes happen inside the document and
// expense transactions; the ledger has no standalone write path.
type LedgerRepository interface {
	ListEntries(ctx context.Context, params ListLedgerParams) ([]domain.LedgerEntry, string, error)
	ListEntriesByParty(ctx context.Context, partyID string, from, to time.Time) ([]domain.LedgerEntry, error)
}
