package services

import (
	"context"

	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/core/ports/repositories"
	"github.com/bizease/bizease_backend/internal/utils/accounting"
)

// LedgerSvc reads the day book and party statements.
type LedgerSvc interface {
	ListEntries(ctx context.Context, params repositories.ListLedgerParams) ([]domain.LedgerEntry, string, error)
	GetPartyStatement(ctx context.Context, partyID string, period accounting.Period) ([]domain.LedgerEntry, error)
}
