package services

import (
	"context"
	"fmt"

	"github.com/bizease/bizease_backend/internal/apperrors"
	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/utils/accounting"
)

type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
	partyRepo  portsrepo.PartyRepository
}

// NewLedgerService creates a new ledger read service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, partyRepo portsrepo.PartyRepository) portssvc.LedgerSvc {
	return &ledgerService{ledgerRepo: ledgerRepo, partyRepo: partyRepo}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) ListEntries(ctx context.Context, params portsrepo.ListLedgerParams) ([]domain.LedgerEntry, string, error) {
	entries, nextToken, err := s.ledgerRepo.ListEntries(ctx, params)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list ledger entries: %w", err)
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return entries, nextToken, nil
}

func (s *ledgerService) GetPartyStatement(ctx context.Context, partyID string, period accounting.Period) ([]domain.LedgerEntry, error) {
	if _, err := s.partyRepo.GetPartyByID(ctx, partyID); err != nil {
		return nil, fmt.Errorf("failed to load party %s for statement: %w", partyID, err)
	}
	rng, err := period.Range(nowFunc())
	if err != nil {
		return nil, apperrors.NewAppError(400, "invalid statement period", err)
	}
	entries, err := s.ledgerRepo.ListEntriesByParty(ctx, partyID, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load statement for party %s: %w", partyID, err)
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return entries, nil
}
