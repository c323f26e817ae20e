package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/apperrors"
	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/dto"
)

// ErrPartyHasBalance is returned when deleting a party that still has an
// outstanding balance.
var ErrPartyHasBalance = errors.New("party has outstanding balance")

type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepository
}

// NewPartyService creates a new party service.
func NewPartyService(partyRepo portsrepo.PartyRepository) portssvc.PartySvc {
	return &partyService{partyRepo: partyRepo}
}

var _ portssvc.PartySvc = (*partyService)(nil)

func (s *partyService) CreateParty(ctx context.Context, userID string, req dto.CreatePartyRequest) (domain.Party, error) {
	now := time.Now()
	party := domain.Party{
		PartyID:     uuid.NewString(),
		Kind:        req.Kind,
		Name:        req.Name,
		GSTIN:       req.GSTIN,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		Phone:       req.Phone,
		Email:       req.Email,
		CreditLimit: req.CreditLimit,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.partyRepo.CreateParty(ctx, party); err != nil {
		s.LogError(ctx, err, "failed to create party", slog.String("party_name", req.Name))
		return domain.Party{}, fmt.Errorf("failed to create party: %w", err)
	}
	s.LogInfo(ctx, "party created", slog.String("party_id", party.PartyID), slog.String("kind", string(party.Kind)))
	return party, nil
}

func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (domain.Party, error) {
	party, err := s.partyRepo.GetPartyByID(ctx, partyID)
	if err != nil {
		return domain.Party{}, fmt.Errorf("failed to get party %s: %w", partyID, err)
	}
	return party, nil
}

func (s *partyService) ListParties(ctx context.Context, kind domain.PartyKind, search string, includeInactive bool) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx, portsrepo.ListPartiesParams{
		Kind:            kind,
		Search:          search,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	if parties == nil {
		parties = []domain.Party{}
	}
	return parties, nil
}

func (s *partyService) UpdateParty(ctx context.Context, userID string, partyID string, req dto.UpdatePartyRequest) (domain.Party, error) {
	party, err := s.partyRepo.GetPartyByID(ctx, partyID)
	if err != nil {
		return domain.Party{}, fmt.Errorf("failed to load party %s for update: %w", partyID, err)
	}

	if req.Name != nil {
		party.Name = *req.Name
	}
	if req.GSTIN != nil {
		party.GSTIN = *req.GSTIN
	}
	if req.Address != nil {
		party.Address = *req.Address
	}
	if req.City != nil {
		party.City = *req.City
	}
	if req.State != nil {
		party.State = *req.State
	}
	if req.Pincode != nil {
		party.Pincode = *req.Pincode
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
	}
	if req.Email != nil {
		party.Email = *req.Email
	}
	if req.CreditLimit != nil {
		party.CreditLimit = *req.CreditLimit
	}
	if req.IsActive != nil {
		party.IsActive = *req.IsActive
	}
	party.LastUpdatedAt = time.Now()
	party.LastUpdatedBy = userID

	if err := s.partyRepo.UpdateParty(ctx, party); err != nil {
		s.LogError(ctx, err, "failed to update party", slog.String("party_id", partyID))
		return domain.Party{}, fmt.Errorf("failed to update party %s: %w", partyID, err)
	}
	return party, nil
}

func (s *partyService) DeleteParty(ctx context.Context, partyID string) error {
	outstanding, err := s.partyRepo.GetOutstandingBalance(ctx, partyID)
	if err != nil {
		return fmt.Errorf("failed to check outstanding balance for party %s: %w", partyID, err)
	}
	if !outstanding.Equal(decimal.Zero) {
		return apperrors.NewAppError(409, fmt.Sprintf("party %s has outstanding balance %s", partyID, outstanding), ErrPartyHasBalance)
	}
	if err := s.partyRepo.DeleteParty(ctx, partyID); err != nil {
		return fmt.Errorf("failed to delete party %s: %w", partyID, err)
	}
	s.LogInfo(ctx, "party deleted", slog.String("party_id", partyID))
	return nil
}
