// Package services defines the service interfaces the HTTP handlers depend
// on.
package services

import (
	"context"

	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/dto"
)

// PartyReaderSvc reads customers and suppliers.
type PartyReaderSvc interface {
	GetPartyByID(ctx context.Context, partyID string) (domain.Party, error)
	ListParties(ctx context.Context, kind domain.PartyKind, search string, includeInactive bool) ([]domain.Party, error)
}

// PartyWriterSvc mutates customers and suppliers.
type PartyWriterSvc interface {
	CreateParty(ctx context.Context, userID string, req dto.CreatePartyRequest) (domain.Party, error)
	UpdateParty(ctx context.Context, userID string, partyID string, req dto.UpdatePartyRequest) (domain.Party, error)
	DeleteParty(ctx context.Context, partyID string) error
}

// PartySvc combines party reads and writes.
type PartySvc interface {
	PartyReaderSvc
	PartyWriterSvc
}
