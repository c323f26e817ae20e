// Package repositories defines the persistence interfaces the core services
// depend on.
package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

// ListPartiesParams filters party listings.
type ListPartiesParams struct {
	Kind            domain.PartyKind
	Search          string
	IncludeInactive bool
}

// PartyRepository persists customers and suppliers.
type PartyRepository interface {
	CreateParty(ctx context.Context, party domain.Party) error
	GetPartyByID(ctx context.Context, partyID string) (domain.Party, error)
	ListParties(ctx context.Context, params ListPartiesParams) ([]domain.Party, error)
	UpdateParty(ctx context.Context, party domain.Party) error
	DeleteParty(ctx context.Context, partyID string) error

	// GetOutstandingBalance sums grand_total - amount_paid over the party's
	// non-draft, unpaid documents.
	GetOutstandingBalance(ctx context.Context, partyID string) (decimal.Decimal, error)
}
