// Package dto defines the request and response shapes of the HTTP API.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

// CreatePartyRequest is the payload for creating a customer or supplier.
type CreatePartyRequest struct {
	Kind        domain.PartyKind `json:"kind" binding:"required,oneof=CUSTOMER SUPPLIER"`
	Name        string           `json:"name" binding:"required,max=200"`
	GSTIN       string           `json:"gstin" binding:"omitempty,len=15"`
	Address     string           `json:"address" binding:"omitempty,max=500"`
	City        string           `json:"city" binding:"omitempty,max=100"`
	State       string           `json:"state" binding:"omitempty,max=100"`
	Pincode     string           `json:"pincode" binding:"omitempty,max=10"`
	Phone       string           `json:"phone" binding:"omitempty,max=20"`
	Email       string           `json:"email" binding:"omitempty,email"`
	CreditLimit decimal.Decimal  `json:"creditLimit"`
}

// UpdatePartyRequest is the payload for updating a party. Pointer fields
// distinguish "not provided" from zero values.
type UpdatePartyRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=200"`
	GSTIN       *string          `json:"gstin" binding:"omitempty,len=15"`
	Address     *string          `json:"address" binding:"omitempty,max=500"`
	City        *string          `json:"city" binding:"omitempty,max=100"`
	State       *string          `json:"state" binding:"omitempty,max=100"`
	Pincode     *string          `json:"pincode" binding:"omitempty,max=10"`
	Phone       *string          `json:"phone" binding:"omitempty,max=20"`
	Email       *string          `json:"email" binding:"omitempty,email"`
	CreditLimit *decimal.Decimal `json:"creditLimit"`
	IsActive    *bool            `json:"isActive"`
}

// PartyResponse is the API representation of a party.
type PartyResponse struct {
	domain.Party
}

// ListPartiesResponse is a page of parties.
type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
}

// ToPartyResponse converts a domain party to its response form.
func ToPartyResponse(p domain.Party) PartyResponse {
	return PartyResponse{Party: p}
}

// ToListPartiesResponse converts a slice of domain parties to a list response.
func ToListPartiesResponse(parties []domain.Party) ListPartiesResponse {
	resp := ListPartiesResponse{Parties: make([]PartyResponse, 0, len(parties))}
	for _, p := range parties {
		resp.Parties = append(resp.Parties, ToPartyResponse(p))
	}
	return resp
}
