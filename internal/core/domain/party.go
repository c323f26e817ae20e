package domain

import "github.com/shopspring/decimal"

// PartyKind distinguishes customers from suppliers.
type PartyKind string

const (
	Customer PartyKind = "CUSTOMER"
	Supplier PartyKind = "SUPPLIER"
)

// Party represents a customer or supplier the company trades with.
//
// OutstandingBalance is a derived value: it is recomputed from the party's
// open documents whenever a Party is loaded, and is never written directly.
type Party struct {
	PartyID     string          `json:"partyID"`
	Kind        PartyKind       `json:"kind"`
	Name        string          `json:"name"`
	GSTIN       string          `json:"gstin"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	Pincode     string          `json:"pincode"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	IsActive    bool            `json:"isActive"`
	AuditFields

	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
}
