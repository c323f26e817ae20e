package models

import "github.com/shopspring/decimal"

// Party is the database model for customers and suppliers.
type Party struct {
	PartyID     string
	Kind        string
	Name        string
	GSTIN       string
	Address     string
	City        string
	State       string
	Pincode     string
	Phone       string
	Email       string
	CreditLimit decimal.Decimal
	IsActive    bool
	AuditFields
}
