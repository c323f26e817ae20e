package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document is the database model for sales invoices and purchase bills.
type Document struct {
	DocumentID     string
	Kind           string
	DocumentNumber string
	PartyBillNo    string
	DocumentDate   time.Time
	DueDate        time.Time
	PartyID        string
	PartyName      string
	PartyGSTIN     string
	PartyAddress   string
	PlaceOfSupply  string
	Subtotal       decimal.Decimal
	TotalCGST      decimal.Decimal
	TotalSGST      decimal.Decimal
	TotalIGST      decimal.Decimal
	RoundOff       decimal.Decimal
	GrandTotal     decimal.Decimal
	AmountPaid     decimal.Decimal
	Status         string
	Notes          string
	Terms          string
	AuditFields
}

// DocumentLine is the database model for one item line on a document.
type DocumentLine struct {
	LineID        string
	DocumentID    string
	ItemID        string
	Name          string
	HSN           string
	Quantity      decimal.Decimal
	Rate          decimal.Decimal
	GSTRate       decimal.Decimal
	TaxableAmount decimal.Decimal
	CGST          decimal.Decimal
	SGST          decimal.Decimal
	IGST          decimal.Decimal
	TotalAmount   decimal.Decimal
}
