package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the database model for a day book row.
type LedgerEntry struct {
	EntryID         string
	Date            time.Time
	Type            string
	ReferenceID     string
	ReferenceNumber string
	PartyID         string
	PartyName       string
	Description     string
	PaymentMode     string
	Debit           decimal.Decimal
	Credit          decimal.Decimal
	Balance         decimal.Decimal
	AuditFields
}
