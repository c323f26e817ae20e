package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryType classifies a ledger movement.
type LedgerEntryType string

const (
	LedgerSale            LedgerEntryType = "SALE"
	LedgerPurchase        LedgerEntryType = "PURCHASE"
	LedgerPaymentReceived LedgerEntryType = "PAYMENT_RECEIVED"
	LedgerPaymentMade     LedgerEntryType = "PAYMENT_MADE"
	LedgerExpense         LedgerEntryType = "EXPENSE"
)

// LedgerEntry is a single row in the day book. Debit and credit are mutually
// exclusive; Balance is the running balance after this entry, computed by the
// repository at insert time.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`
	Date            time.Time       `json:"date"`
	Type            LedgerEntryType `json:"type"`
	ReferenceID     string          `json:"referenceID"`
	ReferenceNumber string          `json:"referenceNumber"`
	PartyID         string          `json:"partyID,omitempty"`
	PartyName       string          `json:"partyName,omitempty"`
	Description     string          `json:"description"`
	PaymentMode     PaymentMode     `json:"paymentMode,omitempty"` // set on payment and expense rows only
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	Balance         decimal.Decimal `json:"balance"`
	AuditFields
}
