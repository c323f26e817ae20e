package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind distinguishes sales invoices from purchase bills. The two
// share every field and rule; only the direction of stock and ledger effects
// differs.
type DocumentKind string

const (
	SalesInvoice DocumentKind = "SALES_INVOICE"
	PurchaseBill DocumentKind = "PURCHASE_BILL"
)

// DocumentStatus is the persisted payment state of a document.
// Overdue is intentionally not a stored status: it is derived from the due
// date at read time (see Document.IsOverdue).
type DocumentStatus string

const (
	StatusDraft   DocumentStatus = "DRAFT"
	StatusPending DocumentStatus = "PENDING"
	StatusPartial DocumentStatus = "PARTIAL"
	StatusPaid    DocumentStatus = "PAID"
)

// DocumentLine is a single item line on an invoice or bill. The tax fields
// are computed at creation time and stored alongside the inputs.
type DocumentLine struct {
	LineID        string          `json:"lineID"`
	DocumentID    string          `json:"documentID"`
	ItemID        string          `json:"itemID"`
	Name          string          `json:"name"`
	HSN           string          `json:"hsn"`
	Quantity      decimal.Decimal `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	GSTRate       decimal.Decimal `json:"gstRate"`
	TaxableAmount decimal.Decimal `json:"taxableAmount"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// Document represents a sales invoice or purchase bill: a party snapshot,
// an ordered list of lines, and the aggregated totals.
type Document struct {
	DocumentID     string          `json:"documentID"`
	Kind           DocumentKind    `json:"kind"`
	DocumentNumber string          `json:"documentNumber"`
	PartyBillNo    string          `json:"partyBillNo,omitempty"` // supplier's own bill number, purchases only
	DocumentDate   time.Time       `json:"documentDate"`
	DueDate        time.Time       `json:"dueDate"`
	PartyID        string          `json:"partyID"`
	PartyName      string          `json:"partyName"`
	PartyGSTIN     string          `json:"partyGstin"`
	PartyAddress   string          `json:"partyAddress"`
	PlaceOfSupply  string          `json:"placeOfSupply"`
	Lines          []DocumentLine  `json:"lines,omitempty"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TotalCGST      decimal.Decimal `json:"totalCgst"`
	TotalSGST      decimal.Decimal `json:"totalSgst"`
	TotalIGST      decimal.Decimal `json:"totalIgst"`
	RoundOff       decimal.Decimal `json:"roundOff"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	Status         DocumentStatus  `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	Terms          string          `json:"terms,omitempty"`
	AuditFields
}

// Outstanding returns the unpaid balance of the document.
func (d Document) Outstanding() decimal.Decimal {
	return d.GrandTotal.Sub(d.AmountPaid)
}

// IsOverdue reports whether the document is unpaid past its due date.
func (d Document) IsOverdue(today time.Time) bool {
	if d.Status == StatusPaid || d.Status == StatusDraft {
		return false
	}
	return d.DueDate.Before(today.Truncate(24 * time.Hour))
}

// StatusForPayment derives the persisted status after amountPaid has been
// applied: PAID iff amountPaid covers the grand total, PARTIAL for anything
// between zero and the grand total.
func StatusForPayment(amountPaid, grandTotal decimal.Decimal) DocumentStatus {
	switch {
	case amountPaid.GreaterThanOrEqual(grandTotal):
		return StatusPaid
	case amountPaid.GreaterThan(decimal.Zero):
		return StatusPartial
	default:
		return StatusPending
	}
}
