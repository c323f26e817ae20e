// Package accounting holds the pure tax and total arithmetic shared by the
// document services and reports.
package accounting

import (
	"fmt"

	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeLine fills in the tax fields of a document line from its quantity,
// unit rate and GST rate (percent).
//
// The GST amount is always split evenly into CGST and SGST halves; the IGST
// field is carried through the model but left zero, matching how documents
// are created today (place of supply is recorded but not used to pick the
// inter-state path).
func ComputeLine(line domain.DocumentLine) domain.DocumentLine {
	taxable := line.Rate.Mul(line.Quantity)
	tax := taxable.Mul(line.GSTRate).Div(hundred)
	half := tax.Div(decimal.NewFromInt(2))

	line.TaxableAmount = taxable
	line.CGST = half
	line.SGST = half
	line.IGST = decimal.Zero
	line.TotalAmount = taxable.Add(tax)
	return line
}

// Totals aggregates computed lines into document totals. The grand total is
// rounded to the nearest whole currency unit and the difference is recorded
// as the round-off.
func Totals(lines []domain.DocumentLine) (subtotal, cgst, sgst, igst, roundOff, grandTotal decimal.Decimal) {
	subtotal, cgst, sgst, igst = decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.TaxableAmount)
		cgst = cgst.Add(l.CGST)
		sgst = sgst.Add(l.SGST)
		igst = igst.Add(l.IGST)
	}
	exact := subtotal.Add(cgst).Add(sgst).Add(igst)
	grandTotal = exact.Round(0)
	roundOff = grandTotal.Sub(exact)
	return subtotal, cgst, sgst, igst, roundOff, grandTotal
}

// ErrPaymentExceedsBalance is returned when a payment is larger than the
// document's remaining balance.
var ErrPaymentExceedsBalance = fmt.Errorf("payment amount exceeds remaining balance")

// ErrPaymentNotPositive is returned when a payment amount is zero or negative.
var ErrPaymentNotPositive = fmt.Errorf("payment amount must be positive")

// ApplyPayment applies a payment of amount to the document and derives the
// new status. The document is not mutated on rejection.
func ApplyPayment(doc domain.Document, amount decimal.Decimal) (domain.Document, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return doc, ErrPaymentNotPositive
	}
	if amount.GreaterThan(doc.Outstanding()) {
		return doc, fmt.Errorf("%w: remaining %s, got %s", ErrPaymentExceedsBalance, doc.Outstanding(), amount)
	}
	doc.AmountPaid = doc.AmountPaid.Add(amount)
	doc.Status = domain.StatusForPayment(doc.AmountPaid, doc.GrandTotal)
	return doc, nil
}

// Margin returns part/whole as a percentage, or zero when the whole is zero.
// The zero guard matters: report bases (revenue, price) are frequently zero
// for empty periods.
func Margin(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
