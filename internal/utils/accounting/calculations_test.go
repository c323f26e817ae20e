package accounting_test

import (
	"testing"

	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeLine(t *testing.T) {
	tests := []struct {
		name        string
		qty         string
		rate        string
		gstRate     string
		wantTaxable string
		wantCGST    string
		wantSGST    string
		wantTotal   string
	}{
		{"standard 18% line", "2", "100", "18", "200", "18", "18", "236"},
		{"5% rate", "10", "50", "5", "500", "12.5", "12.5", "525"},
		{"zero rated", "3", "40", "0", "120", "0", "0", "120"},
		{"fractional quantity", "1.5", "100", "12", "150", "9", "9", "168"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := accounting.ComputeLine(domain.DocumentLine{
				Quantity: dec(tt.qty),
				Rate:     dec(tt.rate),
				GSTRate:  dec(tt.gstRate),
			})

			assert.True(t, line.TaxableAmount.Equal(dec(tt.wantTaxable)), "taxable = %s", line.TaxableAmount)
			assert.True(t, line.CGST.Equal(dec(tt.wantCGST)), "cgst = %s", line.CGST)
			assert.True(t, line.SGST.Equal(dec(tt.wantSGST)), "sgst = %s", line.SGST)
			assert.True(t, line.IGST.IsZero(), "igst must be zero")
			assert.True(t, line.TotalAmount.Equal(dec(tt.wantTotal)), "total = %s", line.TotalAmount)
		})
	}
}

func TestComputeLine_SplitsTaxEvenly(t *testing.T) {
	line := accounting.ComputeLine(domain.DocumentLine{
		Quantity: dec("7"),
		Rate:     dec("33.33"),
		GSTRate:  dec("18"),
	})
	assert.True(t, line.CGST.Equal(line.SGST), "CGST and SGST must be equal halves")
	tax := line.TotalAmount.Sub(line.TaxableAmount)
	assert.True(t, line.CGST.Add(line.SGST).Equal(tax))
}

func TestTotals(t *testing.T) {
	lines := []domain.DocumentLine{
		accounting.ComputeLine(domain.DocumentLine{Quantity: dec("2"), Rate: dec("100"), GSTRate: dec("18")}),
		accounting.ComputeLine(domain.DocumentLine{Quantity: dec("1"), Rate: dec("99.50"), GSTRate: dec("5")}),
	}

	subtotal, cgst, sgst, igst, roundOff, grandTotal := accounting.Totals(lines)

	assert.True(t, subtotal.Equal(dec("299.50")), "subtotal = %s", subtotal)
	assert.True(t, cgst.Equal(dec("20.4875")), "cgst = %s", cgst)
	assert.True(t, sgst.Equal(dec("20.4875")), "sgst = %s", sgst)
	assert.True(t, igst.IsZero())

	// grandTotal = round(299.50 + 20.4875 + 20.4875) = round(340.475) = 340
	assert.True(t, grandTotal.Equal(dec("340")), "grandTotal = %s", grandTotal)
	assert.True(t, roundOff.Equal(dec("-0.475")), "roundOff = %s", roundOff)

	// Invariant: grandTotal = exact sum + roundOff.
	exact := subtotal.Add(cgst).Add(sgst).Add(igst)
	assert.True(t, grandTotal.Equal(exact.Add(roundOff)))
}

func TestTotals_ExampleScenario(t *testing.T) {
	// One line, rate=100 qty=2 gst=18%: taxable 200, cgst 18, sgst 18,
	// grand total 236 with no round-off.
	lines := []domain.DocumentLine{
		accounting.ComputeLine(domain.DocumentLine{Quantity: dec("2"), Rate: dec("100"), GSTRate: dec("18")}),
	}
	subtotal, cgst, sgst, _, roundOff, grandTotal := accounting.Totals(lines)

	assert.True(t, subtotal.Equal(dec("200")))
	assert.True(t, cgst.Equal(dec("18")))
	assert.True(t, sgst.Equal(dec("18")))
	assert.True(t, grandTotal.Equal(dec("236")))
	assert.True(t, roundOff.IsZero())
}

func TestTotals_EmptyLines(t *testing.T) {
	subtotal, _, _, _, roundOff, grandTotal := accounting.Totals(nil)
	assert.True(t, subtotal.IsZero())
	assert.True(t, grandTotal.IsZero())
	assert.True(t, roundOff.IsZero())
}

func TestApplyPayment(t *testing.T) {
	base := domain.Document{
		GrandTotal: dec("236"),
		AmountPaid: decimal.Zero,
		Status:     domain.StatusPending,
	}

	t.Run("full payment moves pending to paid", func(t *testing.T) {
		doc, err := accounting.ApplyPayment(base, dec("236"))
		require.NoError(t, err)
		assert.True(t, doc.AmountPaid.Equal(dec("236")))
		assert.Equal(t, domain.StatusPaid, doc.Status)
	})

	t.Run("partial payment moves pending to partial", func(t *testing.T) {
		doc, err := accounting.ApplyPayment(base, dec("100"))
		require.NoError(t, err)
		assert.True(t, doc.AmountPaid.Equal(dec("100")))
		assert.Equal(t, domain.StatusPartial, doc.Status)
	})

	t.Run("second payment completes the document", func(t *testing.T) {
		doc, err := accounting.ApplyPayment(base, dec("100"))
		require.NoError(t, err)
		doc, err = accounting.ApplyPayment(doc, dec("136"))
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, doc.Status)
	})

	t.Run("payment above remaining balance is rejected without mutation", func(t *testing.T) {
		doc, err := accounting.ApplyPayment(base, dec("236.01"))
		assert.ErrorIs(t, err, accounting.ErrPaymentExceedsBalance)
		assert.True(t, doc.AmountPaid.IsZero())
		assert.Equal(t, domain.StatusPending, doc.Status)
	})

	t.Run("zero payment is rejected", func(t *testing.T) {
		_, err := accounting.ApplyPayment(base, decimal.Zero)
		assert.ErrorIs(t, err, accounting.ErrPaymentNotPositive)
	})

	t.Run("negative payment is rejected", func(t *testing.T) {
		_, err := accounting.ApplyPayment(base, dec("-5"))
		assert.ErrorIs(t, err, accounting.ErrPaymentNotPositive)
	})
}

func TestMargin(t *testing.T) {
	assert.True(t, accounting.Margin(dec("50"), dec("200")).Equal(dec("25")))
	assert.True(t, accounting.Margin(dec("50"), decimal.Zero).IsZero(), "zero base must not divide")
}
