package pgsql

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

func TestLineStockDelta(t *testing.T) {
	qty := decimal.NewFromInt(5)

	tests := []struct {
		name    string
		kind    domain.DocumentKind
		reverse bool
		want    decimal.Decimal
	}{
		{"sale moves stock out", domain.SalesInvoice, false, qty.Neg()},
		{"purchase moves stock in", domain.PurchaseBill, false, qty},
		{"deleting a sale restores stock", domain.SalesInvoice, true, qty},
		{"deleting a purchase removes stock", domain.PurchaseBill, true, qty.Neg()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineStockDelta(tt.kind, tt.reverse, qty)
			assert.True(t, got.Equal(tt.want), "delta = %s, want %s", got, tt.want)
		})
	}
}

func TestLineStockDelta_AllowsNegativeStock(t *testing.T) {
	// Selling more than is on hand is not blocked; the quantity goes
	// negative and the low stock alert path surfaces it.
	onHand := decimal.NewFromInt(2)
	delta := lineStockDelta(domain.SalesInvoice, false, decimal.NewFromInt(5))

	remaining := onHand.Add(delta)
	assert.True(t, remaining.Equal(decimal.NewFromInt(-3)), "remaining = %s", remaining)
	assert.True(t, remaining.IsNegative())
}
