package domain_test

import (
	"testing"
	"time"

	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusForPayment(t *testing.T) {
	grand := decimal.NewFromInt(236)

	tests := []struct {
		name       string
		amountPaid decimal.Decimal
		want       domain.DocumentStatus
	}{
		{"nothing paid", decimal.Zero, domain.StatusPending},
		{"partially paid", decimal.NewFromInt(100), domain.StatusPartial},
		{"exactly paid", decimal.NewFromInt(236), domain.StatusPaid},
		{"overpaid stays paid", decimal.NewFromInt(300), domain.StatusPaid},
		{"one rupee short", decimal.NewFromInt(235), domain.StatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.StatusForPayment(tt.amountPaid, grand))
		})
	}
}

func TestDocument_Outstanding(t *testing.T) {
	doc := domain.Document{
		GrandTotal: decimal.NewFromInt(236),
		AmountPaid: decimal.NewFromInt(36),
	}
	assert.True(t, doc.Outstanding().Equal(decimal.NewFromInt(200)))
}

func TestDocument_IsOverdue(t *testing.T) {
	today := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status domain.DocumentStatus
		due    time.Time
		want   bool
	}{
		{"pending past due", domain.StatusPending, today.AddDate(0, 0, -5), true},
		{"partial past due", domain.StatusPartial, today.AddDate(0, 0, -1), true},
		{"pending due in future", domain.StatusPending, today.AddDate(0, 0, 5), false},
		{"paid never overdue", domain.StatusPaid, today.AddDate(0, 0, -30), false},
		{"draft never overdue", domain.StatusDraft, today.AddDate(0, 0, -30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := domain.Document{Status: tt.status, DueDate: tt.due}
			assert.Equal(t, tt.want, doc.IsOverdue(today))
		})
	}
}

func TestInventoryItem_IsLowStock(t *testing.T) {
	item := domain.InventoryItem{
		Quantity:          decimal.NewFromInt(50),
		LowStockThreshold: decimal.NewFromInt(50),
	}
	assert.True(t, item.IsLowStock(), "threshold boundary counts as low stock")

	item.Quantity = decimal.NewFromInt(51)
	assert.False(t, item.IsLowStock())
}
