package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem represents a stocked good with its pricing and tax rate.
type InventoryItem struct {
	ItemID            string          `json:"itemID"`
	Name              string          `json:"name"`
	HSN               string          `json:"hsn"`
	SKU               string          `json:"sku"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit"`
	PurchasePrice     decimal.Decimal `json:"purchasePrice"`
	SellingPrice      decimal.Decimal `json:"sellingPrice"`
	Quantity          decimal.Decimal `json:"quantity"`
	LowStockThreshold decimal.Decimal `json:"lowStockThreshold"`
	GSTRate           decimal.Decimal `json:"gstRate"`
	LastPurchaseDate  *time.Time      `json:"lastPurchaseDate,omitempty"`
	LastSaleDate      *time.Time      `json:"lastSaleDate,omitempty"`
	AuditFields
}

// IsLowStock reports whether the on-hand quantity has reached the reorder threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity.LessThanOrEqual(i.LowStockThreshold)
}
