package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is the database model for stocked goods.
type InventoryItem struct {
	ItemID            string
	Name              string
	HSN               string
	SKU               string
	Category          string
	Unit              string
	PurchasePrice     decimal.Decimal
	SellingPrice      decimal.Decimal
	Quantity          decimal.Decimal
	LowStockThreshold decimal.Decimal
	GSTRate           decimal.Decimal
	LastPurchaseDate  *time.Time
	LastSaleDate      *time.Time
	AuditFields
}
