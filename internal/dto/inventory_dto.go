package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

// CreateInventoryItemRequest is the payload for adding a stocked item.
type CreateInventoryItemRequest struct {
	Name              string          `json:"name" binding:"required,max=200"`
	HSN               string          `json:"hsn" binding:"omitempty,max=8"`
	SKU               string          `json:"sku" binding:"omitempty,max=50"`
	Category          string          `json:"category" binding:"omitempty,max=100"`
	Unit              string          `json:"unit" binding:"omitempty,max=20"`
	PurchasePrice     decimal.Decimal `json:"purchasePrice"`
	SellingPrice      decimal.Decimal `json:"sellingPrice"`
	Quantity          decimal.Decimal `json:"quantity"`
	LowStockThreshold decimal.Decimal `json:"lowStockThreshold"`
	GSTRate           decimal.Decimal `json:"gstRate"`
}

// UpdateInventoryItemRequest is the payload for updating an item's master
// data. Stock quantity is not updated here; use the adjustment endpoint.
type UpdateInventoryItemRequest struct {
	Name              *string          `json:"name" binding:"omitempty,max=200"`
	HSN               *string          `json:"hsn" binding:"omitempty,max=8"`
	SKU               *string          `json:"sku" binding:"omitempty,max=50"`
	Category          *string          `json:"category" binding:"omitempty,max=100"`
	Unit              *string          `json:"unit" binding:"omitempty,max=20"`
	PurchasePrice     *decimal.Decimal `json:"purchasePrice"`
	SellingPrice      *decimal.Decimal `json:"sellingPrice"`
	LowStockThreshold *decimal.Decimal `json:"lowStockThreshold"`
	GSTRate           *decimal.Decimal `json:"gstRate"`
}

// AdjustStockRequest is the payload for a manual stock correction. Delta may
// be negative.
type AdjustStockRequest struct {
	Delta  decimal.Decimal `json:"delta" binding:"required"`
	Reason string          `json:"reason" binding:"omitempty,max=200"`
}

// InventoryItemResponse is the API representation of an inventory item.
type InventoryItemResponse struct {
	domain.InventoryItem
	IsLowStock bool `json:"isLowStock"`
}

// ListInventoryResponse is a page of inventory items.
type ListInventoryResponse struct {
	Items []InventoryItemResponse `json:"items"`
}

// ToInventoryItemResponse converts a domain item to its response form.
func ToInventoryItemResponse(i domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{InventoryItem: i, IsLowStock: i.IsLowStock()}
}

// ToListInventoryResponse converts a slice of domain items to a list response.
func ToListInventoryResponse(items []domain.InventoryItem) ListInventoryResponse {
	resp := ListInventoryResponse{Items: make([]InventoryItemResponse, 0, len(items))}
	for _, i := range items {
		resp.Items = append(resp.Items, ToInventoryItemResponse(i))
	}
	return resp
}
