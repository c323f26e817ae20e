package services

import (
	"context"

	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/dto"
)

// InventoryReaderSvc reads stocked items.
type InventoryReaderSvc interface {
	GetItemByID(ctx context.Context, itemID string) (domain.InventoryItem, error)
	ListItems(ctx context.Context, search, category string, lowStock bool) ([]domain.InventoryItem, error)
}

// InventoryWriterSvc mutates stocked items.
type InventoryWriterSvc interface {
	CreateItem(ctx context.Context, userID string, req dto.CreateInventoryItemRequest) (domain.InventoryItem, error)
	UpdateItem(ctx context.Context, userID string, itemID string, req dto.UpdateInventoryItemRequest) (domain.InventoryItem, error)
	AdjustStock(ctx context.Context, userID string, itemID string, req dto.AdjustStockRequest) (domain.InventoryItem, error)
	DeleteItem(ctx context.Context, itemID string) error
}

// InventorySvc combines inventory reads and writes.
type InventorySvc interface {
	InventoryReaderSvc
	InventoryWriterSvc
}
