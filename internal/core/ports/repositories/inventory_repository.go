package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

// ListInventoryParams filters inventory listings.
type ListInventoryParams struct {
	Search   string
	Category string
	LowStock bool
}

// InventoryRepository persists stocked items.
type InventoryRepository interface {
	CreateItem(ctx context.Context, item domain.InventoryItem) error
	GetItemByID(ctx context.Context, itemID string) (domain.InventoryItem, error)
	GetItemsByIDs(ctx context.Context, itemIDs []string) ([]domain.InventoryItem, error)
	ListItems(ctx context.Context, params ListInventoryParams) ([]domain.InventoryItem, error)
	UpdateItem(ctx context.Context, item domain.InventoryItem) error
	DeleteItem(ctx context.Context, itemID string) error

	// AdjustStock applies a signed delta to the on-hand quantity under a row
	// lock and returns the item as updated.
	AdjustStock(ctx context.Context, itemID string, delta decimal.Decimal) (domain.InventoryItem, error)
}
