package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/apperrors"
	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/dto"
)

var (
	ErrNegativePrice = errors.New("price must not be negative")
	ErrZeroDelta     = errors.New("stock adjustment delta must be non-zero")
)

type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepository
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepository) portssvc.InventorySvc {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

var _ portssvc.InventorySvc = (*inventoryService)(nil)

func (s *inventoryService) CreateItem(ctx context.Context, userID string, req dto.CreateInventoryItemRequest) (domain.InventoryItem, error) {
	if req.PurchasePrice.IsNegative() || req.SellingPrice.IsNegative() {
		return domain.InventoryItem{}, apperrors.NewAppError(400, "prices must not be negative", ErrNegativePrice)
	}

	now := time.Now()
	item := domain.InventoryItem{
		ItemID:            uuid.NewString(),
		Name:              req.Name,
		HSN:               req.HSN,
		SKU:               req.SKU,
		Category:          req.Category,
		Unit:              req.Unit,
		PurchasePrice:     req.PurchasePrice,
		SellingPrice:      req.SellingPrice,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
		GSTRate:           req.GSTRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.inventoryRepo.CreateItem(ctx, item); err != nil {
		s.LogError(ctx, err, "failed to create inventory item", slog.String("item_name", req.Name))
		return domain.InventoryItem{}, fmt.Errorf("failed to create inventory item: %w", err)
	}
	s.LogInfo(ctx, "inventory item created", slog.String("item_id", item.ItemID))
	return item, nil
}

func (s *inventoryService) GetItemByID(ctx context.Context, itemID string) (domain.InventoryItem, error) {
	item, err := s.inventoryRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("failed to get item %s: %w", itemID, err)
	}
	return item, nil
}

func (s *inventoryService) ListItems(ctx context.Context, search, category string, lowStock bool) ([]domain.InventoryItem, error) {
	items, err := s.inventoryRepo.ListItems(ctx, portsrepo.ListInventoryParams{
		Search:   search,
		Category: category,
		LowStock: lowStock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}
	return items, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, userID string, itemID string, req dto.UpdateInventoryItemRequest) (domain.InventoryItem, error) {
	item, err := s.inventoryRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("failed to load item %s for update: %w", itemID, err)
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.HSN != nil {
		item.HSN = *req.HSN
	}
	if req.SKU != nil {
		item.SKU = *req.SKU
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.PurchasePrice != nil {
		if req.PurchasePrice.IsNegative() {
			return domain.InventoryItem{}, apperrors.NewAppError(400, "purchase price must not be negative", ErrNegativePrice)
		}
		item.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		if req.SellingPrice.IsNegative() {
			return domain.InventoryItem{}, apperrors.NewAppError(400, "selling price must not be negative", ErrNegativePrice)
		}
		item.SellingPrice = *req.SellingPrice
	}
	if req.LowStockThreshold != nil {
		item.LowStockThreshold = *req.LowStockThreshold
	}
	if req.GSTRate != nil {
		item.GSTRate = *req.GSTRate
	}
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = userID

	if err := s.inventoryRepo.UpdateItem(ctx, item); err != nil {
		s.LogError(ctx, err, "failed to update inventory item", slog.String("item_id", itemID))
		return domain.InventoryItem{}, fmt.Errorf("failed to update item %s: %w", itemID, err)
	}
	return item, nil
}

func (s *inventoryService) AdjustStock(ctx context.Context, userID string, itemID string, req dto.AdjustStockRequest) (domain.InventoryItem, error) {
	if req.Delta.Equal(decimal.Zero) {
		return domain.InventoryItem{}, apperrors.NewAppError(400, "stock adjustment delta must be non-zero", ErrZeroDelta)
	}

	item, err := s.inventoryRepo.AdjustStock(ctx, itemID, req.Delta)
	if err != nil {
		s.LogError(ctx, err, "failed to adjust stock", slog.String("item_id", itemID))
		return domain.InventoryItem{}, fmt.Errorf("failed to adjust stock for item %s: %w", itemID, err)
	}

	s.LogInfo(ctx, "stock adjusted",
		slog.String("item_id", itemID),
		slog.String("delta", req.Delta.String()),
		slog.String("reason", req.Reason),
		slog.String("user_id", userID))
	return item, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.inventoryRepo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete item %s: %w", itemID, err)
	}
	s.LogInfo(ctx, "inventory item deleted", slog.String("item_id", itemID))
	return nil
}
