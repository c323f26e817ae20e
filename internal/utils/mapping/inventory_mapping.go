package mapping

import (
	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/models"
)

// ToDomainInventoryItem converts an inventory model to its domain form.
func ToDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ItemID:            m.ItemID,
		Name:              m.Name,
		HSN:               m.HSN,
		SKU:               m.SKU,
		Category:          m.Category,
		Unit:              m.Unit,
		PurchasePrice:     m.PurchasePrice,
		SellingPrice:      m.SellingPrice,
		Quantity:          m.Quantity,
		LowStockThreshold: m.LowStockThreshold,
		GSTRate:           m.GSTRate,
		LastPurchaseDate:  m.LastPurchaseDate,
		LastSaleDate:      m.LastSaleDate,
		AuditFields:       toDomainAuditFields(m.AuditFields),
	}
}

// ToModelInventoryItem converts a domain inventory item to its database model.
func ToModelInventoryItem(d domain.InventoryItem) models.InventoryItem {
	return models.InventoryItem{
		ItemID:            d.ItemID,
		Name:              d.Name,
		HSN:               d.HSN,
		SKU:               d.SKU,
		Category:          d.Category,
		Unit:              d.Unit,
		PurchasePrice:     d.PurchasePrice,
		SellingPrice:      d.SellingPrice,
		Quantity:          d.Quantity,
		LowStockThreshold: d.LowStockThreshold,
		GSTRate:           d.GSTRate,
		LastPurchaseDate:  d.LastPurchaseDate,
		LastSaleDate:      d.LastSaleDate,
		AuditFields:       toModelAuditFields(d.AuditFields),
	}
}
