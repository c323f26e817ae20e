package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/dto"
	"github.com/bizease/bizease_backend/internal/middleware"
)

// inventoryHandler handles HTTP requests for stocked items.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvc
}

func newInventoryHandler(is portssvc.InventorySvc) *inventoryHandler {
	return &inventoryHandler{inventoryService: is}
}

// registerInventoryRoutes registers routes related to inventory.
func registerInventoryRoutes(rg *gin.RouterGroup, is portssvc.InventorySvc) {
	h := newInventoryHandler(is)

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.createItem)
		inventory.GET("", h.listItems)
		inventory.GET("/:id", h.getItem)
		inventory.PUT("/:id", h.updateItem)
		inventory.DELETE("/:id", h.deleteItem)
		inventory.POST("/:id/adjust", h.adjustStock)
	}
}

func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to create inventory item", slog.String("error", err.Error()))
		respondError(c, err, "Failed to create inventory item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(item))
}

func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.inventoryService.ListItems(c.Request.Context(), c.Query("search"), c.Query("category"), c.Query("lowStock") == "true")
	if err != nil {
		logger.Error("Failed to list inventory items", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list inventory items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInventoryResponse(items))
}

func (h *inventoryHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	item, err := h.inventoryService.GetItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Warn("Failed to get inventory item", slog.String("error", err.Error()))
		respondError(c, err, "Failed to retrieve inventory item")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

func (h *inventoryHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		logger.Error("Failed to update inventory item", slog.String("error", err.Error()))
		respondError(c, err, "Failed to update inventory item")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

func (h *inventoryHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.inventoryService.AdjustStock(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		logger.Error("Failed to adjust stock", slog.String("error", err.Error()))
		respondError(c, err, "Failed to adjust stock")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

func (h *inventoryHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.inventoryService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		logger.Warn("Failed to delete inventory item", slog.String("error", err.Error()))
		respondError(c, err, "Failed to delete inventory item")
		return
	}
	c.Status(http.StatusNoContent)
}
