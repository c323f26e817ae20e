package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/dto"
	"github.com/bizease/bizease_backend/internal/middleware"
)

// alertHandler handles HTTP requests for dashboard alerts.
type alertHandler struct {
	alertService portssvc.AlertSvc
}

func newAlertHandler(as portssvc.AlertSvc) *alertHandler {
	return &alertHandler{alertService: as}
}

// registerAlertRoutes registers routes related to alerts.
func registerAlertRoutes(rg *gin.RouterGroup, as portssvc.AlertSvc) {
	h := newAlertHandler(as)

	alerts := rg.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.POST("/refresh", h.refreshAlerts)
		alerts.PUT("/:id/read", h.markAlertRead)
		alerts.PUT("/read-all", h.markAllAlertsRead)
		alerts.DELETE("/:id", h.deleteAlert)
	}
}

func (h *alertHandler) listAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	alerts, err := h.alertService.ListAlerts(c.Request.Context(), c.Query("unreadOnly") == "true")
	if err != nil {
		logger.Error("Failed to list alerts", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list alerts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAlertsResponse(alerts))
}

func (h *alertHandler) refreshAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.alertService.RefreshAlerts(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to refresh alerts", slog.String("error", err.Error()))
		respondError(c, err, "Failed to refresh alerts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

func (h *alertHandler) markAlertRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.alertService.MarkAlertRead(c.Request.Context(), c.Param("id")); err != nil {
		logger.Warn("Failed to mark alert read", slog.String("error", err.Error()))
		respondError(c, err, "Failed to mark alert read")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *alertHandler) markAllAlertsRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.alertService.MarkAllAlertsRead(c.Request.Context()); err != nil {
		logger.Error("Failed to mark all alerts read", slog.String("error", err.Error()))
		respondError(c, err, "Failed to mark all alerts read")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *alertHandler) deleteAlert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.alertService.DeleteAlert(c.Request.Context(), c.Param("id")); err != nil {
		logger.Warn("Failed to delete alert", slog.String("error", err.Error()))
		respondError(c, err, "Failed to delete alert")
		return
	}
	c.Status(http.StatusNoContent)
}
