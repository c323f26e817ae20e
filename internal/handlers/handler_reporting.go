package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizease/bizease_backend/internal/core/domain"
	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/dto"
	"github.com/bizease/bizease_backend/internal/middleware"
	"github.com/bizease/bizease_backend/internal/utils/accounting"
)

// reportingHandler serves dashboard and tax reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvc) {
	h := newReportingHandler(rs)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboardStats)
		reports.GET("/gst-summary", h.getGSTSummary)
		reports.GET("/hsn-summary", h.getHSNSummary)
		reports.GET("/pnl", h.getPAndL)
		reports.GET("/receivables-aging", h.getReceivablesAging)
		reports.GET("/payables-aging", h.getPayablesAging)
		reports.GET("/inventory-valuation", h.getInventoryValuation)
	}
}

func periodParam(c *gin.Context) accounting.Period {
	return accounting.Period(c.DefaultQuery("period", string(accounting.PeriodLast30Days)))
}

func (h *reportingHandler) getDashboardStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.reportingService.GetDashboardStats(c.Request.Context(), periodParam(c))
	if err != nil {
		logger.Error("Failed to build dashboard stats", slog.String("error", err.Error()))
		respondError(c, err, "Failed to build dashboard stats")
		return
	}
	c.JSON(http.StatusOK, dto.DashboardStatsResponse{DashboardStats: stats})
}

func (h *reportingHandler) getGSTSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.reportingService.GetGSTSummary(c.Request.Context(), periodParam(c))
	if err != nil {
		logger.Error("Failed to build GST summary", slog.String("error", err.Error()))
		respondError(c, err, "Failed to build GST summary")
		return
	}
	c.JSON(http.StatusOK, dto.GSTSummaryResponse{GSTSummary: summary})
}

func (h *reportingHandler) getHSNSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rows, err := h.reportingService.GetHSNSummary(c.Request.Context(), periodParam(c))
	if err != nil {
		logger.Error("Failed to build HSN summary", slog.String("error", err.Error()))
		respondError(c, err, "Failed to build HSN summary")
		return
	}
	c.JSON(http.StatusOK, dto.HSNSummaryResponse{Rows: rows})
}

func (h *reportingHandler) getPAndL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	report, err := h.reportingService.GetPAndL(c.Request.Context(), periodParam(c))
	if err != nil {
		logger.Error("Failed to build P&L report", slog.String("error", err.Error()))
		respondError(c, err, "Failed to build P&L report")
		return
	}
	c.JSON(http.StatusOK, dto.PAndLResponse{PAndLReport: report})
}

func (h *reportingHandler) getInventoryValuation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	report, err := h.reportingService.GetInventoryValuation(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build inventory valuation", slog.String("error", err.Error()))
		respondError(c, err, "Failed to build inventory valuation")
		return
	}
	c.JSON(http.StatusOK, dto.InventoryValuationResponse{InventoryValuationReport: report})
}

func (h *reportingHandler) getReceivablesAging(c *gin.Context) {
	h.aging(c, domain.SalesInvoice)
}

func (h *reportingHandler) getPayablesAging(c *gin.Context) {
	h.aging(c, domain.PurchaseBill)
}

func (h *reportingHandler) aging(c *gin.Context, kind domain.DocumentKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	buckets, err := h.reportingService.GetAging(c.Request.Context(), kind)
	if err != nil {
		logger.Error("Failed to build aging report", slog.String("error", err.Error()))
		respondError(c, err, "Failed to build aging report")
		return
	}
	c.JSON(http.StatusOK, dto.AgingResponse{Buckets: buckets})
}
