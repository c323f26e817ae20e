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

// partyHandler handles HTTP requests for customers and suppliers.
type partyHandler struct {
	partyService  portssvc.PartySvc
	ledgerService portssvc.LedgerSvc
}

func newPartyHandler(ps portssvc.PartySvc, ls portssvc.LedgerSvc) *partyHandler {
	return &partyHandler{partyService: ps, ledgerService: ls}
}

// registerPartyRoutes registers routes related to parties.
func registerPartyRoutes(rg *gin.RouterGroup, ps portssvc.PartySvc, ls portssvc.LedgerSvc) {
	h := newPartyHandler(ps, ls)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:id", h.getParty)
		parties.PUT("/:id", h.updateParty)
		parties.DELETE("/:id", h.deleteParty)
		parties.GET("/:id/statement", h.getPartyStatement)
	}
}

func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to create party", slog.String("error", err.Error()))
		respondError(c, err, "Failed to create party")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kind := domain.PartyKind(c.Query("kind"))
	if kind != "" && kind != domain.Customer && kind != domain.Supplier {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be CUSTOMER or SUPPLIER"})
		return
	}
	includeInactive := c.Query("includeInactive") == "true"

	parties, err := h.partyService.ListParties(c.Request.Context(), kind, c.Query("search"), includeInactive)
	if err != nil {
		logger.Error("Failed to list parties", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list parties")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPartiesResponse(parties))
}

func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	party, err := h.partyService.GetPartyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Warn("Failed to get party", slog.String("error", err.Error()))
		respondError(c, err, "Failed to retrieve party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		logger.Error("Failed to update party", slog.String("error", err.Error()))
		respondError(c, err, "Failed to update party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

func (h *partyHandler) deleteParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.partyService.DeleteParty(c.Request.Context(), c.Param("id")); err != nil {
		logger.Warn("Failed to delete party", slog.String("error", err.Error()))
		respondError(c, err, "Failed to delete party")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *partyHandler) getPartyStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period := accounting.Period(c.DefaultQuery("period", string(accounting.PeriodThisMonth)))

	entries, err := h.ledgerService.GetPartyStatement(c.Request.Context(), c.Param("id"), period)
	if err != nil {
		logger.Error("Failed to get party statement", slog.String("error", err.Error()))
		respondError(c, err, "Failed to retrieve party statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLedgerResponse(entries, ""))
}
