package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/dto"
	"github.com/bizease/bizease_backend/internal/middleware"
)

// ledgerHandler serves the day book.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

func newLedgerHandler(ls portssvc.LedgerSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes related to the ledger.
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvc) {
	h := newLedgerHandler(ls)
	rg.GET("/ledger", h.listEntries)
}

func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := portsrepo.ListLedgerParams{
		Type:      domain.LedgerEntryType(c.Query("type")),
		PartyID:   c.Query("partyID"),
		NextToken: c.Query("nextToken"),
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		params.Limit = limit
	}
	for _, q := range []struct {
		name   string
		target **time.Time
	}{
		{"dateFrom", &params.DateFrom},
		{"dateTo", &params.DateTo},
	} {
		if v := c.Query(q.name); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": q.name + " must be YYYY-MM-DD"})
				return
			}
			*q.target = &t
		}
	}

	entries, nextToken, err := h.ledgerService.ListEntries(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list ledger entries", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list ledger entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLedgerResponse(entries, nextToken))
}
