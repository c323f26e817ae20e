package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/dto"
	"github.com/bizease/bizease_backend/internal/middleware"
)

// companyHandler handles HTTP requests for the company profile.
type companyHandler struct {
	companyService portssvc.CompanySvc
}

func newCompanyHandler(cs portssvc.CompanySvc) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyRoutes registers routes related to the company profile.
func registerCompanyRoutes(rg *gin.RouterGroup, cs portssvc.CompanySvc) {
	h := newCompanyHandler(cs)

	company := rg.Group("/company")
	{
		company.GET("", h.getProfile)
		company.PUT("", h.upsertProfile)
	}
}

func (h *companyHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	profile, err := h.companyService.GetCompanyProfile(c.Request.Context())
	if err != nil {
		logger.Warn("Failed to get company profile", slog.String("error", err.Error()))
		respondError(c, err, "Failed to retrieve company profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyProfileResponse(profile))
}

func (h *companyHandler) upsertProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertCompanyProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.companyService.UpsertCompanyProfile(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to upsert company profile", slog.String("error", err.Error()))
		respondError(c, err, "Failed to save company profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyProfileResponse(profile))
}
