package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/middleware"
	"github.com/bizease/bizease_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerCompanyRoutes(v1, services.CompanySvc)
	registerPartyRoutes(v1, services.PartySvc, services.LedgerSvc)
	registerInventoryRoutes(v1, services.InventorySvc)
	registerDocumentRoutes(v1, services.DocumentSvc)
	registerExpenseRoutes(v1, services.ExpenseSvc)
	registerLedgerRoutes(v1, services.LedgerSvc)
	registerAlertRoutes(v1, services.AlertSvc)
	registerReportingRoutes(v1, services.ReportingSvc)
}
