package services

import (
	"context"

	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/utils/accounting"
)

// ReportingSvc computes dashboard and tax reports over a period preset.
type ReportingSvc interface {
	GetDashboardStats(ctx context.Context, period accounting.Period) (domain.DashboardStats, error)
	GetGSTSummary(ctx context.Context, period accounting.Period) (domain.GSTSummary, error)
	GetHSNSummary(ctx context.Context, period accounting.Period) ([]domain.HSNSummaryRow, error)
	GetPAndL(ctx context.Context, period accounting.Period) (domain.PAndLReport, error)
	GetAging(ctx context.Context, kind domain.DocumentKind) ([]domain.AgingBucket, error)
	GetInventoryValuation(ctx context.Context) (domain.InventoryValuationReport, error)
}
