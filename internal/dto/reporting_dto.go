package dto

import "github.com/bizease/bizease_backend/internal/core/domain"

// DashboardStatsResponse is the API representation of the dashboard snapshot.
type DashboardStatsResponse struct {
	domain.DashboardStats
}

// GSTSummaryResponse is the API representation of the period GST position.
type GSTSummaryResponse struct {
	domain.GSTSummary
}

// HSNSummaryResponse lists HSN-wise sales aggregates for a period.
type HSNSummaryResponse struct {
	Rows []domain.HSNSummaryRow `json:"rows"`
}

// PAndLResponse is the API representation of the profit and loss report.
type PAndLResponse struct {
	domain.PAndLReport
}

// AgingResponse lists aging buckets for receivables or payables.
type AgingResponse struct {
	Buckets []domain.AgingBucket `json:"buckets"`
}

// InventoryValuationResponse is the API representation of the stock valuation
// report.
type InventoryValuationResponse struct {
	domain.InventoryValuationReport
}
