package services

import (
	"context"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

// AlertSvc manages dashboard alerts.
type AlertSvc interface {
	ListAlerts(ctx context.Context, unreadOnly bool) ([]domain.Alert, error)
	MarkAlertRead(ctx context.Context, alertID string) error
	MarkAllAlertsRead(ctx context.Context) error
	DeleteAlert(ctx context.Context, alertID string) error

	// RefreshAlerts scans current data and raises any missing low stock and
	// overdue payment alerts.
	RefreshAlerts(ctx context.Context, userID string) (int, error)
}
