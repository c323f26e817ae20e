package repositories

import (
	"context"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

// AlertRepository persists dashboard alerts.
type AlertRepository interface {
	CreateAlert(ctx context.Context, alert domain.Alert) error
	ListAlerts(ctx context.Context, unreadOnly bool) ([]domain.Alert, error)
	MarkAlertRead(ctx context.Context, alertID string) error
	MarkAllAlertsRead(ctx context.Context) error
	DeleteAlert(ctx context.Context, alertID string) error

	// HasUnreadAlert reports whether an unread alert of the given type already
	// references relatedID. Used to avoid duplicate low stock alerts.
	HasUnreadAlert(ctx context.Context, alertType domain.AlertType, relatedID string) (bool, error)
}
