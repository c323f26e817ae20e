package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
)

type alertService struct {
	BaseService
	alertRepo     portsrepo.AlertRepository
	inventoryRepo portsrepo.InventoryRepository
	documentRepo  portsrepo.DocumentRepository
}

// NewAlertService creates a new alert service.
func NewAlertService(
	alertRepo portsrepo.AlertRepository,
	inventoryRepo portsrepo.InventoryRepository,
	documentRepo portsrepo.DocumentRepository,
) portssvc.AlertSvc {
	return &alertService{
		alertRepo:     alertRepo,
		inventoryRepo: inventoryRepo,
		documentRepo:  documentRepo,
	}
}

var _ portssvc.AlertSvc = (*alertService)(nil)

func (s *alertService) ListAlerts(ctx context.Context, unreadOnly bool) ([]domain.Alert, error) {
	alerts, err := s.alertRepo.ListAlerts(ctx, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	if alerts == nil {
		alerts = []domain.Alert{}
	}
	return alerts, nil
}

func (s *alertService) MarkAlertRead(ctx context.Context, alertID string) error {
	if err := s.alertRepo.MarkAlertRead(ctx, alertID); err != nil {
		return fmt.Errorf("failed to mark alert %s read: %w", alertID, err)
	}
	return nil
}

func (s *alertService) MarkAllAlertsRead(ctx context.Context) error {
	if err := s.alertRepo.MarkAllAlertsRead(ctx); err != nil {
		return fmt.Errorf("failed to mark all alerts read: %w", err)
	}
	return nil
}

func (s *alertService) DeleteAlert(ctx context.Context, alertID string) error {
	if err := s.alertRepo.DeleteAlert(ctx, alertID); err != nil {
		return fmt.Errorf("failed to delete alert %s: %w", alertID, err)
	}
	return nil
}

// RefreshAlerts sweeps inventory and unpaid invoices and raises any missing
// low stock and overdue payment alerts. Returns the number of alerts created.
func (s *alertService) RefreshAlerts(ctx context.Context, userID string) (int, error) {
	created := 0

	lowStock, err := s.inventoryRepo.ListItems(ctx, portsrepo.ListInventoryParams{LowStock: true})
	if err != nil {
		return 0, fmt.Errorf("failed to list low stock items: %w", err)
	}
	for _, item := range lowStock {
		severity := domain.SeverityWarning
		if item.Quantity.LessThanOrEqual(decimal.Zero) {
			severity = domain.SeverityCritical
		}
		ok, err := s.createIfMissing(ctx, userID, domain.Alert{
			Type:      domain.AlertLowStock,
			Title:     "Low stock",
			Message:   fmt.Sprintf("%s is down to %s %s", item.Name, item.Quantity, item.Unit),
			Severity:  severity,
			RelatedID: item.ItemID,
		})
		if err != nil {
			s.LogError(ctx, err, "failed to raise low stock alert", slog.String("item_id", item.ItemID))
			continue
		}
		if ok {
			created++
		}
	}

	now := nowFunc()
	unpaid, err := s.documentRepo.ListUnpaidDocuments(ctx, domain.SalesInvoice)
	if err != nil {
		return created, fmt.Errorf("failed to list unpaid invoices: %w", err)
	}
	for _, doc := range unpaid {
		if !doc.IsOverdue(now) {
			continue
		}
		ok, err := s.createIfMissing(ctx, userID, domain.Alert{
			Type:      domain.AlertOverduePayment,
			Title:     "Overdue payment",
			Message:   fmt.Sprintf("%s from %s is overdue, %s outstanding", doc.DocumentNumber, doc.PartyName, doc.Outstanding()),
			Severity:  domain.SeverityWarning,
			RelatedID: doc.DocumentID,
		})
		if err != nil {
			s.LogError(ctx, err, "failed to raise overdue alert", slog.String("document_id", doc.DocumentID))
			continue
		}
		if ok {
			created++
		}
	}

	s.LogInfo(ctx, "alerts refreshed", slog.Int("created", created))
	return created, nil
}

// createIfMissing creates the alert unless an unread one of the same type
// already references the same entity.
func (s *alertService) createIfMissing(ctx context.Context, userID string, alert domain.Alert) (bool, error) {
	exists, err := s.alertRepo.HasUnreadAlert(ctx, alert.Type, alert.RelatedID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	now := nowFunc()
	alert.AlertID = uuid.NewString()
	alert.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	if err := s.alertRepo.CreateAlert(ctx, alert); err != nil {
		return false, err
	}
	return true, nil
}
