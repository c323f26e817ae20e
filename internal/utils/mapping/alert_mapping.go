package mapping

import (
	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/models"
)

// ToDomainAlert converts an alert model to its domain form.
func ToDomainAlert(m models.Alert) domain.Alert {
	return domain.Alert{
		AlertID:     m.AlertID,
		Type:        domain.AlertType(m.Type),
		Title:       m.Title,
		Message:     m.Message,
		Severity:    domain.AlertSeverity(m.Severity),
		IsRead:      m.IsRead,
		RelatedID:   m.RelatedID,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// ToModelAlert converts a domain alert to its database model.
func ToModelAlert(d domain.Alert) models.Alert {
	return models.Alert{
		AlertID:     d.AlertID,
		Type:        string(d.Type),
		Title:       d.Title,
		Message:     d.Message,
		Severity:    string(d.Severity),
		IsRead:      d.IsRead,
		RelatedID:   d.RelatedID,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}
