package mapping

import (
	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/models"
)

// ToDomainExpense converts an expense model to its domain form.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		Date:        m.Date,
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		PaymentMode: domain.PaymentMode(m.PaymentMode),
		Reference:   m.Reference,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// ToModelExpense converts a domain expense to its database model.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		Date:        d.Date,
		Category:    d.Category,
		Description: d.Description,
		Amount:      d.Amount,
		PaymentMode: string(d.PaymentMode),
		Reference:   d.Reference,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}
