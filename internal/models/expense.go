package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the database model for standalone business costs.
type Expense struct {
	ExpenseID   string
	Date        time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
	PaymentMode string
	Reference   string
	AuditFields
}
