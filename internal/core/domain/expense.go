package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode records how an expense or payment was settled.
type PaymentMode string

const (
	PaymentCash    PaymentMode = "CASH"
	PaymentDigital PaymentMode = "DIGITAL"
	PaymentCredit  PaymentMode = "CREDIT"
)

// Expense is a standalone business cost, independent of any document.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode PaymentMode     `json:"paymentMode"`
	Reference   string          `json:"reference,omitempty"`
	AuditFields
}
