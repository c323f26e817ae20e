package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

// ListExpensesParams filters expense listings.
type ListExpensesParams struct {
	Category string
	DateFrom *time.Time
	DateTo   *time.Time
}

// ExpenseRepository persists standalone business costs.
type ExpenseRepository interface {
	// CreateExpense inserts the expense and its ledger entry in one
	// transaction.
	CreateExpense(ctx context.Context, expense domain.Expense, entry domain.LedgerEntry) error
	GetExpenseByID(ctx context.Context, expenseID string) (domain.Expense, error)
	ListExpenses(ctx context.Context, params ListExpensesParams) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error

	SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumExpensesByCategory(ctx context.Context, from, to time.Time) (map[string]decimal.Decimal, error)
}
