package services

import (
	"context"

	"github.com/bizease/bizease_backend/internal/core/domain"
	"github.com/bizease/bizease_backend/internal/core/ports/repositories"
	"github.com/bizease/bizease_backend/internal/dto"
)

// ExpenseSvc manages standalone business costs.
type ExpenseSvc interface {
	CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (domain.Expense, error)
	GetExpenseByID(ctx context.Context, expenseID string) (domain.Expense, error)
	ListExpenses(ctx context.Context, params repositories.ListExpensesParams) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, userID string, expenseID string, req dto.UpdateExpenseRequest) (domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}
