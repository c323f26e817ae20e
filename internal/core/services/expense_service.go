package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/apperrors"
	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/dto"
)

// ErrAmountNotPositive is returned when an expense amount is zero or negative.
var ErrAmountNotPositive = errors.New("expense amount must be positive")

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository) portssvc.ExpenseSvc {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvc = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (domain.Expense, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.Expense{}, apperrors.NewAppError(400, "expense amount must be positive", ErrAmountNotPositive)
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		PaymentMode: req.PaymentMode,
		Reference:   req.Reference,
		AuditFields: audit,
	}
	// Money out: expenses credit the day book.
	entry := domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		Date:        req.Date,
		Type:        domain.LedgerExpense,
		ReferenceID: expense.ExpenseID,
		Description: fmt.Sprintf("Expense: %s", req.Category),
		PaymentMode: req.PaymentMode,
		Debit:       decimal.Zero,
		Credit:      req.Amount,
		AuditFields: audit,
	}

	if err := s.expenseRepo.CreateExpense(ctx, expense, entry); err != nil {
		s.LogError(ctx, err, "failed to create expense", slog.String("category", req.Category))
		return domain.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}
	s.LogInfo(ctx, "expense created", slog.String("expense_id", expense.ExpenseID), slog.String("amount", expense.Amount.String()))
	return expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (domain.Expense, error) {
	expense, err := s.expenseRepo.GetExpenseByID(ctx, expenseID)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("failed to get expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, params portsrepo.ListExpensesParams) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, userID string, expenseID string, req dto.UpdateExpenseRequest) (domain.Expense, error) {
	expense, err := s.expenseRepo.GetExpenseByID(ctx, expenseID)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("failed to load expense %s for update: %w", expenseID, err)
	}

	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return domain.Expense{}, apperrors.NewAppError(400, "expense amount must be positive", ErrAmountNotPositive)
		}
		expense.Amount = *req.Amount
	}
	if req.PaymentMode != nil {
		expense.PaymentMode = *req.PaymentMode
	}
	if req.Reference != nil {
		expense.Reference = *req.Reference
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "failed to update expense", slog.String("expense_id", expenseID))
		return domain.Expense{}, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	s.LogInfo(ctx, "expense deleted", slog.String("expense_id", expenseID))
	return nil
}
