package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

// CreateExpenseRequest is the payload for recording a business cost.
type CreateExpenseRequest struct {
	Date        time.Time          `json:"date" binding:"required"`
	Category    string             `json:"category" binding:"required,max=100"`
	Description string             `json:"description" binding:"omitempty,max=500"`
	Amount      decimal.Decimal    `json:"amount" binding:"required"`
	PaymentMode domain.PaymentMode `json:"paymentMode" binding:"required,oneof=CASH DIGITAL CREDIT"`
	Reference   string             `json:"reference" binding:"omitempty,max=100"`
}

// UpdateExpenseRequest is the payload for correcting a recorded expense.
type UpdateExpenseRequest struct {
	Date        *time.Time          `json:"date"`
	Category    *string             `json:"category" binding:"omitempty,max=100"`
	Description *string             `json:"description" binding:"omitempty,max=500"`
	Amount      *decimal.Decimal    `json:"amount"`
	PaymentMode *domain.PaymentMode `json:"paymentMode" binding:"omitempty,oneof=CASH DIGITAL CREDIT"`
	Reference   *string             `json:"reference" binding:"omitempty,max=100"`
}

// ExpenseResponse is the API representation of an expense.
type ExpenseResponse struct {
	domain.Expense
}

// ListExpensesResponse is a page of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    decimal.Decimal   `json:"total"`
}

// ToExpenseResponse converts a domain expense to its response form.
func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{Expense: e}
}

// ToListExpensesResponse converts domain expenses to a list response with the
// period total.
func ToListExpensesResponse(expenses []domain.Expense) ListExpensesResponse {
	resp := ListExpensesResponse{Expenses: make([]ExpenseResponse, 0, len(expenses))}
	total := decimal.Zero
	for _, e := range expenses {
		resp.Expenses = append(resp.Expenses, ToExpenseResponse(e))
		total = total.Add(e.Amount)
	}
	resp.Total = total
	return resp
}
