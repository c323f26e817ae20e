package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/apperrors"
	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	"github.com/bizease/bizease_backend/internal/models"
	"github.com/bizease/bizease_backend/internal/utils/mapping"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expenses.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, date, category, description, amount, payment_mode, reference,
	created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID, &m.Date, &m.Category, &m.Description, &m.Amount, &m.PaymentMode, &m.Reference,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// CreateExpense inserts the expense and its day book row in one transaction.
func (r *PgxExpenseRepository) CreateExpense(ctx context.Context, expense domain.Expense, entry domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelExpense(expense)
	_, err = tx.Exec(ctx, `
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`,
		m.ExpenseID, m.Date, m.Category, m.Description, m.Amount, m.PaymentMode, m.Reference,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert expense "+m.ExpenseID, err)
	}

	if err := insertLedgerEntryTx(ctx, tx, entry); err != nil {
		return apperrors.NewAppError(500, "failed to insert ledger entry for expense "+m.ExpenseID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxExpenseRepository) GetExpenseByID(ctx context.Context, expenseID string) (domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Expense{}, apperrors.NewNotFoundError(fmt.Sprintf("expense %s not found", expenseID))
		}
		return domain.Expense{}, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	return mapping.ToDomainExpense(m), nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, params portsrepo.ListExpensesParams) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE 1=1`
	args := []any{}
	if params.Category != "" {
		args = append(args, params.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if params.DateFrom != nil {
		args = append(args, *params.DateFrom)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if params.DateTo != nil {
		args = append(args, *params.DateTo)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC, created_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, mapping.ToDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses SET
			date = $2, category = $3, description = $4, amount = $5, payment_mode = $6, reference = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE expense_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.Date, m.Category, m.Description, m.Amount, m.PaymentMode, m.Reference,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("expense %s not found", m.ExpenseID))
	}
	return nil
}

// DeleteExpense removes the expense and its day book row together.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM ledger_entries WHERE reference_id = $1;`, expenseID); err != nil {
		return apperrors.NewAppError(500, "failed to delete ledger entries for expense "+expenseID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("expense %s not found", expenseID))
	}

	return r.Commit(ctx, tx)
}

func (r *PgxExpenseRepository) SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date >= $1 AND date <= $2;
	`, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

func (r *PgxExpenseRepository) SumExpensesByCategory(ctx context.Context, from, to time.Time) (map[string]decimal.Decimal, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT category, COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE date >= $1 AND date <= $2
		GROUP BY category;
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}
	defer rows.Close()

	sums := map[string]decimal.Decimal{}
	for rows.Next() {
		var category string
		var total decimal.Decimal
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan category sum: %w", err)
		}
		sums[category] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category sums: %w", err)
	}
	return sums, nil
}
