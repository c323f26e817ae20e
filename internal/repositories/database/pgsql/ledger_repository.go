package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	"github.com/bizease/bizease_backend/internal/models"
	"github.com/bizease/bizease_backend/internal/utils/mapping"
	"github.com/bizease/bizease_backend/internal/utils/pagination"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new read-side repository for the day book.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

const ledgerColumns = `entry_id, date, type, reference_id, reference_number, party_id, party_name,
	description, payment_mode, debit, credit, balance,
	created_at, created_by, last_updated_at, last_updated_by`

func scanLedgerEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID, &m.Date, &m.Type, &m.ReferenceID, &m.ReferenceNumber, &m.PartyID, &m.PartyName,
		&m.Description, &m.PaymentMode, &m.Debit, &m.Credit, &m.Balance,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// insertLedgerEntryTx appends a day book row inside an open transaction. The
// advisory lock serializes concurrent appends so the running balance stays
// consistent. Balance moves by debit - credit.
func insertLedgerEntryTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('ledger_entries'));`); err != nil {
		return fmt.Errorf("failed to acquire ledger lock: %w", err)
	}

	var lastBalance decimal.Decimal
	err := tx.QueryRow(ctx, `
		SELECT COALESCE((
			SELECT balance FROM ledger_entries
			ORDER BY created_at DESC, entry_id DESC
			LIMIT 1
		), 0);
	`).Scan(&lastBalance)
	if err != nil {
		return fmt.Errorf("failed to read last ledger balance: %w", err)
	}

	m := mapping.ToModelLedgerEntry(entry)
	m.Balance = lastBalance.Add(m.Debit).Sub(m.Credit)

	_, err = tx.Exec(ctx, `
		INSERT INTO ledger_entries (`+ledgerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`,
		m.EntryID, m.Date, m.Type, m.ReferenceID, m.ReferenceNumber, m.PartyID, m.PartyName,
		m.Description, m.PaymentMode, m.Debit, m.Credit, m.Balance,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry %s: %w", m.EntryID, err)
	}
	return nil
}

func (r *PgxLedgerRepository) ListEntries(ctx context.Context, params portsrepo.ListLedgerParams) ([]domain.LedgerEntry, string, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE 1=1`
	args := []any{}
	if params.Type != "" {
		args = append(args, string(params.Type))
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if params.PartyID != "" {
		args = append(args, params.PartyID)
		query += fmt.Sprintf(" AND party_id = $%d", len(args))
	}
	if params.DateFrom != nil {
		args = append(args, *params.DateFrom)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if params.DateTo != nil {
		args = append(args, *params.DateTo)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if params.NextToken != "" {
		tokenDate, tokenCreated, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid ledger pagination token: %w", err)
		}
		args = append(args, tokenDate)
		dateArg := len(args)
		args = append(args, tokenCreated)
		query += fmt.Sprintf(" AND (date, created_at) < ($%d, $%d)", dateArg, len(args))
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	modelEntries := []models.LedgerEntry{}
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("failed to read ledger entries: %w", err)
	}

	nextToken := ""
	if len(modelEntries) > limit {
		modelEntries = modelEntries[:limit]
		last := modelEntries[len(modelEntries)-1]
		nextToken = pagination.EncodeToken(last.Date, last.CreatedAt)
	}

	entries := make([]domain.LedgerEntry, 0, len(modelEntries))
	for _, m := range modelEntries {
		entries = append(entries, mapping.ToDomainLedgerEntry(m))
	}
	return entries, nextToken, nil
}

func (r *PgxLedgerRepository) ListEntriesByParty(ctx context.Context, partyID string, from, to time.Time) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE party_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, partyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query party statement for %s: %w", partyID, err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, mapping.ToDomainLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read party statement: %w", err)
	}
	return entries, nil
}
