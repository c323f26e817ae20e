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
	"github.com/bizease/bizease_backend/internal/utils/accounting"
	"github.com/bizease/bizease_backend/internal/utils/docnum"
	"github.com/bizease/bizease_backend/internal/utils/mapping"
	"github.com/bizease/bizease_backend/internal/utils/pagination"
)

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new repository for invoices and bills.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepository {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DocumentRepository = (*PgxDocumentRepository)(nil)

const documentColumns = `document_id, kind, document_number, party_bill_no, document_date, due_date,
	party_id, party_name, party_gstin, party_address, place_of_supply,
	subtotal, total_cgst, total_sgst, total_igst, round_off, grand_total, amount_paid, status,
	notes, terms, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, document_id, item_id, name, hsn, quantity, rate, gst_rate,
	taxable_amount, cgst, sgst, igst, total_amount`

func scanDocument(row pgx.Row) (models.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID, &m.Kind, &m.DocumentNumber, &m.PartyBillNo, &m.DocumentDate, &m.DueDate,
		&m.PartyID, &m.PartyName, &m.PartyGSTIN, &m.PartyAddress, &m.PlaceOfSupply,
		&m.Subtotal, &m.TotalCGST, &m.TotalSGST, &m.TotalIGST, &m.RoundOff, &m.GrandTotal, &m.AmountPaid, &m.Status,
		&m.Notes, &m.Terms, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func scanDocumentLine(row pgx.Row) (models.DocumentLine, error) {
	var m models.DocumentLine
	err := row.Scan(
		&m.LineID, &m.DocumentID, &m.ItemID, &m.Name, &m.HSN, &m.Quantity, &m.Rate, &m.GSTRate,
		&m.TaxableAmount, &m.CGST, &m.SGST, &m.IGST, &m.TotalAmount,
	)
	return m, err
}

// nextDocumentNumber assigns the next sequential number for the kind and
// year, serialized through an advisory lock so concurrent creates never
// collide.
func nextDocumentNumber(ctx context.Context, tx pgx.Tx, kind domain.DocumentKind, date time.Time) (string, error) {
	lockKey := fmt.Sprintf("docnum/%s/%d", kind, date.Year())
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, lockKey); err != nil {
		return "", fmt.Errorf("failed to acquire document number lock: %w", err)
	}

	var count int
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM documents
		WHERE kind = $1 AND EXTRACT(YEAR FROM document_date) = $2;
	`, string(kind), date.Year()).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("failed to count documents for numbering: %w", err)
	}
	return docnum.Format(kind, date, count+1), nil
}

// CreateDocument performs the whole create as one transaction: numbering,
// header and line inserts, stock movement per line, and the day book row.
func (r *PgxDocumentRepository) CreateDocument(ctx context.Context, doc domain.Document, entry domain.LedgerEntry) (domain.Document, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.Document{}, err
	}
	defer r.Rollback(ctx, tx)

	number, err := nextDocumentNumber(ctx, tx, doc.Kind, doc.DocumentDate)
	if err != nil {
		return domain.Document{}, err
	}
	doc.DocumentNumber = number

	m := mapping.ToModelDocument(doc)
	_, err = tx.Exec(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`,
		m.DocumentID, m.Kind, m.DocumentNumber, m.PartyBillNo, m.DocumentDate, m.DueDate,
		m.PartyID, m.PartyName, m.PartyGSTIN, m.PartyAddress, m.PlaceOfSupply,
		m.Subtotal, m.TotalCGST, m.TotalSGST, m.TotalIGST, m.RoundOff, m.GrandTotal, m.AmountPaid, m.Status,
		m.Notes, m.Terms, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Document{}, apperrors.NewAppError(500, "failed to insert document "+m.DocumentID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO document_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, line := range doc.Lines {
		lm := mapping.ToModelDocumentLine(line)
		batch.Queue(lineQuery,
			lm.LineID, lm.DocumentID, lm.ItemID, lm.Name, lm.HSN, lm.Quantity, lm.Rate, lm.GSTRate,
			lm.TaxableAmount, lm.CGST, lm.SGST, lm.IGST, lm.TotalAmount,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return domain.Document{}, apperrors.NewAppError(500, "failed to insert lines for document "+m.DocumentID, err)
	}

	if err := r.applyStockEffect(ctx, tx, doc, false); err != nil {
		return domain.Document{}, err
	}

	entry.ReferenceNumber = number
	if err := insertLedgerEntryTx(ctx, tx, entry); err != nil {
		return domain.Document{}, apperrors.NewAppError(500, "failed to insert ledger entry for document "+m.DocumentID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}

// lineStockDelta is the signed on-hand change a document line applies to its
// item. Sales move stock out, purchases move it in; reverse flips both, which
// is how a delete undoes the original movement. No floor is applied: selling
// more than is on hand drives the quantity negative.
func lineStockDelta(kind domain.DocumentKind, reverse bool, quantity decimal.Decimal) decimal.Decimal {
	outbound := kind == domain.SalesInvoice
	if reverse {
		outbound = !outbound
	}
	if outbound {
		return quantity.Neg()
	}
	return quantity
}

// applyStockEffect moves stock for every line under row locks. Sales decrement
// on-hand quantity, purchases increment it; reverse flips both. Quantities
// may go negative, the sale is not blocked.
func (r *PgxDocumentRepository) applyStockEffect(ctx context.Context, tx pgx.Tx, doc domain.Document, reverse bool) error {
	itemIDs := make([]string, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		itemIDs = append(itemIDs, l.ItemID)
	}
	if len(itemIDs) == 0 {
		return nil
	}

	rows, err := tx.Query(ctx, `SELECT item_id FROM inventory_items WHERE item_id = ANY($1) FOR UPDATE;`, itemIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock inventory rows", err)
	}
	locked := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return apperrors.NewAppError(500, "failed to scan locked inventory row", err)
		}
		locked[id] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "failed to lock inventory rows", err)
	}
	for _, id := range itemIDs {
		if !locked[id] {
			return apperrors.NewNotFoundError(fmt.Sprintf("item %s not found", id))
		}
	}

	for _, line := range doc.Lines {
		delta := lineStockDelta(doc.Kind, reverse, line.Quantity)

		dateColumn := "last_purchase_date"
		if doc.Kind == domain.SalesInvoice {
			dateColumn = "last_sale_date"
		}
		query := fmt.Sprintf(`
			UPDATE inventory_items
			SET quantity = quantity + $2, %s = $3, last_updated_at = now()
			WHERE item_id = $1;
		`, dateColumn)
		if _, err := tx.Exec(ctx, query, line.ItemID, delta, doc.DocumentDate); err != nil {
			return apperrors.NewAppError(500, "failed to move stock for item "+line.ItemID, err)
		}
	}
	return nil
}

func (r *PgxDocumentRepository) loadLines(ctx context.Context, documentIDs []string) (map[string][]models.DocumentLine, error) {
	if len(documentIDs) == 0 {
		return map[string][]models.DocumentLine{}, nil
	}
	rows, err := r.Pool.Query(ctx, `
		SELECT `+lineColumns+` FROM document_lines WHERE document_id = ANY($1) ORDER BY line_id;
	`, documentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query document lines: %w", err)
	}
	defer rows.Close()

	byDoc := map[string][]models.DocumentLine{}
	for rows.Next() {
		m, err := scanDocumentLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document line: %w", err)
		}
		byDoc[m.DocumentID] = append(byDoc[m.DocumentID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document lines: %w", err)
	}
	return byDoc, nil
}

func (r *PgxDocumentRepository) GetDocumentByID(ctx context.Context, documentID string) (domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1;`
	m, err := scanDocument(r.Pool.QueryRow(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Document{}, apperrors.NewNotFoundError(fmt.Sprintf("document %s not found", documentID))
		}
		return domain.Document{}, fmt.Errorf("failed to find document %s: %w", documentID, err)
	}

	lines, err := r.loadLines(ctx, []string{documentID})
	if err != nil {
		return domain.Document{}, err
	}
	return mapping.ToDomainDocument(m, lines[documentID]), nil
}

func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, params portsrepo.ListDocumentsParams) ([]domain.Document, string, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	query := `SELECT ` + documentColumns + ` FROM documents WHERE 1=1`
	args := []any{}
	if params.Kind != "" {
		args = append(args, string(params.Kind))
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	if params.PartyID != "" {
		args = append(args, params.PartyID)
		query += fmt.Sprintf(" AND party_id = $%d", len(args))
	}
	if params.Status != "" {
		args = append(args, string(params.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if params.DateFrom != nil {
		args = append(args, *params.DateFrom)
		query += fmt.Sprintf(" AND document_date >= $%d", len(args))
	}
	if params.DateTo != nil {
		args = append(args, *params.DateTo)
		query += fmt.Sprintf(" AND document_date <= $%d", len(args))
	}
	if params.NextToken != "" {
		tokenDate, tokenCreated, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid document pagination token: %w", err)
		}
		args = append(args, tokenDate)
		dateArg := len(args)
		args = append(args, tokenCreated)
		query += fmt.Sprintf(" AND (document_date, created_at) < ($%d, $%d)", dateArg, len(args))
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY document_date DESC, created_at DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	modelDocs := []models.Document{}
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan document: %w", err)
		}
		modelDocs = append(modelDocs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("failed to read documents: %w", err)
	}

	nextToken := ""
	if len(modelDocs) > limit {
		modelDocs = modelDocs[:limit]
		last := modelDocs[len(modelDocs)-1]
		nextToken = pagination.EncodeToken(last.DocumentDate, last.CreatedAt)
	}

	docs := make([]domain.Document, 0, len(modelDocs))
	for _, m := range modelDocs {
		docs = append(docs, mapping.ToDomainDocument(m, nil))
	}
	return docs, nextToken, nil
}

func (r *PgxDocumentRepository) ListDocumentsInRange(ctx context.Context, kind domain.DocumentKind, from, to time.Time) ([]domain.Document, error) {
	query := `
		SELECT ` + documentColumns + ` FROM documents
		WHERE kind = $1 AND document_date >= $2 AND document_date <= $3
		ORDER BY document_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, string(kind), from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents in range: %w", err)
	}
	defer rows.Close()

	modelDocs := []models.Document{}
	ids := []string{}
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		modelDocs = append(modelDocs, m)
		ids = append(ids, m.DocumentID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read documents in range: %w", err)
	}

	linesByDoc, err := r.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	docs := make([]domain.Document, 0, len(modelDocs))
	for _, m := range modelDocs {
		docs = append(docs, mapping.ToDomainDocument(m, linesByDoc[m.DocumentID]))
	}
	return docs, nil
}

func (r *PgxDocumentRepository) ListUnpaidDocuments(ctx context.Context, kind domain.DocumentKind) ([]domain.Document, error) {
	query := `
		SELECT ` + documentColumns + ` FROM documents
		WHERE kind = $1 AND status IN ('PENDING', 'PARTIAL')
		ORDER BY due_date;
	`
	rows, err := r.Pool.Query(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query unpaid documents: %w", err)
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, mapping.ToDomainDocument(m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read unpaid documents: %w", err)
	}
	return docs, nil
}

// RecordPayment re-validates the amount against the row under FOR UPDATE, so
// concurrent payments cannot overpay a document.
func (r *PgxDocumentRepository) RecordPayment(ctx context.Context, documentID string, amount decimal.Decimal, entry domain.LedgerEntry) (domain.Document, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.Document{}, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1 FOR UPDATE;`
	m, err := scanDocument(tx.QueryRow(ctx, lockQuery, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Document{}, apperrors.NewNotFoundError(fmt.Sprintf("document %s not found", documentID))
		}
		return domain.Document{}, fmt.Errorf("failed to lock document %s: %w", documentID, err)
	}

	doc := mapping.ToDomainDocument(m, nil)
	doc, err = accounting.ApplyPayment(doc, amount)
	if err != nil {
		return domain.Document{}, apperrors.NewAppError(400, "payment rejected for document "+doc.DocumentNumber, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE documents
		SET amount_paid = $2, status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE document_id = $1;
	`, documentID, doc.AmountPaid, string(doc.Status), entry.LastUpdatedAt, entry.LastUpdatedBy)
	if err != nil {
		return domain.Document{}, apperrors.NewAppError(500, "failed to update payment on document "+documentID, err)
	}

	entry.ReferenceNumber = doc.DocumentNumber
	if err := insertLedgerEntryTx(ctx, tx, entry); err != nil {
		return domain.Document{}, apperrors.NewAppError(500, "failed to insert payment ledger entry", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return domain.Document{}, err
	}
	return r.GetDocumentByID(ctx, documentID)
}

// DeleteDocument removes the document with its lines and day book rows and
// puts the moved stock back.
func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m, err := scanDocument(tx.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE document_id = $1 FOR UPDATE;`, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError(fmt.Sprintf("document %s not found", documentID))
		}
		return fmt.Errorf("failed to lock document %s for delete: %w", documentID, err)
	}

	rows, err := tx.Query(ctx, `SELECT `+lineColumns+` FROM document_lines WHERE document_id = $1;`, documentID)
	if err != nil {
		return fmt.Errorf("failed to load lines for delete of %s: %w", documentID, err)
	}
	lines := []models.DocumentLine{}
	for rows.Next() {
		lm, err := scanDocumentLine(rows)
		if err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan line for delete: %w", err)
		}
		lines = append(lines, lm)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read lines for delete: %w", err)
	}

	doc := mapping.ToDomainDocument(m, lines)
	if err := r.applyStockEffect(ctx, tx, doc, true); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM ledger_entries WHERE reference_id = $1;`, documentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete ledger entries for document "+documentID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM document_lines WHERE document_id = $1;`, documentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for document "+documentID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM documents WHERE document_id = $1;`, documentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete document "+documentID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxDocumentRepository) CountDocumentsByStatus(ctx context.Context, kind domain.DocumentKind, from, to, asOf time.Time) (int, int, int, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PAID'),
			COUNT(*) FILTER (WHERE status IN ('PENDING', 'PARTIAL') AND due_date < $4)
		FROM documents
		WHERE kind = $1 AND document_date >= $2 AND document_date <= $3;
	`
	var total, paid, overdue int
	err := r.Pool.QueryRow(ctx, query, string(kind), from, to, asOf).Scan(&total, &paid, &overdue)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count documents by status: %w", err)
	}
	return total, paid, overdue, nil
}
