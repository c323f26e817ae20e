package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/core/domain"
)

// ListDocumentsParams filters and paginates document listings. NextToken is
// an opaque cursor from a previous page.
type ListDocumentsParams struct {
	Kind      domain.DocumentKind
	PartyID   string
	Status    domain.DocumentStatus
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
	NextToken string
}

// DocumentRepository persists invoices and bills. Create and RecordPayment
// are transactional: document rows, stock movements and the ledger row commit
// or roll back together.
type DocumentRepository interface {
	// CreateDocument assigns the next document number for the document's kind
	// and year, inserts the header and lines, applies the stock effect of
	// each line (decrement for sales, increment for purchases) and appends
	// the ledger entry, all in one transaction. The stored document is
	// returned with its number assigned.
	CreateDocument(ctx context.Context, doc domain.Document, entry domain.LedgerEntry) (domain.Document, error)

	GetDocumentByID(ctx context.Context, documentID string) (domain.Document, error)
	ListDocuments(ctx context.Context, params ListDocumentsParams) ([]domain.Document, string, error)

	// ListDocumentsInRange returns all documents of a kind dated within the
	// closed interval, lines included. Reports use this.
	ListDocumentsInRange(ctx context.Context, kind domain.DocumentKind, from, to time.Time) ([]domain.Document, error)

	// ListUnpaidDocuments returns non-draft documents of a kind that still
	// carry an outstanding balance.
	ListUnpaidDocuments(ctx context.Context, kind domain.DocumentKind) ([]domain.Document, error)

	// RecordPayment locks the document row, applies the payment, updates the
	// stored status and appends the ledger entry in one transaction.
	RecordPayment(ctx context.Context, documentID string, amount decimal.Decimal, entry domain.LedgerEntry) (domain.Document, error)

	// DeleteDocument removes the document and its lines and reverses the
	// stock effect of each line in one transaction.
	DeleteDocument(ctx context.Context, documentID string) error

	// CountDocumentsByStatus returns total, paid and overdue counts for a
	// kind within the interval. Overdue is evaluated against asOf.
	CountDocumentsByStatus(ctx context.Context, kind domain.DocumentKind, from, to, asOf time.Time) (total, paid, overdue int, err error)
}
