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
	"github.com/bizease/bizease_backend/internal/utils/accounting"
)

var (
	ErrPartyKindMismatch = errors.New("party kind does not match document kind")
	ErrPartyInactive     = errors.New("party is inactive")
	ErrQuantityInvalid   = errors.New("line quantity must be positive")
	ErrDocumentHasPaid   = errors.New("document with recorded payments cannot be deleted")
)

type documentService struct {
	BaseService
	documentRepo   portsrepo.DocumentRepository
	partyRepo      portsrepo.PartyRepository
	inventoryRepo  portsrepo.InventoryRepository
	alertRepo      portsrepo.AlertRepository
	defaultDueDays int
}

// NewDocumentService creates a new document service. defaultDueDays is used
// when a document is created without an explicit due date.
func NewDocumentService(
	documentRepo portsrepo.DocumentRepository,
	partyRepo portsrepo.PartyRepository,
	inventoryRepo portsrepo.InventoryRepository,
	alertRepo portsrepo.AlertRepository,
	defaultDueDays int,
) portssvc.DocumentSvc {
	return &documentService{
		documentRepo:   documentRepo,
		partyRepo:      partyRepo,
		inventoryRepo:  inventoryRepo,
		alertRepo:      alertRepo,
		defaultDueDays: defaultDueDays,
	}
}

var _ portssvc.DocumentSvc = (*documentService)(nil)

// expectedPartyKind returns the party kind a document kind trades with.
func expectedPartyKind(kind domain.DocumentKind) domain.PartyKind {
	if kind == domain.PurchaseBill {
		return domain.Supplier
	}
	return domain.Customer
}

// CreateDocument validates the request, snapshots the party, prices and
// computes each line, and hands the finished document to the repository,
// which assigns the number and applies stock and ledger effects atomically.
func (s *documentService) CreateDocument(ctx context.Context, userID string, kind domain.DocumentKind, req dto.CreateDocumentRequest) (domain.Document, error) {
	party, err := s.partyRepo.GetPartyByID(ctx, req.PartyID)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to load party %s: %w", req.PartyID, err)
	}
	if party.Kind != expectedPartyKind(kind) {
		return domain.Document{}, apperrors.NewAppError(400,
			fmt.Sprintf("party %s is a %s, expected %s", party.PartyID, party.Kind, expectedPartyKind(kind)),
			ErrPartyKindMismatch)
	}
	if !party.IsActive {
		return domain.Document{}, apperrors.NewAppError(400, fmt.Sprintf("party %s is inactive", party.PartyID), ErrPartyInactive)
	}

	itemIDs := make([]string, 0, len(req.Lines))
	for _, l := range req.Lines {
		itemIDs = append(itemIDs, l.ItemID)
	}
	items, err := s.inventoryRepo.GetItemsByIDs(ctx, itemIDs)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to load items for document: %w", err)
	}
	itemsByID := make(map[string]domain.InventoryItem, len(items))
	for _, it := range items {
		itemsByID[it.ItemID] = it
	}

	documentID := uuid.NewString()
	lines := make([]domain.DocumentLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		if l.Quantity.LessThanOrEqual(decimal.Zero) {
			return domain.Document{}, apperrors.NewAppError(400,
				fmt.Sprintf("quantity for item %s must be positive", l.ItemID), ErrQuantityInvalid)
		}
		item, ok := itemsByID[l.ItemID]
		if !ok {
			return domain.Document{}, apperrors.NewNotFoundError(fmt.Sprintf("item %s not found", l.ItemID))
		}

		rate := item.SellingPrice
		if kind == domain.PurchaseBill {
			rate = item.PurchasePrice
		}
		if l.Rate != nil {
			rate = *l.Rate
		}
		gstRate := item.GSTRate
		if l.GSTRate != nil {
			gstRate = *l.GSTRate
		}

		line := accounting.ComputeLine(domain.DocumentLine{
			LineID:     uuid.NewString(),
			DocumentID: documentID,
			ItemID:     item.ItemID,
			Name:       item.Name,
			HSN:        item.HSN,
			Quantity:   l.Quantity,
			Rate:       rate,
			GSTRate:    gstRate,
		})
		lines = append(lines, line)
	}

	subtotal, cgst, sgst, igst, roundOff, grandTotal := accounting.Totals(lines)

	dueDate := req.DocumentDate.AddDate(0, 0, s.defaultDueDays)
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	now := time.Now()
	doc := domain.Document{
		DocumentID:    documentID,
		Kind:          kind,
		PartyBillNo:   req.PartyBillNo,
		DocumentDate:  req.DocumentDate,
		DueDate:       dueDate,
		PartyID:       party.PartyID,
		PartyName:     party.Name,
		PartyGSTIN:    party.GSTIN,
		PartyAddress:  party.Address,
		PlaceOfSupply: req.PlaceOfSupply,
		Lines:         lines,
		Subtotal:      subtotal,
		TotalCGST:     cgst,
		TotalSGST:     sgst,
		TotalIGST:     igst,
		RoundOff:      roundOff,
		GrandTotal:    grandTotal,
		AmountPaid:    decimal.Zero,
		Status:        domain.StatusPending,
		Notes:         req.Notes,
		Terms:         req.Terms,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	entry := s.documentLedgerEntry(doc, userID, now)
	stored, err := s.documentRepo.CreateDocument(ctx, doc, entry)
	if err != nil {
		s.LogError(ctx, err, "failed to create document", slog.String("kind", string(kind)))
		return domain.Document{}, fmt.Errorf("failed to create document: %w", err)
	}
	s.LogInfo(ctx, "document created",
		slog.String("document_id", stored.DocumentID),
		slog.String("document_number", stored.DocumentNumber),
		slog.String("kind", string(kind)),
		slog.String("grand_total", stored.GrandTotal.String()))

	if kind == domain.SalesInvoice {
		s.raiseLowStockAlerts(ctx, userID, stored.Lines)
	}
	return stored, nil
}

// documentLedgerEntry builds the day book row for a new document. Sales debit
// the party ledger (the customer owes us), purchases credit it (we owe the
// supplier). The repository fills the running balance.
func (s *documentService) documentLedgerEntry(doc domain.Document, userID string, now time.Time) domain.LedgerEntry {
	entry := domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		Date:        doc.DocumentDate,
		ReferenceID: doc.DocumentID,
		PartyID:     doc.PartyID,
		PartyName:   doc.PartyName,
		Debit:       decimal.Zero,
		Credit:      decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if doc.Kind == domain.PurchaseBill {
		entry.Type = domain.LedgerPurchase
		entry.Description = fmt.Sprintf("Purchase from %s", doc.PartyName)
		entry.Credit = doc.GrandTotal
	} else {
		entry.Type = domain.LedgerSale
		entry.Description = fmt.Sprintf("Sale to %s", doc.PartyName)
		entry.Debit = doc.GrandTotal
	}
	return entry
}

// raiseLowStockAlerts checks the items just sold and raises an alert for any
// that crossed their threshold. Failures are logged, never propagated; the
// sale has already committed.
func (s *documentService) raiseLowStockAlerts(ctx context.Context, userID string, lines []domain.DocumentLine) {
	for _, line := range lines {
		item, err := s.inventoryRepo.GetItemByID(ctx, line.ItemID)
		if err != nil {
			s.LogError(ctx, err, "failed to reload item for low stock check", slog.String("item_id", line.ItemID))
			continue
		}
		if !item.IsLowStock() {
			continue
		}
		exists, err := s.alertRepo.HasUnreadAlert(ctx, domain.AlertLowStock, item.ItemID)
		if err != nil || exists {
			continue
		}

		severity := domain.SeverityWarning
		if item.Quantity.LessThanOrEqual(decimal.Zero) {
			severity = domain.SeverityCritical
		}
		now := time.Now()
		alert := domain.Alert{
			AlertID:   uuid.NewString(),
			Type:      domain.AlertLowStock,
			Title:     "Low stock",
			Message:   fmt.Sprintf("%s is down to %s %s", item.Name, item.Quantity, item.Unit),
			Severity:  severity,
			RelatedID: item.ItemID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if err := s.alertRepo.CreateAlert(ctx, alert); err != nil {
			s.LogError(ctx, err, "failed to create low stock alert", slog.String("item_id", item.ItemID))
		}
	}
}

func (s *documentService) GetDocumentByID(ctx context.Context, documentID string) (domain.Document, error) {
	doc, err := s.documentRepo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to get document %s: %w", documentID, err)
	}
	return doc, nil
}

func (s *documentService) ListDocuments(ctx context.Context, params portsrepo.ListDocumentsParams) ([]domain.Document, string, error) {
	docs, nextToken, err := s.documentRepo.ListDocuments(ctx, params)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list documents: %w", err)
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nextToken, nil
}

// RecordPayment validates the amount against the document's outstanding
// balance, then delegates to the repository, which re-checks under a row lock
// and writes the payment and ledger row atomically. The settlement mode is
// stored on the ledger row; an omitted mode defaults to DIGITAL.
func (s *documentService) RecordPayment(ctx context.Context, userID string, documentID string, req dto.RecordPaymentRequest) (domain.Document, error) {
	doc, err := s.documentRepo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to load document %s for payment: %w", documentID, err)
	}
	if _, err := accounting.ApplyPayment(doc, req.Amount); err != nil {
		return domain.Document{}, apperrors.NewAppError(400, "payment rejected", err)
	}

	now := time.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}
	mode := req.Mode
	if mode == "" {
		mode = domain.PaymentDigital
	}
	entry := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		Date:            date,
		ReferenceID:     doc.DocumentID,
		ReferenceNumber: doc.DocumentNumber,
		PartyID:         doc.PartyID,
		PartyName:       doc.PartyName,
		PaymentMode:     mode,
		Debit:           decimal.Zero,
		Credit:          decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if doc.Kind == domain.PurchaseBill {
		entry.Type = domain.LedgerPaymentMade
		entry.Description = fmt.Sprintf("Payment to %s against %s", doc.PartyName, doc.DocumentNumber)
		entry.Debit = req.Amount
	} else {
		entry.Type = domain.LedgerPaymentReceived
		entry.Description = fmt.Sprintf("Payment from %s against %s", doc.PartyName, doc.DocumentNumber)
		entry.Credit = req.Amount
	}

	updated, err := s.documentRepo.RecordPayment(ctx, documentID, req.Amount, entry)
	if err != nil {
		s.LogError(ctx, err, "failed to record payment", slog.String("document_id", documentID))
		return domain.Document{}, fmt.Errorf("failed to record payment on document %s: %w", documentID, err)
	}
	s.LogInfo(ctx, "payment recorded",
		slog.String("document_id", documentID),
		slog.String("amount", req.Amount.String()),
		slog.String("status", string(updated.Status)))
	return updated, nil
}

// DeleteDocument removes a document that has no payments against it. The
// repository reverses the stock effect of every line in the same transaction.
func (s *documentService) DeleteDocument(ctx context.Context, documentID string) error {
	doc, err := s.documentRepo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to load document %s for delete: %w", documentID, err)
	}
	if doc.AmountPaid.GreaterThan(decimal.Zero) {
		return apperrors.NewAppError(409,
			fmt.Sprintf("document %s has payments recorded against it", doc.DocumentNumber), ErrDocumentHasPaid)
	}
	if err := s.documentRepo.DeleteDocument(ctx, documentID); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", documentID, err)
	}
	s.LogInfo(ctx, "document deleted", slog.String("document_id", documentID), slog.String("document_number", doc.DocumentNumber))
	return nil
}
