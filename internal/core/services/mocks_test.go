package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
)

// Repository mocks shared by the service test suites.

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) CreateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) GetPartyByID(ctx context.Context, partyID string) (domain.Party, error) {
	args := m.Called(ctx, partyID)
	return args.Get(0).(domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context, params portsrepo.ListPartiesParams) ([]domain.Party, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	args := m.Called(ctx, partyID)
	return args.Error(0)
}

func (m *MockPartyRepository) GetOutstandingBalance(ctx context.Context, partyID string) (decimal.Decimal, error) {
	args := m.Called(ctx, partyID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock InventoryRepository ---
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) CreateItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) GetItemByID(ctx context.Context, itemID string) (domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) GetItemsByIDs(ctx context.Context, itemIDs []string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListItems(ctx context.Context, params portsrepo.ListInventoryParams) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockInventoryRepository) AdjustStock(ctx context.Context, itemID string, delta decimal.Decimal) (domain.InventoryItem, error) {
	args := m.Called(ctx, itemID, delta)
	return args.Get(0).(domain.InventoryItem), args.Error(1)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) CreateDocument(ctx context.Context, doc domain.Document, entry domain.LedgerEntry) (domain.Document, error) {
	args := m.Called(ctx, doc, entry)
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) GetDocumentByID(ctx context.Context, documentID string) (domain.Document, error) {
	args := m.Called(ctx, documentID)
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, params portsrepo.ListDocumentsParams) ([]domain.Document, string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Document), args.String(1), args.Error(2)
}

func (m *MockDocumentRepository) ListDocumentsInRange(ctx context.Context, kind domain.DocumentKind, from, to time.Time) ([]domain.Document, error) {
	args := m.Called(ctx, kind, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListUnpaidDocuments(ctx context.Context, kind domain.DocumentKind) ([]domain.Document, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) RecordPayment(ctx context.Context, documentID string, amount decimal.Decimal, entry domain.LedgerEntry) (domain.Document, error) {
	args := m.Called(ctx, documentID, amount, entry)
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

func (m *MockDocumentRepository) CountDocumentsByStatus(ctx context.Context, kind domain.DocumentKind, from, to, asOf time.Time) (int, int, int, error) {
	args := m.Called(ctx, kind, from, to, asOf)
	return args.Int(0), args.Int(1), args.Int(2), args.Error(3)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) CreateExpense(ctx context.Context, expense domain.Expense, entry domain.LedgerEntry) error {
	args := m.Called(ctx, expense, entry)
	return args.Error(0)
}

func (m *MockExpenseRepository) GetExpenseByID(ctx context.Context, expenseID string) (domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	return args.Get(0).(domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, params portsrepo.ListExpensesParams) ([]domain.Expense, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockExpenseRepository) SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExpenseRepository) SumExpensesByCategory(ctx context.Context, from, to time.Time) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// --- Mock AlertRepository ---
type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) CreateAlert(ctx context.Context, alert domain.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) ListAlerts(ctx context.Context, unreadOnly bool) ([]domain.Alert, error) {
	args := m.Called(ctx, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alert), args.Error(1)
}

func (m *MockAlertRepository) MarkAlertRead(ctx context.Context, alertID string) error {
	args := m.Called(ctx, alertID)
	return args.Error(0)
}

func (m *MockAlertRepository) MarkAllAlertsRead(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAlertRepository) DeleteAlert(ctx context.Context, alertID string) error {
	args := m.Called(ctx, alertID)
	return args.Error(0)
}

func (m *MockAlertRepository) HasUnreadAlert(ctx context.Context, alertType domain.AlertType, relatedID string) (bool, error) {
	args := m.Called(ctx, alertType, relatedID)
	return args.Bool(0), args.Error(1)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListEntries(ctx context.Context, params portsrepo.ListLedgerParams) ([]domain.LedgerEntry, string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.LedgerEntry), args.String(1), args.Error(2)
}

func (m *MockLedgerRepository) ListEntriesByParty(ctx context.Context, partyID string, from, to time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, partyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
