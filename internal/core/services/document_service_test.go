package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bizease/bizease_backend/internal/apperrors"
	"github.com/bizease/bizease_backend/internal/core/domain"
	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/core/services"
	"github.com/bizease/bizease_backend/internal/dto"
	"github.com/bizease/bizease_backend/internal/utils/accounting"
)

type DocumentServiceTestSuite struct {
	suite.Suite
	mockDocRepo   *MockDocumentRepository
	mockPartyRepo *MockPartyRepository
	mockInvRepo   *MockInventoryRepository
	mockAlertRepo *MockAlertRepository
	service       portssvc.DocumentSvc
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.mockDocRepo = new(MockDocumentRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockInvRepo = new(MockInventoryRepository)
	suite.mockAlertRepo = new(MockAlertRepository)
	suite.service = services.NewDocumentService(
		suite.mockDocRepo,
		suite.mockPartyRepo,
		suite.mockInvRepo,
		suite.mockAlertRepo,
		30,
	)
}

func testCustomer() domain.Party {
	return domain.Party{
		PartyID:  uuid.NewString(),
		Kind:     domain.Customer,
		Name:     "Acme Traders",
		GSTIN:    "27AAAAA0000A1Z5",
		IsActive: true,
	}
}

func testSupplier() domain.Party {
	return domain.Party{
		PartyID:  uuid.NewString(),
		Kind:     domain.Supplier,
		Name:     "Bulk Supplies Co",
		IsActive: true,
	}
}

func testItem() domain.InventoryItem {
	return domain.InventoryItem{
		ItemID:            uuid.NewString(),
		Name:              "Steel Bolt",
		HSN:               "7318",
		Unit:              "pcs",
		PurchasePrice:     decimal.NewFromInt(60),
		SellingPrice:      decimal.NewFromInt(100),
		Quantity:          decimal.NewFromInt(50),
		LowStockThreshold: decimal.NewFromInt(5),
		GSTRate:           decimal.NewFromInt(18),
	}
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_InvoiceDefaultsSellingPrice() {
	ctx := context.Background()
	userID := uuid.NewString()
	party := testCustomer()
	item := testItem()
	docDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	req := dto.CreateDocumentRequest{
		PartyID:      party.PartyID,
		DocumentDate: docDate,
		Lines: []dto.CreateDocumentLineRequest{
			{ItemID: item.ItemID, Quantity: decimal.NewFromInt(2)},
		},
	}

	suite.mockPartyRepo.On("GetPartyByID", ctx, party.PartyID).Return(party, nil).Once()
	suite.mockInvRepo.On("GetItemsByIDs", ctx, []string{item.ItemID}).Return([]domain.InventoryItem{item}, nil).Once()
	suite.mockDocRepo.On("CreateDocument", ctx,
		mock.MatchedBy(func(d domain.Document) bool {
			return d.Kind == domain.SalesInvoice &&
				d.PartyName == party.Name &&
				len(d.Lines) == 1 &&
				d.Lines[0].Rate.Equal(decimal.NewFromInt(100)) &&
				d.Subtotal.Equal(decimal.NewFromInt(200)) &&
				d.TotalCGST.Equal(decimal.NewFromInt(18)) &&
				d.TotalSGST.Equal(decimal.NewFromInt(18)) &&
				d.GrandTotal.Equal(decimal.NewFromInt(236)) &&
				d.DueDate.Equal(docDate.AddDate(0, 0, 30)) &&
				d.Status == domain.StatusPending
		}),
		mock.MatchedBy(func(e domain.LedgerEntry) bool {
			return e.Type == domain.LedgerSale && e.Debit.Equal(decimal.NewFromInt(236)) && e.Credit.IsZero()
		}),
	).Return(domain.Document{
		DocumentID:     uuid.NewString(),
		Kind:           domain.SalesInvoice,
		DocumentNumber: "INV/25/0001",
		GrandTotal:     decimal.NewFromInt(236),
	}, nil).Once()

	doc, err := suite.service.CreateDocument(ctx, userID, domain.SalesInvoice, req)

	suite.Require().NoError(err)
	suite.Equal("INV/25/0001", doc.DocumentNumber)
	suite.mockDocRepo.AssertExpectations(suite.T())
	suite.mockAlertRepo.AssertNotCalled(suite.T(), "CreateAlert", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_PurchaseDefaultsPurchasePrice() {
	ctx := context.Background()
	party := testSupplier()
	item := testItem()
	docDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	req := dto.CreateDocumentRequest{
		PartyID:      party.PartyID,
		DocumentDate: docDate,
		Lines: []dto.CreateDocumentLineRequest{
			{ItemID: item.ItemID, Quantity: decimal.NewFromInt(10)},
		},
	}

	suite.mockPartyRepo.On("GetPartyByID", ctx, party.PartyID).Return(party, nil).Once()
	suite.mockInvRepo.On("GetItemsByIDs", ctx, []string{item.ItemID}).Return([]domain.InventoryItem{item}, nil).Once()
	suite.mockDocRepo.On("CreateDocument", ctx,
		mock.MatchedBy(func(d domain.Document) bool {
			return d.Kind == domain.PurchaseBill && d.Lines[0].Rate.Equal(decimal.NewFromInt(60))
		}),
		mock.MatchedBy(func(e domain.LedgerEntry) bool {
			return e.Type == domain.LedgerPurchase && e.Credit.GreaterThan(decimal.Zero) && e.Debit.IsZero()
		}),
	).Return(domain.Document{DocumentNumber: "PUR/25/0001", Kind: domain.PurchaseBill}, nil).Once()

	doc, err := suite.service.CreateDocument(ctx, uuid.NewString(), domain.PurchaseBill, req)

	suite.Require().NoError(err)
	suite.Equal("PUR/25/0001", doc.DocumentNumber)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_PartyKindMismatch() {
	ctx := context.Background()
	party := testSupplier()

	req := dto.CreateDocumentRequest{
		PartyID:      party.PartyID,
		DocumentDate: time.Now(),
		Lines:        []dto.CreateDocumentLineRequest{{ItemID: uuid.NewString(), Quantity: decimal.NewFromInt(1)}},
	}

	suite.mockPartyRepo.On("GetPartyByID", ctx, party.PartyID).Return(party, nil).Once()

	_, err := suite.service.CreateDocument(ctx, uuid.NewString(), domain.SalesInvoice, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPartyKindMismatch)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "CreateDocument", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_InactiveParty() {
	ctx := context.Background()
	party := testCustomer()
	party.IsActive = false

	req := dto.CreateDocumentRequest{
		PartyID:      party.PartyID,
		DocumentDate: time.Now(),
		Lines:        []dto.CreateDocumentLineRequest{{ItemID: uuid.NewString(), Quantity: decimal.NewFromInt(1)}},
	}

	suite.mockPartyRepo.On("GetPartyByID", ctx, party.PartyID).Return(party, nil).Once()

	_, err := suite.service.CreateDocument(ctx, uuid.NewString(), domain.SalesInvoice, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPartyInactive)
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_NonPositiveQuantity() {
	ctx := context.Background()
	party := testCustomer()
	item := testItem()

	req := dto.CreateDocumentRequest{
		PartyID:      party.PartyID,
		DocumentDate: time.Now(),
		Lines:        []dto.CreateDocumentLineRequest{{ItemID: item.ItemID, Quantity: decimal.Zero}},
	}

	suite.mockPartyRepo.On("GetPartyByID", ctx, party.PartyID).Return(party, nil).Once()
	suite.mockInvRepo.On("GetItemsByIDs", ctx, []string{item.ItemID}).Return([]domain.InventoryItem{item}, nil).Once()

	_, err := suite.service.CreateDocument(ctx, uuid.NewString(), domain.SalesInvoice, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrQuantityInvalid)
}

func (suite *DocumentServiceTestSuite) TestCreateDocument_RaisesLowStockAlert() {
	ctx := context.Background()
	party := testCustomer()
	item := testItem()
	item.Quantity = decimal.NewFromInt(6)

	req := dto.CreateDocumentRequest{
		PartyID:      party.PartyID,
		DocumentDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Lines:        []dto.CreateDocumentLineRequest{{ItemID: item.ItemID, Quantity: decimal.NewFromInt(3)}},
	}

	stored := domain.Document{
		DocumentID:     uuid.NewString(),
		Kind:           domain.SalesInvoice,
		DocumentNumber: "INV/25/0002",
		Lines:          []domain.DocumentLine{{ItemID: item.ItemID, Quantity: decimal.NewFromInt(3)}},
	}

	drained := item
	drained.Quantity = decimal.NewFromInt(3)

	suite.mockPartyRepo.On("GetPartyByID", ctx, party.PartyID).Return(party, nil).Once()
	suite.mockInvRepo.On("GetItemsByIDs", ctx, []string{item.ItemID}).Return([]domain.InventoryItem{item}, nil).Once()
	suite.mockDocRepo.On("CreateDocument", ctx, mock.Anything, mock.Anything).Return(stored, nil).Once()
	suite.mockInvRepo.On("GetItemByID", ctx, item.ItemID).Return(drained, nil).Once()
	suite.mockAlertRepo.On("HasUnreadAlert", ctx, domain.AlertLowStock, item.ItemID).Return(false, nil).Once()
	suite.mockAlertRepo.On("CreateAlert", ctx, mock.MatchedBy(func(a domain.Alert) bool {
		return a.Type == domain.AlertLowStock && a.Severity == domain.SeverityWarning && a.RelatedID == item.ItemID
	})).Return(nil).Once()

	_, err := suite.service.CreateDocument(ctx, uuid.NewString(), domain.SalesInvoice, req)

	suite.Require().NoError(err)
	suite.mockAlertRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	doc := domain.Document{
		DocumentID:     uuid.NewString(),
		Kind:           domain.SalesInvoice,
		DocumentNumber: "INV/25/0003",
		PartyName:      "Acme Traders",
		GrandTotal:     decimal.NewFromInt(236),
		AmountPaid:     decimal.Zero,
		Status:         domain.StatusPending,
	}
	amount := decimal.NewFromInt(100)

	updated := doc
	updated.AmountPaid = amount
	updated.Status = domain.StatusPartial

	suite.mockDocRepo.On("GetDocumentByID", ctx, doc.DocumentID).Return(doc, nil).Once()
	suite.mockDocRepo.On("RecordPayment", ctx, doc.DocumentID, amount,
		mock.MatchedBy(func(e domain.LedgerEntry) bool {
			return e.Type == domain.LedgerPaymentReceived &&
				e.Credit.Equal(amount) && e.Debit.IsZero() &&
				e.PaymentMode == domain.PaymentCash
		}),
	).Return(updated, nil).Once()

	result, err := suite.service.RecordPayment(ctx, uuid.NewString(), doc.DocumentID,
		dto.RecordPaymentRequest{Amount: amount, Mode: domain.PaymentCash})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPartial, result.Status)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestRecordPayment_DefaultsModeToDigital() {
	ctx := context.Background()
	doc := domain.Document{
		DocumentID: uuid.NewString(),
		Kind:       domain.SalesInvoice,
		GrandTotal: decimal.NewFromInt(100),
		Status:     domain.StatusPending,
	}
	amount := decimal.NewFromInt(100)

	updated := doc
	updated.AmountPaid = amount
	updated.Status = domain.StatusPaid

	suite.mockDocRepo.On("GetDocumentByID", ctx, doc.DocumentID).Return(doc, nil).Once()
	suite.mockDocRepo.On("RecordPayment", ctx, doc.DocumentID, amount,
		mock.MatchedBy(func(e domain.LedgerEntry) bool {
			return e.PaymentMode == domain.PaymentDigital
		}),
	).Return(updated, nil).Once()

	_, err := suite.service.RecordPayment(ctx, uuid.NewString(), doc.DocumentID, dto.RecordPaymentRequest{Amount: amount})

	suite.Require().NoError(err)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestRecordPayment_ExceedsOutstanding() {
	ctx := context.Background()
	doc := domain.Document{
		DocumentID: uuid.NewString(),
		Kind:       domain.SalesInvoice,
		GrandTotal: decimal.NewFromInt(100),
		AmountPaid: decimal.NewFromInt(60),
		Status:     domain.StatusPartial,
	}

	suite.mockDocRepo.On("GetDocumentByID", ctx, doc.DocumentID).Return(doc, nil).Once()

	_, err := suite.service.RecordPayment(ctx, uuid.NewString(), doc.DocumentID, dto.RecordPaymentRequest{Amount: decimal.NewFromInt(50)})

	suite.Require().Error(err)
	suite.ErrorIs(err, accounting.ErrPaymentExceedsBalance)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestRecordPayment_NotPositive() {
	ctx := context.Background()
	doc := domain.Document{
		DocumentID: uuid.NewString(),
		Kind:       domain.SalesInvoice,
		GrandTotal: decimal.NewFromInt(100),
	}

	suite.mockDocRepo.On("GetDocumentByID", ctx, doc.DocumentID).Return(doc, nil).Once()

	_, err := suite.service.RecordPayment(ctx, uuid.NewString(), doc.DocumentID, dto.RecordPaymentRequest{Amount: decimal.Zero})

	suite.Require().Error(err)
	suite.ErrorIs(err, accounting.ErrPaymentNotPositive)
}

func (suite *DocumentServiceTestSuite) TestDeleteDocument_BlockedWhenPaid() {
	ctx := context.Background()
	doc := domain.Document{
		DocumentID:     uuid.NewString(),
		DocumentNumber: "INV/25/0004",
		GrandTotal:     decimal.NewFromInt(100),
		AmountPaid:     decimal.NewFromInt(40),
	}

	suite.mockDocRepo.On("GetDocumentByID", ctx, doc.DocumentID).Return(doc, nil).Once()

	err := suite.service.DeleteDocument(ctx, doc.DocumentID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrDocumentHasPaid)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(409, appErr.Code)
	suite.mockDocRepo.AssertNotCalled(suite.T(), "DeleteDocument", mock.Anything, mock.Anything)
}

func (suite *DocumentServiceTestSuite) TestDeleteDocument_Success() {
	ctx := context.Background()
	doc := domain.Document{
		DocumentID:     uuid.NewString(),
		DocumentNumber: "INV/25/0005",
		GrandTotal:     decimal.NewFromInt(100),
		AmountPaid:     decimal.Zero,
	}

	suite.mockDocRepo.On("GetDocumentByID", ctx, doc.DocumentID).Return(doc, nil).Once()
	suite.mockDocRepo.On("DeleteDocument", ctx, doc.DocumentID).Return(nil).Once()

	err := suite.service.DeleteDocument(ctx, doc.DocumentID)

	suite.Require().NoError(err)
	suite.mockDocRepo.AssertExpectations(suite.T())
}

func TestDocumentService(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
