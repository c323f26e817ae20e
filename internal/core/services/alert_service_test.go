package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/core/services"
)

type AlertServiceTestSuite struct {
	suite.Suite
	mockAlertRepo *MockAlertRepository
	mockInvRepo   *MockInventoryRepository
	mockDocRepo   *MockDocumentRepository
	service       portssvc.AlertSvc
	restoreNow    func()
	now           time.Time
}

func (suite *AlertServiceTestSuite) SetupTest() {
	suite.mockAlertRepo = new(MockAlertRepository)
	suite.mockInvRepo = new(MockInventoryRepository)
	suite.mockDocRepo = new(MockDocumentRepository)
	suite.service = services.NewAlertService(suite.mockAlertRepo, suite.mockInvRepo, suite.mockDocRepo)
	suite.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	suite.restoreNow = services.SetNowFunc(func() time.Time { return suite.now })
}

func (suite *AlertServiceTestSuite) TearDownTest() {
	suite.restoreNow()
}

func (suite *AlertServiceTestSuite) TestRefreshAlerts_RaisesLowStockAndOverdue() {
	ctx := context.Background()
	userID := uuid.NewString()

	lowItem := domain.InventoryItem{
		ItemID:            uuid.NewString(),
		Name:              "Steel Bolt",
		Unit:              "pcs",
		Quantity:          decimal.NewFromInt(2),
		LowStockThreshold: decimal.NewFromInt(5),
	}
	overdueDoc := domain.Document{
		DocumentID:     uuid.NewString(),
		DocumentNumber: "INV/25/0007",
		PartyName:      "Acme Traders",
		GrandTotal:     decimal.NewFromInt(500),
		Status:         domain.StatusPending,
		DueDate:        suite.now.AddDate(0, 0, -10),
	}

	suite.mockInvRepo.On("ListItems", ctx, portsrepo.ListInventoryParams{LowStock: true}).Return([]domain.InventoryItem{lowItem}, nil).Once()
	suite.mockAlertRepo.On("HasUnreadAlert", ctx, domain.AlertLowStock, lowItem.ItemID).Return(false, nil).Once()
	suite.mockAlertRepo.On("CreateAlert", ctx, mock.MatchedBy(func(a domain.Alert) bool {
		return a.Type == domain.AlertLowStock && a.Severity == domain.SeverityWarning && a.RelatedID == lowItem.ItemID && a.CreatedBy == userID
	})).Return(nil).Once()

	suite.mockDocRepo.On("ListUnpaidDocuments", ctx, domain.SalesInvoice).Return([]domain.Document{overdueDoc}, nil).Once()
	suite.mockAlertRepo.On("HasUnreadAlert", ctx, domain.AlertOverduePayment, overdueDoc.DocumentID).Return(false, nil).Once()
	suite.mockAlertRepo.On("CreateAlert", ctx, mock.MatchedBy(func(a domain.Alert) bool {
		return a.Type == domain.AlertOverduePayment && a.RelatedID == overdueDoc.DocumentID
	})).Return(nil).Once()

	created, err := suite.service.RefreshAlerts(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(2, created)
	suite.mockAlertRepo.AssertExpectations(suite.T())
}

func (suite *AlertServiceTestSuite) TestRefreshAlerts_SkipsExistingUnread() {
	ctx := context.Background()
	lowItem := domain.InventoryItem{
		ItemID:            uuid.NewString(),
		Name:              "Steel Bolt",
		Quantity:          decimal.NewFromInt(2),
		LowStockThreshold: decimal.NewFromInt(5),
	}

	suite.mockInvRepo.On("ListItems", ctx, portsrepo.ListInventoryParams{LowStock: true}).Return([]domain.InventoryItem{lowItem}, nil).Once()
	suite.mockAlertRepo.On("HasUnreadAlert", ctx, domain.AlertLowStock, lowItem.ItemID).Return(true, nil).Once()
	suite.mockDocRepo.On("ListUnpaidDocuments", ctx, domain.SalesInvoice).Return([]domain.Document{}, nil).Once()

	created, err := suite.service.RefreshAlerts(ctx, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(0, created)
	suite.mockAlertRepo.AssertNotCalled(suite.T(), "CreateAlert", mock.Anything, mock.Anything)
}

func (suite *AlertServiceTestSuite) TestRefreshAlerts_CriticalAtZeroStock() {
	ctx := context.Background()
	outItem := domain.InventoryItem{
		ItemID:            uuid.NewString(),
		Name:              "Copper Wire",
		Quantity:          decimal.Zero,
		LowStockThreshold: decimal.NewFromInt(10),
	}

	suite.mockInvRepo.On("ListItems", ctx, portsrepo.ListInventoryParams{LowStock: true}).Return([]domain.InventoryItem{outItem}, nil).Once()
	suite.mockAlertRepo.On("HasUnreadAlert", ctx, domain.AlertLowStock, outItem.ItemID).Return(false, nil).Once()
	suite.mockAlertRepo.On("CreateAlert", ctx, mock.MatchedBy(func(a domain.Alert) bool {
		return a.Severity == domain.SeverityCritical
	})).Return(nil).Once()
	suite.mockDocRepo.On("ListUnpaidDocuments", ctx, domain.SalesInvoice).Return([]domain.Document{}, nil).Once()

	created, err := suite.service.RefreshAlerts(ctx, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(1, created)
	suite.mockAlertRepo.AssertExpectations(suite.T())
}

func (suite *AlertServiceTestSuite) TestRefreshAlerts_IgnoresNotYetDue() {
	ctx := context.Background()
	pendingDoc := domain.Document{
		DocumentID: uuid.NewString(),
		GrandTotal: decimal.NewFromInt(500),
		Status:     domain.StatusPending,
		DueDate:    suite.now.AddDate(0, 0, 10),
	}

	suite.mockInvRepo.On("ListItems", ctx, portsrepo.ListInventoryParams{LowStock: true}).Return([]domain.InventoryItem{}, nil).Once()
	suite.mockDocRepo.On("ListUnpaidDocuments", ctx, domain.SalesInvoice).Return([]domain.Document{pendingDoc}, nil).Once()

	created, err := suite.service.RefreshAlerts(ctx, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(0, created)
	suite.mockAlertRepo.AssertNotCalled(suite.T(), "CreateAlert", mock.Anything, mock.Anything)
}

func TestAlertService(t *testing.T) {
	suite.Run(t, new(AlertServiceTestSuite))
}
