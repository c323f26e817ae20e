package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bizease/bizease_backend/internal/apperrors"
	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/dto"
	"github.com/bizease/bizease_backend/internal/handlers"
	"github.com/bizease/bizease_backend/internal/platform/config"
	"github.com/bizease/bizease_backend/internal/utils/accounting"
)

// --- Mock PartyService ---
type MockPartyService struct {
	mock.Mock
}

func (m *MockPartyService) CreateParty(ctx context.Context, userID string, req dto.CreatePartyRequest) (domain.Party, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.Party), args.Error(1)
}

func (m *MockPartyService) GetPartyByID(ctx context.Context, partyID string) (domain.Party, error) {
	args := m.Called(ctx, partyID)
	return args.Get(0).(domain.Party), args.Error(1)
}

func (m *MockPartyService) ListParties(ctx context.Context, kind domain.PartyKind, search string, includeInactive bool) ([]domain.Party, error) {
	args := m.Called(ctx, kind, search, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyService) UpdateParty(ctx context.Context, userID string, partyID string, req dto.UpdatePartyRequest) (domain.Party, error) {
	args := m.Called(ctx, userID, partyID, req)
	return args.Get(0).(domain.Party), args.Error(1)
}

func (m *MockPartyService) DeleteParty(ctx context.Context, partyID string) error {
	args := m.Called(ctx, partyID)
	return args.Error(0)
}

var _ portssvc.PartySvc = (*MockPartyService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListEntries(ctx context.Context, params portsrepo.ListLedgerParams) ([]domain.LedgerEntry, string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.LedgerEntry), args.String(1), args.Error(2)
}

func (m *MockLedgerService) GetPartyStatement(ctx context.Context, partyID string, period accounting.Period) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, partyID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

// --- Test Suite ---
type PartyHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockPartyService *MockPartyService
	jwtSecret        string
}

func (suite *PartyHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "bizease-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *PartyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockPartyService = new(MockPartyService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		PartySvc:  suite.mockPartyService,
		LedgerSvc: new(MockLedgerService),
	})
}

func (suite *PartyHandlerTestSuite) authedRequest(method, url string, body []byte, userID string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *PartyHandlerTestSuite) TestListParties_Success() {
	userID := uuid.NewString()
	expected := []domain.Party{
		{PartyID: uuid.NewString(), Kind: domain.Customer, Name: "Acme Traders", IsActive: true},
		{PartyID: uuid.NewString(), Kind: domain.Customer, Name: "Zenith Stores", IsActive: true},
	}

	suite.mockPartyService.On("ListParties", mock.Anything, domain.Customer, "", false).Return(expected, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/parties?kind=CUSTOMER", nil, userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPartiesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Parties, 2)
	suite.Equal(expected[0].PartyID, resp.Parties[0].PartyID)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestCreateParty_Success() {
	userID := uuid.NewString()
	body := []byte(`{"kind":"CUSTOMER","name":"Acme Traders","phone":"9876543210"}`)
	created := domain.Party{
		PartyID:     uuid.NewString(),
		Kind:        domain.Customer,
		Name:        "Acme Traders",
		Phone:       "9876543210",
		CreditLimit: decimal.Zero,
		IsActive:    true,
	}

	suite.mockPartyService.On("CreateParty", mock.Anything, userID, mock.MatchedBy(func(r dto.CreatePartyRequest) bool {
		return r.Kind == domain.Customer && r.Name == "Acme Traders"
	})).Return(created, nil).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/parties", body, userID)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PartyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.PartyID, resp.PartyID)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestCreateParty_ValidationFailure() {
	userID := uuid.NewString()
	body := []byte(`{"name":"Missing Kind"}`)

	w := suite.authedRequest(http.MethodPost, "/api/v1/parties", body, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPartyService.AssertNotCalled(suite.T(), "CreateParty", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PartyHandlerTestSuite) TestDeleteParty_ConflictOnBalance() {
	userID := uuid.NewString()
	partyID := uuid.NewString()

	suite.mockPartyService.On("DeleteParty", mock.Anything, partyID).
		Return(apperrors.NewAppError(409, "party has outstanding balance", apperrors.ErrConflict)).Once()

	w := suite.authedRequest(http.MethodDelete, fmt.Sprintf("/api/v1/parties/%s", partyID), nil, userID)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockPartyService.AssertExpectations(suite.T())
}

func (suite *PartyHandlerTestSuite) TestUnauthorizedWithoutToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/parties", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestPartyHandler(t *testing.T) {
	suite.Run(t, new(PartyHandlerTestSuite))
}
