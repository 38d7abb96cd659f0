package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/liq_planning_app/internal/apperrors"
	"github.com/SscSPs/liq_planning_app/internal/core/domain"
	portssvc "github.com/SscSPs/liq_planning_app/internal/core/ports/services"
	"github.com/SscSPs/liq_planning_app/internal/dto"
	"github.com/SscSPs/liq_planning_app/internal/handlers"
	"github.com/SscSPs/liq_planning_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BookingService ---
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, params dto.ListBookingsParams, userID string) ([]domain.Booking, string, error) {
	args := m.Called(ctx, params, userID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Booking), args.String(1), args.Error(2)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req dto.BookingRequest, userID string) (*domain.Booking, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) UpdateBooking(ctx context.Context, bookingID string, req dto.BookingRequest, userID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) BatchUpdateBookings(ctx context.Context, req dto.BatchUpdateBookingsRequest, userID string) dto.BatchUpdateBookingsResponse {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(dto.BatchUpdateBookingsResponse)
}

func (m *MockBookingService) DeleteBooking(ctx context.Context, bookingID, userID string) error {
	args := m.Called(ctx, bookingID, userID)
	return args.Error(0)
}

var _ portssvc.BookingSvcFacade = (*MockBookingService)(nil)

// --- Mock PlanningService ---
type MockPlanningService struct {
	mock.Mock
}

func (m *MockPlanningService) Project(ctx context.Context, params dto.ProjectionParams, userID string) (*portssvc.ProjectionResult, error) {
	args := m.Called(ctx, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ProjectionResult), args.Error(1)
}

func (m *MockPlanningService) Summary(ctx context.Context, params dto.ProjectionParams, userID string) (*dto.SummaryResponse, error) {
	args := m.Called(ctx, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SummaryResponse), args.Error(1)
}

func (m *MockPlanningService) Export(ctx context.Context, params dto.ProjectionParams, userID string) (*portssvc.ExportFile, error) {
	args := m.Called(ctx, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ExportFile), args.Error(1)
}

var _ portssvc.PlanningSvc = (*MockPlanningService)(nil)

// --- Mock ImportService ---
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Import(ctx context.Context, req dto.ImportRequest, userID string) (*domain.ImportReport, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportReport), args.Error(1)
}

// --- Mock AdminService ---
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Reset(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockAdminService) Health(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router      *gin.Engine
	cfg         *config.Config
	bookings    *MockBookingService
	planning    *MockPlanningService
	imports     *MockImportService
	admin       *MockAdminService
	bearerToken string
}

// generateTestToken creates a signed JWT the real auth middleware accepts.
func (suite *HandlersTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    suite.cfg.JWTIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.cfg.JWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		JWTSecret:       "test-secret-key-that-is-long-enough",
		JWTIssuer:       "liq-test",
		ImportRateLimit: "100-M",
		MaxUploadBytes:  1 << 20,
		IsProduction:    true,
	}
	suite.bookings = new(MockBookingService)
	suite.planning = new(MockPlanningService)
	suite.imports = new(MockImportService)
	suite.admin = new(MockAdminService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Booking:  suite.bookings,
		Planning: suite.planning,
		Import:   suite.imports,
		Admin:    suite.admin,
	})
	suite.bearerToken = "Bearer " + suite.generateTestToken("user-1")
}

func (suite *HandlersTestSuite) do(method, url string, body []byte, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Authorization", suite.bearerToken)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *HandlersTestSuite) TestCreateBooking_Success() {
	created := &domain.Booking{ID: "b1", Date: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), Details: "Miete", Amount: decimal.NewFromInt(1200), Direction: domain.Outgoing, Category: domain.CategoryStandard}
	suite.bookings.On("CreateBooking", mock.Anything, mock.MatchedBy(func(r dto.BookingRequest) bool {
		return r.Details == "Miete" && r.Amount.Equal(decimal.NewFromInt(1200))
	}), "user-1").Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/bookings", []byte(`{"date":"15.03.2025","details":"Miete","amount":"1200","direction":"Outgoing"}`), "application/json")

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.BookingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("b1", res.ID)
	suite.Equal("2025-03-15", res.Date)
	suite.bookings.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestCreateBooking_UnknownDirection() {
	w := suite.do(http.MethodPost, "/api/v1/bookings", []byte(`{"date":"15.03.2025","details":"Miete","amount":"1","direction":"Sideways"}`), "application/json")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.bookings.AssertNotCalled(suite.T(), "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestGetBooking_NotFound() {
	suite.bookings.On("GetBooking", mock.Anything, "missing", "user-1").Return(nil, apperrors.NewNotFoundError("booking not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/bookings/missing", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestListBookings_PassesPaging() {
	suite.bookings.On("ListBookings", mock.Anything, mock.MatchedBy(func(p dto.ListBookingsParams) bool {
		return p.Limit == 10 && p.NextToken == "abc" && p.ModifiedOnly
	}), "user-1").Return([]domain.Booking{}, "def", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/bookings?limit=10&nextToken=abc&modifiedOnly=true", nil, "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.ListBookingsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("def", res.NextToken)
}

func (suite *HandlersTestSuite) TestBatchUpdate_PartialFailure() {
	suite.bookings.On("BatchUpdateBookings", mock.Anything, mock.Anything, "user-1").Return(dto.BatchUpdateBookingsResponse{
		Updated: 1, Failed: 1,
		Results: []dto.BatchUpdateResult{{ID: "b1"}, {ID: "b2", Error: "not found"}},
	}).Once()

	body := `{"items":[{"id":"b1","date":"2025-03-01","details":"A","amount":"1","direction":"Incoming"},{"id":"b2","date":"2025-03-01","details":"B","amount":"1","direction":"Incoming"}]}`
	w := suite.do(http.MethodPatch, "/api/v1/bookings", []byte(body), "application/json")

	suite.Equal(http.StatusMultiStatus, w.Code)
}

func (suite *HandlersTestSuite) TestProjection_Success() {
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	p := domain.Projection{
		StartBalance: decimal.NewFromInt(100),
		FinalBalance: decimal.NewFromInt(-900),
		Counts:       map[domain.Category]int{domain.CategoryFixedCost: 1},
		Entries: []domain.ProjectedBooking{{
			Booking:      domain.Booking{ID: "x", Date: day, Details: "Miete", Amount: decimal.NewFromInt(1000), Direction: domain.Outgoing, Category: domain.CategoryFixedCost},
			SignedAmount: decimal.NewFromInt(-1000),
			Balance:      decimal.NewFromInt(-900),
			Marker:       "📌",
		}},
	}
	suite.planning.On("Project", mock.Anything, mock.MatchedBy(func(params dto.ProjectionParams) bool {
		return params.From == "2025-03-01" && params.IncludePayroll != nil && !*params.IncludePayroll && params.IncludeFixedCosts == nil
	}), "user-1").Return(&portssvc.ProjectionResult{Projection: p, Full: p, RangeStart: "2025-03-01", RangeEnd: "2025-03-31"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/planning/projection?from=2025-03-01&includePayroll=false", nil, "")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.ProjectionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(1, res.Counts["Fixkosten"])
	suite.Require().NotNil(res.LowestPoint)
	suite.Equal("2025-03-03", res.LowestPoint.Date)
	suite.Require().Len(res.Entries, 1)
	suite.True(res.Entries[0].Balance.Equal(decimal.NewFromInt(-900)))
}

func (suite *HandlersTestSuite) TestProjection_ValidationError() {
	suite.planning.On("Project", mock.Anything, mock.Anything, "user-1").Return(nil, apperrors.NewValidationError("bad window")).Once()

	w := suite.do(http.MethodGet, "/api/v1/planning/projection?from=2025-03-31&to=2025-03-01", nil, "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestExport_Attachment() {
	suite.planning.On("Export", mock.Anything, mock.Anything, "user-1").Return(&portssvc.ExportFile{
		Data: []byte("%PDF-1.3"), ContentType: "application/pdf", FileName: "liquiditaetsplanung_2025-03-01_2025-03-31.pdf",
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/planning/export?format=pdf", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "liquiditaetsplanung_2025-03-01_2025-03-31.pdf")
}

func (suite *HandlersTestSuite) TestImport_Multipart() {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	suite.Require().NoError(mw.WriteField("html", "<table></table>"))
	fw, err := mw.CreateFormFile("invoices", "offen.xlsx")
	suite.Require().NoError(err)
	_, _ = fw.Write([]byte("xlsx-bytes"))
	suite.Require().NoError(mw.Close())

	suite.imports.On("Import", mock.Anything, mock.MatchedBy(func(r dto.ImportRequest) bool {
		return r.StatementHTML == "<table></table>" && string(r.Invoices) == "xlsx-bytes" && r.InvoicesName == "offen.xlsx"
	}), "user-1").Return(&domain.ImportReport{Parsed: 3, Imported: 1, Duplicates: 2}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/imports", body.Bytes(), mw.FormDataContentType())

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.ImportReportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(2, res.Skipped)
}

func (suite *HandlersTestSuite) TestImport_EmptyUpload() {
	w := suite.do(http.MethodPost, "/api/v1/imports", []byte("html="), "application/x-www-form-urlencoded")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.imports.AssertNotCalled(suite.T(), "Import", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestReset_Forbidden() {
	suite.admin.On("Reset", mock.Anything, "user-1").Return(apperrors.NewAppError(http.StatusForbidden, "data reset is disabled", apperrors.ErrForbidden)).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/reset", nil, "")

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlersTestSuite) TestReset_StoreUnavailable() {
	suite.admin.On("Reset", mock.Anything, "user-1").Return(fmt.Errorf("failed to reset table buchungen: %w", apperrors.ErrUnavailable)).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/reset", nil, "")

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.NotContains(w.Body.String(), "buchungen")
}

func (suite *HandlersTestSuite) TestRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestHealth() {
	suite.admin.On("Health", mock.Anything).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", strings.TrimSpace(w.Body.String()))
}

func (suite *HandlersTestSuite) TestDevTokenHiddenInProduction() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(`{"userID":"u"}`))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
