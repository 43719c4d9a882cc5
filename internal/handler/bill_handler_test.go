package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"rentledger-be-svc/internal/models"
	"rentledger-be-svc/internal/repository"
	"rentledger-be-svc/internal/service"
	"rentledger-be-svc/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var handlerTestDBCounter int64

type handlerTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func newHandlerTestEnv(t *testing.T) *handlerTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlerdb%d?mode=memory&cache=shared", atomic.AddInt64(&handlerTestDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Tenant{}, &models.Bill{}, &models.BillItem{}))

	log := logger.NewLogger("error", "text")
	billRepo := repository.NewBillRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	syncService := service.NewTenantSyncService(billRepo, tenantRepo)
	ledgerService := service.NewLedgerService(billRepo, tenantRepo, syncService, log)
	batchService := service.NewRentBatchService(ledgerService, tenantRepo, billRepo, log)
	tenantService := service.NewTenantService(tenantRepo, log)

	router := gin.New()
	SetupRoutes(router, ledgerService, batchService, tenantService, log)

	return &handlerTestEnv{db: db, router: router}
}

func (e *handlerTestEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *handlerTestEnv) seedTenant(t *testing.T, landlordID uint, rent float64, active bool) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		Name:          "Alice",
		LandlordID:    landlordID,
		RoomNumber:    "B-204",
		MonthlyRent:   rent,
		IsActive:      active,
		PaymentStatus: models.TenantPaymentStatusPaid,
	}
	require.NoError(t, e.db.Create(tenant).Error)
	return tenant
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestCreateBillEndpoint(t *testing.T) {
	env := newHandlerTestEnv(t)
	tenant := env.seedTenant(t, 1, 5000, true)

	w := env.request(t, http.MethodPost, "/api/v1/bills", gin.H{
		"tenant_id":      tenant.ID,
		"landlord_id":    tenant.LandlordID,
		"room_number":    tenant.RoomNumber,
		"billing_period": "September 2025",
		"bill_type":      "Monthly Bill",
		"total_amount":   5000,
		"items": []gin.H{
			{"description": "Electricity", "amount": 5000, "category": "Utilities"},
		},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)

	var bill models.Bill
	require.NoError(t, json.Unmarshal(resp.Data, &bill))
	assert.Equal(t, "Pending", bill.Status)
	assert.Equal(t, float64(5000), bill.RemainingBalance)
	assert.NotZero(t, bill.ID)
}

func TestCreateBillEndpointRejectsMissingFields(t *testing.T) {
	env := newHandlerTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/bills", gin.H{
		"tenant_id": 1,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
}

func TestApplyPaymentEndpoint(t *testing.T) {
	env := newHandlerTestEnv(t)
	tenant := env.seedTenant(t, 1, 5000, true)

	created := env.request(t, http.MethodPost, "/api/v1/bills", gin.H{
		"tenant_id":      tenant.ID,
		"landlord_id":    tenant.LandlordID,
		"billing_period": "September 2025",
		"bill_type":      "Monthly Rent",
		"total_amount":   5000,
	})
	require.Equal(t, http.StatusCreated, created.Code)
	var bill models.Bill
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, created).Data, &bill))

	w := env.request(t, http.MethodPost, fmt.Sprintf("/api/v1/bills/%d/payments", bill.ID), gin.H{
		"amount": 3000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result service.PaymentResult
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &result))
	assert.Equal(t, "Partially Paid", result.Status)
	assert.Equal(t, float64(2000), result.RemainingBalance)
	assert.Equal(t, float64(3000), result.TotalPaid)
}

func TestApplyPaymentEndpointRejectsNonPositiveAmount(t *testing.T) {
	env := newHandlerTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/bills/1/payments", gin.H{
		"amount": -50,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyPaymentEndpointBillNotFound(t *testing.T) {
	env := newHandlerTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/bills/999/payments", gin.H{
		"amount": 100,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetBillStatusEndpointRejectsUnknownStatus(t *testing.T) {
	env := newHandlerTestEnv(t)

	w := env.request(t, http.MethodPatch, "/api/v1/bills/1/status", gin.H{
		"status": "Sort Of Paid",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateMonthlyEndpoint(t *testing.T) {
	env := newHandlerTestEnv(t)
	env.seedTenant(t, 5, 5000, true)

	w := env.request(t, http.MethodPost, "/api/v1/bills/generate-monthly", gin.H{
		"landlord_id": 5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result service.BatchGenerationResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &result))
	assert.Equal(t, 1, result.TotalTenants)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 0, result.FailedCount)
}

func TestPeriodCheckEndpoint(t *testing.T) {
	env := newHandlerTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/bills/period-check?landlord_id=1&period=September%202025", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result service.PeriodCheckResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &result))
	assert.False(t, result.Exists)
	assert.Equal(t, int64(0), result.Count)
}

func TestPeriodCheckEndpointRequiresParams(t *testing.T) {
	env := newHandlerTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/bills/period-check", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTenantEndpointNotFound(t *testing.T) {
	env := newHandlerTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/tenants/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	env := newHandlerTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
