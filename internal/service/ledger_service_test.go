package service

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"rentledger-be-svc/internal/models"
	"rentledger-be-svc/internal/repository"
	"rentledger-be-svc/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBCounter int64

type testEnv struct {
	db         *gorm.DB
	billRepo   repository.BillRepository
	tenantRepo repository.TenantRepository
	sync       TenantSyncService
	ledger     LedgerService
	batch      RentBatchService
	logger     *logger.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Tenant{}, &models.Bill{}, &models.BillItem{}, &models.SchedulerLog{}))

	log := logger.NewLogger("error", "text")
	billRepo := repository.NewBillRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	syncService := NewTenantSyncService(billRepo, tenantRepo)
	ledgerService := NewLedgerService(billRepo, tenantRepo, syncService, log)
	batchService := NewRentBatchService(ledgerService, tenantRepo, billRepo, log)

	return &testEnv{
		db:         db,
		billRepo:   billRepo,
		tenantRepo: tenantRepo,
		sync:       syncService,
		ledger:     ledgerService,
		batch:      batchService,
		logger:     log,
	}
}

func (e *testEnv) createTenant(t *testing.T, name string, landlordID uint, rent float64, active bool) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		Name:          name,
		LandlordID:    landlordID,
		RoomNumber:    "A-101",
		MonthlyRent:   rent,
		IsActive:      active,
		PaymentStatus: models.TenantPaymentStatusPaid,
	}
	require.NoError(t, e.db.Create(tenant).Error)
	return tenant
}

func (e *testEnv) createBill(t *testing.T, tenant *models.Tenant, total float64) *models.Bill {
	t.Helper()

	bill, err := e.ledger.CreateBill(&CreateBillInput{
		TenantID:      tenant.ID,
		LandlordID:    tenant.LandlordID,
		RoomNumber:    tenant.RoomNumber,
		BillingPeriod: "September 2025",
		BillType:      models.BillTypeMonthlyBill,
		TotalAmount:   total,
	})
	require.NoError(t, err)
	return bill
}

func (e *testEnv) tenantStatus(t *testing.T, tenantID uint) string {
	t.Helper()

	tenant, err := e.tenantRepo.GetTenantByID(tenantID)
	require.NoError(t, err)
	return tenant.PaymentStatus
}

func TestCreateBillInitialState(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.createTenant(t, "Alice", 1, 5000, true)

	bill, err := env.ledger.CreateBill(&CreateBillInput{
		TenantID:      tenant.ID,
		LandlordID:    tenant.LandlordID,
		RoomNumber:    tenant.RoomNumber,
		BillingPeriod: "September 2025",
		BillType:      models.BillTypeMonthlyRent,
		TotalAmount:   5000,
		Items: []BillItemInput{
			{Description: "Room Rental", Amount: 5000, Category: "Rent"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.BillStatusPending, bill.Status)
	assert.Equal(t, float64(0), bill.PaymentAmount)
	assert.Equal(t, float64(5000), bill.RemainingBalance)
	assert.Contains(t, bill.DocumentID, "monthly-")

	stored, err := env.billRepo.GetBillByID(bill.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 1)
	assert.Equal(t, "Room Rental", stored.Items[0].Description)

	// Creation force-sets the rollup without recomputing it
	assert.Equal(t, models.TenantPaymentStatusPending, env.tenantStatus(t, tenant.ID))
}

func TestApplyPaymentPartialThenFull(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.createTenant(t, "Alice", 1, 5000, true)
	bill := env.createBill(t, tenant, 5000)

	result, err := env.ledger.ApplyPayment(bill.ID, 3000, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPartiallyPaid, result.Status)
	assert.Equal(t, float64(2000), result.RemainingBalance)
	assert.Equal(t, float64(3000), result.TotalPaid)
	assert.Equal(t, models.TenantPaymentStatusPending, env.tenantStatus(t, tenant.ID))

	result, err = env.ledger.ApplyPayment(bill.ID, 2000, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, result.Status)
	assert.Equal(t, float64(0), result.RemainingBalance)
	assert.Equal(t, float64(5000), result.TotalPaid)
	assert.Equal(t, models.TenantPaymentStatusPaid, env.tenantStatus(t, tenant.ID))
}

func TestApplyPaymentExactBalancePays(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.createTenant(t, "Alice", 1, 5000, true)
	bill := env.createBill(t, tenant, 4200)

	result, err := env.ledger.ApplyPayment(bill.ID, 4200, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, result.Status)
	assert.Equal(t, float64(0), result.RemainingBalance)
}

func TestApplyPaymentAssociativity(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.createTenant(t, "Alice", 1, 5000, true)
	split := env.createBill(t, tenant, 5000)
	single := env.createBill(t, tenant, 5000)

	_, err := env.ledger.ApplyPayment(split.ID, 1500, time.Now())
	require.NoError(t, err)
	_, err = env.ledger.ApplyPayment(split.ID, 3500, time.Now())
	require.NoError(t, err)
	_, err = env.ledger.ApplyPayment(single.ID, 5000, time.Now())
	require.NoError(t, err)

	splitBill, err := env.billRepo.GetBillByID(split.ID)
	require.NoError(t, err)
	singleBill, err := env.billRepo.GetBillByID(single.ID)
	require.NoError(t, err)

	assert.Equal(t, singleBill.Status, splitBill.Status)
	assert.Equal(t, singleBill.PaymentAmount, splitBill.PaymentAmount)
	assert.Equal(t, singleBill.RemainingBalance, splitBill.RemainingBalance)
}

func TestApplyPaymentBalanceInvariant(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.createTenant(t, "Alice", 1, 5000, true)
	bill := env.createBill(t, tenant, 7500)

	for _, amount := range []float64{1000, 2500, 500, 3500} {
		_, err := env.ledger.ApplyPayment(bill.ID, amount, time.Now())
		require.NoError(t, err)

		stored, err := env.billRepo.GetBillByID(bill.ID)
		require.NoError(t, err)

		expected := stored.TotalAmount - stored.PaymentAmount
		if expected < 0 {
			expected = 0
		}
		assert.Equal(t, expected, stored.RemainingBalance)
	}
}

func TestApplyPaymentOverpaymentCapsAtZero(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.createTenant(t, "Alice", 1, 5000, true)
	bill := env.createBill(t, tenant, 1000)

	// The engine trusts its input; overpayment still lands on Paid with a zero balance
	result, err := env.ledger.ApplyPayment(bill.ID, 1500, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, result.Status)
	assert.Equal(t, float64(0), result.RemainingBalance)
	assert.Equal(t, float64(1500), result.TotalPaid)
}

func TestApplyPaymentNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.ledger.ApplyPayment(999, 100, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSetBillStatusWithoutAmountLeavesBalance(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.createTenant(t, "Alice", 1, 5000, true)
	bill := env.createBill(t, tenant, 5000)

	require.NoError(t, env.ledger.SetBillStatus(bill.ID, models.BillStatusPaid, nil, nil))

	stored, err := env.billRepo.GetBillByID(bill.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, stored.Status)
	// Balance fields stay untouched when no amount is supplied
	assert.Equal(t, float64(0), stored.PaymentAmount)
	assert.Equal(t, float64(5000), stored.RemainingBalance)

	// The rollup follows the status, not the balance
	assert.Equal(t, models.TenantPaymentStatusPaid, env.tenantStatus(t, tenant.ID))
}

func TestSetBillStatusWithAmountRecomputesBalance(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.createTenant(t, "Alice", 1, 5000, true)
	bill := env.createBill(t, tenant, 5000)

	amount := 5000.0
	now := time.Now()
	require.NoError(t, env.ledger.SetBillStatus(bill.ID, models.BillStatusPaid, &amount, &now))

	stored, err := env.billRepo.GetBillByID(bill.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, stored.Status)
	assert.Equal(t, float64(5000), stored.PaymentAmount)
	assert.Equal(t, float64(0), stored.RemainingBalance)
	require.NotNil(t, stored.PaymentDate)
}

func TestSetBillStatusReactivatesCancelled(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.createTenant(t, "Alice", 1, 5000, true)
	bill := env.createBill(t, tenant, 5000)

	require.NoError(t, env.ledger.SetBillStatus(bill.ID, models.BillStatusCancelled, nil, nil))
	require.NoError(t, env.ledger.SetBillStatus(bill.ID, models.BillStatusPending, nil, nil))

	stored, err := env.billRepo.GetBillByID(bill.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPending, stored.Status)
	assert.Equal(t, models.TenantPaymentStatusPending, env.tenantStatus(t, tenant.ID))
}

func TestSetBillStatusNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.ledger.SetBillStatus(999, models.BillStatusPaid, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteBillResyncsRollup(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.createTenant(t, "Alice", 1, 5000, true)
	bill := env.createBill(t, tenant, 5000)
	require.Equal(t, models.TenantPaymentStatusPending, env.tenantStatus(t, tenant.ID))

	require.NoError(t, env.ledger.DeleteBill(bill.ID))

	// Deleting the only unpaid bill leaves nothing owed
	assert.Equal(t, models.TenantPaymentStatusPaid, env.tenantStatus(t, tenant.ID))

	_, err := env.billRepo.GetBillByID(bill.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteBillNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.ledger.DeleteBill(999)
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetBillsByTenantNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.createTenant(t, "Alice", 1, 5000, true)

	first := env.createBill(t, tenant, 1000)
	require.NoError(t, env.db.Model(&models.Bill{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)
	second := env.createBill(t, tenant, 2000)

	bills, err := env.ledger.GetBillsByTenant(tenant.ID)
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, second.ID, bills[0].ID)
	assert.Equal(t, first.ID, bills[1].ID)
}

func TestGetOutstandingBalance(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.createTenant(t, "Alice", 1, 5000, true)

	env.createBill(t, tenant, 3000)
	partial := env.createBill(t, tenant, 2000)
	paid := env.createBill(t, tenant, 1000)
	cancelled := env.createBill(t, tenant, 4000)

	_, err := env.ledger.ApplyPayment(partial.ID, 500, time.Now())
	require.NoError(t, err)
	_, err = env.ledger.ApplyPayment(paid.ID, 1000, time.Now())
	require.NoError(t, err)
	require.NoError(t, env.ledger.SetBillStatus(cancelled.ID, models.BillStatusCancelled, nil, nil))

	balance, err := env.ledger.GetOutstandingBalance(tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(3000+1500), balance.OutstandingBalance)
	assert.Equal(t, 2, balance.UnpaidBills)
}

func TestExportBillsToExcel(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.createTenant(t, "Alice", 7, 5000, true)
	env.createBill(t, tenant, 3000)

	content, filename, err := env.ledger.ExportBillsToExcel(7, nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
	assert.Contains(t, filename, ".xlsx")
}
