package service

import (
	"errors"
	"fmt"
	"time"

	"rentledger-be-svc/internal/models"
	"rentledger-be-svc/internal/repository"
	"rentledger-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// maxPaymentRetries bounds the optimistic-concurrency retry loop in ApplyPayment
const maxPaymentRetries = 3

// LedgerService defines the interface for bill lifecycle operations
type LedgerService interface {
	CreateBill(input *CreateBillInput) (*models.Bill, error)
	ApplyPayment(billID uint, amount float64, paymentDate time.Time) (*PaymentResult, error)
	SetBillStatus(billID uint, status string, paymentAmount *float64, paymentDate *time.Time) error
	DeleteBill(billID uint) error
	GetBillsByTenant(tenantID uint) ([]*models.Bill, error)
	GetBillsByLandlord(landlordID uint, page int, limit int) ([]*models.Bill, int64, error)
	GetOutstandingBalance(tenantID uint) (*OutstandingBalanceResponse, error)
	ExportBillsToExcel(landlordID uint, billingPeriod *string, status *string) ([]byte, string, error)
}

// CreateBillInput carries the fields for creating a single bill
type CreateBillInput struct {
	TenantID      uint
	LandlordID    uint
	RoomNumber    string
	BillingPeriod string
	BillType      string
	TotalAmount   float64
	DueDate       *time.Time
	Items         []BillItemInput
}

// BillItemInput is a display line item supplied at creation time
type BillItemInput struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

// PaymentResult represents the outcome of a payment application
type PaymentResult struct {
	BillID           uint    `json:"bill_id"`
	Status           string  `json:"status"`
	RemainingBalance float64 `json:"remaining_balance"`
	TotalPaid        float64 `json:"total_paid"`
}

// OutstandingBalanceResponse summarizes what a tenant still owes
type OutstandingBalanceResponse struct {
	TenantID           uint    `json:"tenant_id"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	UnpaidBills        int     `json:"unpaid_bills"`
}

// ledgerService implements LedgerService
type ledgerService struct {
	billRepo   repository.BillRepository
	tenantRepo repository.TenantRepository
	tenantSync TenantSyncService
	logger     *logger.Logger
}

// NewLedgerService creates a new instance of LedgerService
func NewLedgerService(billRepo repository.BillRepository, tenantRepo repository.TenantRepository, tenantSync TenantSyncService, logger *logger.Logger) LedgerService {
	return &ledgerService{
		billRepo:   billRepo,
		tenantRepo: tenantRepo,
		tenantSync: tenantSync,
		logger:     logger,
	}
}

// CreateBill creates a bill in the Pending state with nothing paid yet. The
// tenant rollup is force-set to Pending instead of recomputed: a brand-new bill
// is always unpaid, so the full recompute would land on Pending anyway.
func (s *ledgerService) CreateBill(input *CreateBillInput) (*models.Bill, error) {
	docID := "bill-" + uuid.New().String()
	if input.BillType == models.BillTypeMonthlyRent {
		docID = "monthly-" + uuid.New().String()
	}

	bill := &models.Bill{
		DocumentID:       docID,
		TenantID:         input.TenantID,
		LandlordID:       input.LandlordID,
		RoomNumber:       input.RoomNumber,
		BillingPeriod:    input.BillingPeriod,
		BillType:         input.BillType,
		TotalAmount:      input.TotalAmount,
		PaymentAmount:    0,
		RemainingBalance: input.TotalAmount,
		Status:           models.BillStatusPending,
		DueDate:          input.DueDate,
	}
	for _, item := range input.Items {
		bill.Items = append(bill.Items, models.BillItem{
			Description: item.Description,
			Amount:      item.Amount,
			Category:    item.Category,
		})
	}

	if err := s.billRepo.CreateBill(bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	// Rollup write is best-effort: the bill exists regardless.
	if err := s.tenantRepo.UpdatePaymentStatus(input.TenantID, models.TenantPaymentStatusPending); err != nil {
		s.logger.WithError(err).WithField("tenant_id", input.TenantID).Error("Failed to update tenant payment status after bill creation")
	}

	return bill, nil
}

// ApplyPayment adds a payment to the bill's cumulative payment amount and
// derives the new status: Paid once the total is covered, Partially Paid
// otherwise. The write is guarded by an optimistic check on the payment amount
// read at the start, so two concurrent payments cannot overwrite each other.
func (s *ledgerService) ApplyPayment(billID uint, amount float64, paymentDate time.Time) (*PaymentResult, error) {
	for attempt := 0; attempt < maxPaymentRetries; attempt++ {
		bill, err := s.billRepo.GetBillByID(billID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("bill %d not found: %w", billID, err)
			}
			return nil, fmt.Errorf("failed to read bill %d: %w", billID, err)
		}

		newPaid := bill.PaymentAmount + amount
		status := models.BillStatusPartiallyPaid
		remaining := bill.TotalAmount - newPaid
		if newPaid >= bill.TotalAmount {
			status = models.BillStatusPaid
			remaining = 0
		}

		affected, err := s.billRepo.ApplyPaymentUpdate(billID, bill.PaymentAmount, newPaid, remaining, status, paymentDate)
		if err != nil {
			return nil, fmt.Errorf("failed to apply payment to bill %d: %w", billID, err)
		}
		if affected == 0 {
			// A concurrent payment landed between our read and write; re-read and retry.
			s.logger.WithField("bill_id", billID).WithField("attempt", attempt+1).Warn("Payment write conflicted, retrying")
			continue
		}

		s.syncTenantStatus(bill.TenantID)

		return &PaymentResult{
			BillID:           billID,
			Status:           status,
			RemainingBalance: remaining,
			TotalPaid:        newPaid,
		}, nil
	}

	return nil, fmt.Errorf("payment application for bill %d conflicted %d times", billID, maxPaymentRetries)
}

// SetBillStatus overwrites a bill's status with any of the six states,
// regardless of the current one. This is the correction escape hatch
// (Paid to Refunded, Cancelled back to Pending, manual Overdue). Balance
// fields are only touched when a payment amount is supplied.
func (s *ledgerService) SetBillStatus(billID uint, status string, paymentAmount *float64, paymentDate *time.Time) error {
	bill, err := s.billRepo.GetBillByID(billID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("bill %d not found: %w", billID, err)
		}
		return fmt.Errorf("failed to read bill %d: %w", billID, err)
	}

	fields := map[string]interface{}{
		"status": status,
	}
	if paymentAmount != nil {
		remaining := bill.TotalAmount - *paymentAmount
		if remaining < 0 {
			remaining = 0
		}
		fields["payment_amount"] = *paymentAmount
		fields["remaining_balance"] = remaining
	}
	if paymentDate != nil {
		fields["payment_date"] = *paymentDate
	}

	if err := s.billRepo.UpdateBillFields(billID, fields); err != nil {
		return fmt.Errorf("failed to update bill %d: %w", billID, err)
	}

	s.syncTenantStatus(bill.TenantID)

	return nil
}

// DeleteBill removes a bill entirely. No tombstone is kept; the record ceases
// to exist and the tenant rollup is recomputed from what remains.
func (s *ledgerService) DeleteBill(billID uint) error {
	bill, err := s.billRepo.GetBillByID(billID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("bill %d not found: %w", billID, err)
		}
		return fmt.Errorf("failed to read bill %d: %w", billID, err)
	}

	if err := s.billRepo.DeleteBill(billID); err != nil {
		return fmt.Errorf("failed to delete bill %d: %w", billID, err)
	}

	s.syncTenantStatus(bill.TenantID)

	return nil
}

// GetBillsByTenant retrieves a tenant's bills, newest first
func (s *ledgerService) GetBillsByTenant(tenantID uint) ([]*models.Bill, error) {
	return s.billRepo.GetBillsByTenant(tenantID)
}

// GetBillsByLandlord retrieves a landlord's bills with pagination
func (s *ledgerService) GetBillsByLandlord(landlordID uint, page int, limit int) ([]*models.Bill, int64, error) {
	return s.billRepo.GetBillsByLandlord(landlordID, page, limit)
}

// GetOutstandingBalance sums the remaining balance over the tenant's bills
// that are still collectible (Pending or Partially Paid)
func (s *ledgerService) GetOutstandingBalance(tenantID uint) (*OutstandingBalanceResponse, error) {
	bills, err := s.billRepo.GetBillsByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to read bills for tenant %d: %w", tenantID, err)
	}

	resp := &OutstandingBalanceResponse{TenantID: tenantID}
	for _, bill := range bills {
		if bill.Status != models.BillStatusPending && bill.Status != models.BillStatusPartiallyPaid {
			continue
		}
		resp.OutstandingBalance += bill.RemainingBalance
		resp.UnpaidBills++
	}

	return resp, nil
}

// syncTenantStatus runs the rollup recompute after a ledger mutation. Failures
// are logged and swallowed: the bill mutation already succeeded and the next
// mutation's recompute will repair the rollup.
func (s *ledgerService) syncTenantStatus(tenantID uint) {
	if err := s.tenantSync.SyncPaymentStatus(tenantID); err != nil {
		s.logger.WithError(err).WithField("tenant_id", tenantID).Error("Failed to sync tenant payment status")
	}
}

// ExportBillsToExcel exports a landlord's bills to an Excel file
func (s *ledgerService) ExportBillsToExcel(landlordID uint, billingPeriod *string, status *string) ([]byte, string, error) {
	bills, err := s.billRepo.GetBillsForExport(landlordID, billingPeriod, status)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get bills for export: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Error("Failed to close Excel file")
		}
	}()

	sheetName := "Bills"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"No", "Room", "Tenant ID", "Billing Period", "Bill Type", "Total Amount", "Paid", "Remaining", "Status", "Due Date"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "J1", headerStyle)
	}

	for i, bill := range bills {
		row := i + 2

		dueDate := ""
		if bill.DueDate != nil {
			dueDate = bill.DueDate.Format("2006-01-02")
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), bill.RoomNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), bill.TenantID)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), bill.BillingPeriod)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), bill.BillType)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), bill.TotalAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), bill.PaymentAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), bill.RemainingBalance)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), bill.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), dueDate)
	}

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 15)
	}

	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("bills_export_%s.xlsx", timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buffer.Bytes(), filename, nil
}
