package service

import (
	"fmt"
	"time"

	"rentledger-be-svc/internal/models"
	"rentledger-be-svc/internal/repository"
	"rentledger-be-svc/pkg/logger"
)

// RentBatchService defines the interface for bulk monthly rent bill generation
type RentBatchService interface {
	GenerateMonthlyRentBills(landlordID uint) (*BatchGenerationResponse, error)
	CheckBillingPeriodExists(landlordID uint, billingPeriod string) (*PeriodCheckResponse, error)
}

// TenantBillingResult is the per-tenant outcome of a batch run
type TenantBillingResult struct {
	TenantID   uint   `json:"tenant_id"`
	TenantName string `json:"tenant_name"`
	Success    bool   `json:"success"`
	BillID     *uint  `json:"bill_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

// BatchGenerationResponse represents the result of a bulk generation run.
// TotalTenants counts every tenant fetched for the landlord; SuccessCount and
// FailedCount only count tenants a creation was actually attempted for.
type BatchGenerationResponse struct {
	BillingPeriod string                `json:"billing_period"`
	TotalTenants  int                   `json:"total_tenants"`
	SuccessCount  int                   `json:"success_count"`
	FailedCount   int                   `json:"failed_count"`
	Results       []TenantBillingResult `json:"results"`
}

// PeriodCheckResponse reports whether Monthly Rent bills already exist for a period
type PeriodCheckResponse struct {
	Exists bool  `json:"exists"`
	Count  int64 `json:"count"`
}

// rentBatchService implements RentBatchService
type rentBatchService struct {
	ledgerService LedgerService
	tenantRepo    repository.TenantRepository
	billRepo      repository.BillRepository
	logger        *logger.Logger
}

// NewRentBatchService creates a new instance of RentBatchService
func NewRentBatchService(ledgerService LedgerService, tenantRepo repository.TenantRepository, billRepo repository.BillRepository, logger *logger.Logger) RentBatchService {
	return &rentBatchService{
		ledgerService: ledgerService,
		tenantRepo:    tenantRepo,
		billRepo:      billRepo,
		logger:        logger,
	}
}

// CurrentBillingPeriod returns the human-readable billing period label for the
// given time, e.g. "September 2025"
func CurrentBillingPeriod(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month().String(), t.Year())
}

// firstOfNextMonth returns midnight on the first day of the following month
func firstOfNextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}

// GenerateMonthlyRentBills creates one Monthly Rent bill for every active
// tenant of the landlord with a positive monthly rent, for the current
// calendar month. Inactive and zero-rent tenants are skipped without being
// counted as failures. One tenant's creation failure never aborts the run;
// it is recorded in that tenant's result entry and the loop continues.
// Nothing here prevents a second run from creating duplicate bills for the
// same period; duplicate suppression is the caller's concern via
// CheckBillingPeriodExists.
func (s *rentBatchService) GenerateMonthlyRentBills(landlordID uint) (*BatchGenerationResponse, error) {
	tenants, err := s.tenantRepo.GetTenantsByLandlord(landlordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants for landlord %d: %w", landlordID, err)
	}

	now := time.Now()
	billingPeriod := CurrentBillingPeriod(now)
	dueDate := firstOfNextMonth(now)

	response := &BatchGenerationResponse{
		BillingPeriod: billingPeriod,
		TotalTenants:  len(tenants),
	}

	for _, tenant := range tenants {
		if !tenant.IsActive || tenant.MonthlyRent <= 0 {
			continue
		}

		result := TenantBillingResult{
			TenantID:   tenant.ID,
			TenantName: tenant.Name,
		}

		bill, err := s.ledgerService.CreateBill(&CreateBillInput{
			TenantID:      tenant.ID,
			LandlordID:    landlordID,
			RoomNumber:    tenant.RoomNumber,
			BillingPeriod: billingPeriod,
			BillType:      models.BillTypeMonthlyRent,
			TotalAmount:   tenant.MonthlyRent,
			DueDate:       &dueDate,
			Items: []BillItemInput{
				{
					Description: "Room Rental",
					Amount:      tenant.MonthlyRent,
					Category:    "Rent",
				},
			},
		})
		if err != nil {
			s.logger.WithError(err).WithFields(map[string]interface{}{
				"tenant_id":   tenant.ID,
				"landlord_id": landlordID,
			}).Error("Failed to create monthly rent bill")
			result.Error = err.Error()
			response.FailedCount++
		} else {
			billID := bill.ID
			result.Success = true
			result.BillID = &billID
			response.SuccessCount++
		}

		response.Results = append(response.Results, result)
	}

	s.logger.WithFields(map[string]interface{}{
		"landlord_id":    landlordID,
		"billing_period": billingPeriod,
		"total_tenants":  response.TotalTenants,
		"success_count":  response.SuccessCount,
		"failed_count":   response.FailedCount,
	}).Info("Monthly rent bill generation completed")

	return response, nil
}

// CheckBillingPeriodExists reports whether Monthly Rent bills already exist
// for the landlord and period. Advisory only: it warns the caller about a
// likely duplicate run but does not block generation.
func (s *rentBatchService) CheckBillingPeriodExists(landlordID uint, billingPeriod string) (*PeriodCheckResponse, error) {
	count, err := s.billRepo.CountBillsForPeriod(landlordID, models.BillTypeMonthlyRent, billingPeriod)
	if err != nil {
		return nil, fmt.Errorf("failed to count bills for period %q: %w", billingPeriod, err)
	}

	return &PeriodCheckResponse{
		Exists: count > 0,
		Count:  count,
	}, nil
}
