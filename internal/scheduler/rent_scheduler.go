package scheduler

import (
	"encoding/json"
	"fmt"
	"time"

	"rentledger-be-svc/internal/models"
	"rentledger-be-svc/internal/repository"
	"rentledger-be-svc/internal/service"
	"rentledger-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// RentScheduler runs the monthly rent bill generation on a cron schedule
type RentScheduler struct {
	batchService     service.RentBatchService
	tenantRepo       repository.TenantRepository
	schedulerLogRepo repository.SchedulerLogRepository
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
}

// NewRentScheduler creates a new rent scheduler
func NewRentScheduler(batchService service.RentBatchService, tenantRepo repository.TenantRepository, schedulerLogRepo repository.SchedulerLogRepository, logger *logger.Logger, cronExpression string) *RentScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &RentScheduler{
		batchService:     batchService,
		tenantRepo:       tenantRepo,
		schedulerLogRepo: schedulerLogRepo,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
	}
}

// Start initializes and starts all scheduled jobs
func (s *RentScheduler) Start() error {
	s.logger.Info("Starting rent scheduler...")

	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling monthly rent generation job")
	_, err := s.cron.AddFunc(s.cronExpression, s.generateMonthlyRentBills)
	if err != nil {
		return fmt.Errorf("failed to schedule monthly rent generation job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Rent scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *RentScheduler) Stop() {
	s.logger.Info("Stopping rent scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Rent scheduler stopped successfully")
}

// generateMonthlyRentBills is the scheduled job. It walks every landlord with
// tenants, skips landlords whose current period already has Monthly Rent bills
// (caller-side duplicate suppression over the advisory existence check), and
// runs batch generation for the rest.
func (s *RentScheduler) generateMonthlyRentBills() {
	schedulerCode := "MONTHLY_RENT_GENERATION"
	now := time.Now()
	docID := uuid.New().String()
	billingPeriod := service.CurrentBillingPeriod(now)

	s.logScheduler(schedulerCode, docID, "Starting scheduled monthly rent generation", "START", &now)
	s.logger.WithField("billing_period", billingPeriod).Info("Starting scheduled monthly rent generation...")

	landlordIDs, err := s.tenantRepo.GetDistinctLandlordIDs()
	if err != nil {
		failedMessage := fmt.Sprintf("Failed to list landlords: %v", err)
		s.logScheduler(schedulerCode, docID, failedMessage, "FAILED", &now)
		s.logger.WithError(err).Error("Failed to list landlords for scheduled generation")
		return
	}

	runningMessage := fmt.Sprintf("Generating rent bills for %d landlords, period %s", len(landlordIDs), billingPeriod)
	s.logScheduler(schedulerCode, docID, runningMessage, "RUNNING", &now)

	var failures int
	for _, landlordID := range landlordIDs {
		check, err := s.batchService.CheckBillingPeriodExists(landlordID, billingPeriod)
		if err != nil {
			s.logger.WithError(err).WithField("landlord_id", landlordID).Error("Failed to check billing period, skipping landlord")
			failures++
			continue
		}
		if check.Exists {
			s.logger.WithFields(map[string]interface{}{
				"landlord_id":    landlordID,
				"billing_period": billingPeriod,
				"existing_bills": check.Count,
			}).Info("Monthly rent bills already exist for period, skipping landlord")
			continue
		}

		response, err := s.batchService.GenerateMonthlyRentBills(landlordID)
		if err != nil {
			s.logger.WithError(err).WithField("landlord_id", landlordID).Error("Failed to generate monthly rent bills")
			failures++
			continue
		}

		responseJSON, _ := json.Marshal(response)
		s.logScheduler(schedulerCode, docID, fmt.Sprintf("Landlord %d: %s", landlordID, string(responseJSON)), "RUNNING", &now)
	}

	if failures > 0 {
		s.logScheduler(schedulerCode, docID, fmt.Sprintf("Completed with %d failed landlords", failures), "FAILED", &now)
	} else {
		s.logScheduler(schedulerCode, docID, "Monthly rent generation completed", "SUCCESS", &now)
	}

	s.logger.WithField("failed_landlords", failures).Info("Scheduled monthly rent generation completed")
}

// logScheduler creates a new log entry in the database
func (s *RentScheduler) logScheduler(schedulerCode, documentID, message, status string, createdAt *time.Time) {
	logEntry := &models.SchedulerLog{
		DocumentID:    &documentID,
		SchedulerCode: &schedulerCode,
		Message:       &message,
		Status:        &status,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}

	if err := s.schedulerLogRepo.CreateSchedulerLog(logEntry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
	}
}
