package service

import (
	"fmt"

	"rentledger-be-svc/internal/models"
	"rentledger-be-svc/internal/repository"
)

// TenantSyncService recomputes the denormalized payment status rollup on a
// tenant from that tenant's full bill set. The recompute is total, never
// incremental, so a single successful run repairs any earlier desync.
type TenantSyncService interface {
	SyncPaymentStatus(tenantID uint) error
}

// tenantSyncService implements TenantSyncService
type tenantSyncService struct {
	billRepo   repository.BillRepository
	tenantRepo repository.TenantRepository
}

// NewTenantSyncService creates a new instance of TenantSyncService
func NewTenantSyncService(billRepo repository.BillRepository, tenantRepo repository.TenantRepository) TenantSyncService {
	return &tenantSyncService{
		billRepo:   billRepo,
		tenantRepo: tenantRepo,
	}
}

// SyncPaymentStatus reads every bill for the tenant and writes the rollup.
// No bills means nothing is owed, so the rollup becomes Paid. Any bill in a
// state other than Paid keeps the rollup at Pending.
func (s *tenantSyncService) SyncPaymentStatus(tenantID uint) error {
	bills, err := s.billRepo.GetBillsByTenant(tenantID)
	if err != nil {
		return fmt.Errorf("failed to read bills for tenant %d: %w", tenantID, err)
	}

	status := models.TenantPaymentStatusPaid
	for _, bill := range bills {
		if bill.Status != models.BillStatusPaid {
			status = models.TenantPaymentStatusPending
			break
		}
	}

	if err := s.tenantRepo.UpdatePaymentStatus(tenantID, status); err != nil {
		return fmt.Errorf("failed to update payment status for tenant %d: %w", tenantID, err)
	}

	return nil
}
