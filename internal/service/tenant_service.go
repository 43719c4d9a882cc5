package service

import (
	"rentledger-be-svc/internal/models"
	"rentledger-be-svc/internal/repository"
	"rentledger-be-svc/pkg/logger"
)

// TenantService defines the interface for tenant directory reads
type TenantService interface {
	GetTenantByID(id uint) (*models.Tenant, error)
	GetTenantsByLandlord(landlordID uint) ([]*models.Tenant, error)
}

// tenantService implements TenantService
type tenantService struct {
	tenantRepo repository.TenantRepository
	logger     *logger.Logger
}

// NewTenantService creates a new instance of TenantService
func NewTenantService(tenantRepo repository.TenantRepository, logger *logger.Logger) TenantService {
	return &tenantService{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// GetTenantByID retrieves a single tenant
func (s *tenantService) GetTenantByID(id uint) (*models.Tenant, error) {
	return s.tenantRepo.GetTenantByID(id)
}

// GetTenantsByLandlord retrieves all tenants of a landlord
func (s *tenantService) GetTenantsByLandlord(landlordID uint) ([]*models.Tenant, error) {
	return s.tenantRepo.GetTenantsByLandlord(landlordID)
}
