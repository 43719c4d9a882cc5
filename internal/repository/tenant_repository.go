package repository

import (
	"rentledger-be-svc/internal/models"

	"gorm.io/gorm"
)

// TenantRepository defines the interface for tenant directory operations
type TenantRepository interface {
	GetTenantByID(id uint) (*models.Tenant, error)
	GetTenantsByLandlord(landlordID uint) ([]*models.Tenant, error)
	UpdatePaymentStatus(tenantID uint, status string) error
	GetDistinctLandlordIDs() ([]uint, error)
}

// tenantRepository implements TenantRepository
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new instance of TenantRepository
func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// GetTenantByID retrieves a tenant record by ID
func (r *tenantRepository) GetTenantByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant

	err := r.db.Where("id = ?", id).First(&tenant).Error
	if err != nil {
		return nil, err
	}

	return &tenant, nil
}

// GetTenantsByLandlord retrieves all tenants belonging to a landlord
func (r *tenantRepository) GetTenantsByLandlord(landlordID uint) ([]*models.Tenant, error) {
	var tenants []*models.Tenant

	err := r.db.Where("landlord_id = ?", landlordID).Order("room_number").Find(&tenants).Error
	if err != nil {
		return nil, err
	}

	return tenants, nil
}

// UpdatePaymentStatus writes the denormalized payment status rollup for a tenant
func (r *tenantRepository) UpdatePaymentStatus(tenantID uint, status string) error {
	result := r.db.Model(&models.Tenant{}).
		Where("id = ?", tenantID).
		Update("payment_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetDistinctLandlordIDs lists every landlord that has at least one tenant
func (r *tenantRepository) GetDistinctLandlordIDs() ([]uint, error) {
	var ids []uint

	err := r.db.Model(&models.Tenant{}).
		Distinct("landlord_id").
		Order("landlord_id").
		Pluck("landlord_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}
