package repository

import (
	"time"

	"rentledger-be-svc/internal/models"

	"gorm.io/gorm"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	CreateBill(bill *models.Bill) error
	GetBillByID(id uint) (*models.Bill, error)
	GetBillsByTenant(tenantID uint) ([]*models.Bill, error)
	GetBillsByLandlord(landlordID uint, page int, limit int) ([]*models.Bill, int64, error)
	ApplyPaymentUpdate(id uint, previousPaid float64, newPaid float64, remaining float64, status string, paymentDate time.Time) (int64, error)
	UpdateBillFields(id uint, fields map[string]interface{}) error
	DeleteBill(id uint) error
	CountBillsForPeriod(landlordID uint, billType string, billingPeriod string) (int64, error)
	GetBillsForExport(landlordID uint, billingPeriod *string, status *string) ([]*models.Bill, error)
}

// billRepository implements BillRepository
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new instance of BillRepository
func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{
		db: db,
	}
}

// CreateBill creates a bill record together with its line items
func (r *billRepository) CreateBill(bill *models.Bill) error {
	return r.db.Create(bill).Error
}

// GetBillByID retrieves a bill record by ID
func (r *billRepository) GetBillByID(id uint) (*models.Bill, error) {
	var bill models.Bill

	err := r.db.Preload("Items").Where("id = ?", id).First(&bill).Error
	if err != nil {
		return nil, err
	}

	return &bill, nil
}

// GetBillsByTenant retrieves all bills for a tenant, newest first
func (r *billRepository) GetBillsByTenant(tenantID uint) ([]*models.Bill, error) {
	var bills []*models.Bill

	err := r.db.Preload("Items").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}

	return bills, nil
}

// GetBillsByLandlord retrieves bills for a landlord with pagination, newest first
func (r *billRepository) GetBillsByLandlord(landlordID uint, page int, limit int) ([]*models.Bill, int64, error) {
	var bills []*models.Bill
	var total int64

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	if err := r.db.Model(&models.Bill{}).
		Where("landlord_id = ?", landlordID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Items").
		Where("landlord_id = ?", landlordID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&bills).Error
	if err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}

// ApplyPaymentUpdate writes the new payment figures for a bill, guarded by an
// optimistic check on the previously read payment_amount. Returns the number
// of rows affected: 0 means a concurrent writer got there first.
func (r *billRepository) ApplyPaymentUpdate(id uint, previousPaid float64, newPaid float64, remaining float64, status string, paymentDate time.Time) (int64, error) {
	result := r.db.Model(&models.Bill{}).
		Where("id = ? AND payment_amount = ?", id, previousPaid).
		Updates(map[string]interface{}{
			"payment_amount":    newPaid,
			"remaining_balance": remaining,
			"status":            status,
			"payment_date":      paymentDate,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// UpdateBillFields updates arbitrary fields on a bill record
func (r *billRepository) UpdateBillFields(id uint, fields map[string]interface{}) error {
	result := r.db.Model(&models.Bill{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// DeleteBill removes a bill and its line items
func (r *billRepository) DeleteBill(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", id).Delete(&models.BillItem{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Bill{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

// CountBillsForPeriod counts bills of a given type for a landlord and billing period
func (r *billRepository) CountBillsForPeriod(landlordID uint, billType string, billingPeriod string) (int64, error) {
	var count int64

	err := r.db.Model(&models.Bill{}).
		Where("landlord_id = ? AND bill_type = ? AND billing_period = ?", landlordID, billType, billingPeriod).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// GetBillsForExport retrieves a landlord's bills with optional period and status filters
func (r *billRepository) GetBillsForExport(landlordID uint, billingPeriod *string, status *string) ([]*models.Bill, error) {
	var bills []*models.Bill

	query := r.db.Where("landlord_id = ?", landlordID)
	if billingPeriod != nil && *billingPeriod != "" {
		query = query.Where("billing_period = ?", *billingPeriod)
	}
	if status != nil && *status != "" {
		query = query.Where("status = ?", *status)
	}

	err := query.Order("tenant_id, created_at DESC").Find(&bills).Error
	if err != nil {
		return nil, err
	}

	return bills, nil
}
