package models

import (
	"time"
)

// Tenant payment status rollup values
const (
	TenantPaymentStatusPaid    = "Paid"
	TenantPaymentStatusPending = "Pending"
)

// Tenant represents the tenants table. PaymentStatus is a denormalized rollup
// derived from the tenant's bill set, not an independent source of truth.
type Tenant struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	DocumentID    string    `json:"document_id" gorm:"column:document_id"`
	Name          string    `json:"name" gorm:"column:name"`
	Email         string    `json:"email" gorm:"column:email"`
	LandlordID    uint      `json:"landlord_id" gorm:"column:landlord_id;index"`
	RoomNumber    string    `json:"room_number" gorm:"column:room_number"`
	MonthlyRent   float64   `json:"monthly_rent" gorm:"column:monthly_rent"`
	IsActive      bool      `json:"is_active" gorm:"column:is_active"`
	PaymentStatus string    `json:"payment_status" gorm:"column:payment_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
