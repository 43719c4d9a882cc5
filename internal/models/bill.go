package models

import (
	"time"
)

// Bill statuses
const (
	BillStatusPending       = "Pending"
	BillStatusPartiallyPaid = "Partially Paid"
	BillStatusPaid          = "Paid"
	BillStatusOverdue       = "Overdue"
	BillStatusCancelled     = "Cancelled"
	BillStatusRefunded      = "Refunded"
)

// Bill types
const (
	BillTypeMonthlyRent = "Monthly Rent"
	BillTypeMonthlyBill = "Monthly Bill"
)

// Bill represents the bills table
type Bill struct {
	ID               uint       `json:"id" gorm:"primarykey"`
	DocumentID       string     `json:"document_id" gorm:"column:document_id"`
	TenantID         uint       `json:"tenant_id" gorm:"column:tenant_id;index"`
	LandlordID       uint       `json:"landlord_id" gorm:"column:landlord_id;index"`
	RoomNumber       string     `json:"room_number" gorm:"column:room_number"`
	BillingPeriod    string     `json:"billing_period" gorm:"column:billing_period"`
	BillType         string     `json:"bill_type" gorm:"column:bill_type"`
	TotalAmount      float64    `json:"total_amount" gorm:"column:total_amount"`
	PaymentAmount    float64    `json:"payment_amount" gorm:"column:payment_amount"`
	RemainingBalance float64    `json:"remaining_balance" gorm:"column:remaining_balance"`
	Status           string     `json:"status" gorm:"column:status"`
	DueDate          *time.Time `json:"due_date" gorm:"column:due_date"`
	PaymentDate      *time.Time `json:"payment_date" gorm:"column:payment_date"`
	Items            []BillItem `json:"items" gorm:"foreignKey:BillID"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for Bill
func (Bill) TableName() string {
	return "bills"
}

// BillItem represents a display line item on a bill. Items are captured at
// creation time and never re-validated against the bill's total amount.
type BillItem struct {
	ID          uint    `json:"id" gorm:"primarykey"`
	BillID      uint    `json:"bill_id" gorm:"column:bill_id;index"`
	Description string  `json:"description" gorm:"column:description"`
	Amount      float64 `json:"amount" gorm:"column:amount"`
	Category    string  `json:"category" gorm:"column:category"`
}

// TableName sets the insert table name for BillItem
func (BillItem) TableName() string {
	return "bill_items"
}
