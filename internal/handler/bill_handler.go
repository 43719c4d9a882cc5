package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"rentledger-be-svc/internal/service"
	"rentledger-be-svc/pkg/logger"
	"rentledger-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateBillRequest represents the request for creating a single bill
type CreateBillRequest struct {
	TenantID      uint                    `json:"tenant_id" binding:"required"`
	LandlordID    uint                    `json:"landlord_id" binding:"required"`
	RoomNumber    string                  `json:"room_number"`
	BillingPeriod string                  `json:"billing_period" binding:"required"`
	BillType      string                  `json:"bill_type" binding:"required"`
	TotalAmount   float64                 `json:"total_amount" binding:"required,gt=0"`
	DueDate       *time.Time              `json:"due_date"`
	Items         []service.BillItemInput `json:"items"`
}

// ApplyPaymentRequest represents the request for applying a payment to a bill
type ApplyPaymentRequest struct {
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	PaymentDate *time.Time `json:"payment_date"`
}

// SetBillStatusRequest represents the request for a manual status override
type SetBillStatusRequest struct {
	Status        string     `json:"status" binding:"required,oneof=Pending 'Partially Paid' Paid Overdue Cancelled Refunded"`
	PaymentAmount *float64   `json:"payment_amount"`
	PaymentDate   *time.Time `json:"payment_date"`
}

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	ledgerService service.LedgerService
	logger        *logger.Logger
}

// NewBillHandler creates a new BillHandler instance
func NewBillHandler(ledgerService service.LedgerService, logger *logger.Logger) *BillHandler {
	return &BillHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// CreateBill creates a single bill for a tenant
// @Summary Create bill
// @Description Create a single bill in the Pending state for a tenant
// @Tags bills
// @Accept json
// @Produce json
// @Param request body CreateBillRequest true "Bill fields"
// @Success 201 {object} utils.APIResponse{data=models.Bill} "Bill created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	bill, err := h.ledgerService.CreateBill(&service.CreateBillInput{
		TenantID:      req.TenantID,
		LandlordID:    req.LandlordID,
		RoomNumber:    req.RoomNumber,
		BillingPeriod: req.BillingPeriod,
		BillType:      req.BillType,
		TotalAmount:   req.TotalAmount,
		DueDate:       req.DueDate,
		Items:         req.Items,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to create bill")
		utils.InternalServerErrorResponse(c, "Failed to create bill", err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"bill_id":   bill.ID,
		"tenant_id": bill.TenantID,
	}).Info("Bill created successfully")

	utils.CreatedResponse(c, "Bill created successfully", bill)
}

// ApplyPayment applies a payment against a bill
// @Summary Apply payment
// @Description Apply a payment amount against a bill; derives Paid or Partially Paid
// @Tags bills
// @Accept json
// @Produce json
// @Param id path int true "Bill ID"
// @Param request body ApplyPaymentRequest true "Payment amount and date"
// @Success 200 {object} utils.APIResponse{data=service.PaymentResult} "Payment applied"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/{id}/payments [post]
func (h *BillHandler) ApplyPayment(c *gin.Context) {
	billID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid payment payload")
		utils.BadRequestResponse(c, "Payment amount must be a positive number", err)
		return
	}

	paymentDate := time.Now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	result, err := h.ledgerService.ApplyPayment(billID, req.Amount, paymentDate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Bill not found")
			return
		}
		h.logger.WithError(err).WithField("bill_id", billID).Error("Failed to apply payment")
		utils.InternalServerErrorResponse(c, "Failed to apply payment", err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"bill_id":           billID,
		"status":            result.Status,
		"remaining_balance": result.RemainingBalance,
		"total_paid":        result.TotalPaid,
	}).Info("Payment applied successfully")

	utils.SuccessResponse(c, "Payment applied successfully", result)
}

// SetBillStatus overrides a bill's status
// @Summary Set bill status
// @Description Manual status override to any of the six bill states; balance fields are recomputed only when payment_amount is supplied
// @Tags bills
// @Accept json
// @Produce json
// @Param id path int true "Bill ID"
// @Param request body SetBillStatusRequest true "New status with optional payment fields"
// @Success 200 {object} utils.APIResponse "Status updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/{id}/status [patch]
func (h *BillHandler) SetBillStatus(c *gin.Context) {
	billID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SetBillStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid status payload")
		utils.BadRequestResponse(c, "Status must be one of the known bill states", err)
		return
	}

	if err := h.ledgerService.SetBillStatus(billID, req.Status, req.PaymentAmount, req.PaymentDate); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Bill not found")
			return
		}
		h.logger.WithError(err).WithField("bill_id", billID).Error("Failed to set bill status")
		utils.InternalServerErrorResponse(c, "Failed to set bill status", err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"bill_id": billID,
		"status":  req.Status,
	}).Info("Bill status updated")

	utils.SuccessResponse(c, "Bill status updated", nil)
}

// DeleteBill removes a bill
// @Summary Delete bill
// @Description Delete a bill; the tenant payment status rollup is recomputed afterwards
// @Tags bills
// @Accept json
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {object} utils.APIResponse "Bill deleted"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	billID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteBill(billID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Bill not found")
			return
		}
		h.logger.WithError(err).WithField("bill_id", billID).Error("Failed to delete bill")
		utils.InternalServerErrorResponse(c, "Failed to delete bill", err)
		return
	}

	h.logger.WithField("bill_id", billID).Info("Bill deleted")
	utils.SuccessResponse(c, "Bill deleted", nil)
}

// GetBillsByTenant lists a tenant's bills
// @Summary List bills by tenant
// @Description List all bills for a tenant, newest first
// @Tags bills
// @Accept json
// @Produce json
// @Param tenant_id path int true "Tenant ID"
// @Success 200 {object} utils.APIResponse{data=[]models.Bill} "Bills retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/tenant/{tenant_id} [get]
func (h *BillHandler) GetBillsByTenant(c *gin.Context) {
	tenantID, ok := parseIDParam(c, "tenant_id")
	if !ok {
		return
	}

	bills, err := h.ledgerService.GetBillsByTenant(tenantID)
	if err != nil {
		h.logger.WithError(err).WithField("tenant_id", tenantID).Error("Failed to list bills")
		utils.InternalServerErrorResponse(c, "Failed to list bills", err)
		return
	}

	utils.SuccessResponse(c, "Bills retrieved successfully", bills)
}

// GetBillsByLandlord lists a landlord's bills with pagination
// @Summary List bills by landlord
// @Description List bills for a landlord with pagination, newest first
// @Tags bills
// @Accept json
// @Produce json
// @Param landlord_id path int true "Landlord ID"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} utils.PaginatedResponse{data=[]models.Bill} "Bills retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/landlord/{landlord_id} [get]
func (h *BillHandler) GetBillsByLandlord(c *gin.Context) {
	landlordID, ok := parseIDParam(c, "landlord_id")
	if !ok {
		return
	}

	page := 1
	perPage := 20
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if v, err := strconv.Atoi(pp); err == nil && v > 0 {
			perPage = v
		}
	}

	bills, total, err := h.ledgerService.GetBillsByLandlord(landlordID, page, perPage)
	if err != nil {
		h.logger.WithError(err).WithField("landlord_id", landlordID).Error("Failed to list bills")
		utils.InternalServerErrorResponse(c, "Failed to list bills", err)
		return
	}

	utils.PaginatedSuccessResponse(c, "Bills retrieved successfully", bills, page, perPage, total)
}

// GetOutstandingBalance returns what a tenant still owes
// @Summary Get tenant outstanding balance
// @Description Sum of remaining balances over the tenant's Pending and Partially Paid bills
// @Tags bills
// @Accept json
// @Produce json
// @Param tenant_id path int true "Tenant ID"
// @Success 200 {object} utils.APIResponse{data=service.OutstandingBalanceResponse} "Outstanding balance"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/tenant/{tenant_id}/outstanding [get]
func (h *BillHandler) GetOutstandingBalance(c *gin.Context) {
	tenantID, ok := parseIDParam(c, "tenant_id")
	if !ok {
		return
	}

	balance, err := h.ledgerService.GetOutstandingBalance(tenantID)
	if err != nil {
		h.logger.WithError(err).WithField("tenant_id", tenantID).Error("Failed to compute outstanding balance")
		utils.InternalServerErrorResponse(c, "Failed to compute outstanding balance", err)
		return
	}

	utils.SuccessResponse(c, "Outstanding balance computed", balance)
}

// ExportBills exports a landlord's bills to Excel
// @Summary Export bills to Excel
// @Description Export a landlord's bills to an xlsx file, with optional period and status filters
// @Tags bills
// @Accept json
// @Produce octet-stream
// @Param landlord_id path int true "Landlord ID"
// @Param period query string false "Billing period filter, e.g. September 2025"
// @Param status query string false "Status filter"
// @Success 200 {file} file "The xlsx file"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/landlord/{landlord_id}/export [get]
func (h *BillHandler) ExportBills(c *gin.Context) {
	landlordID, ok := parseIDParam(c, "landlord_id")
	if !ok {
		return
	}

	var period, status *string
	if p := c.Query("period"); p != "" {
		period = &p
	}
	if st := c.Query("status"); st != "" {
		status = &st
	}

	content, filename, err := h.ledgerService.ExportBillsToExcel(landlordID, period, status)
	if err != nil {
		h.logger.WithError(err).WithField("landlord_id", landlordID).Error("Failed to export bills")
		utils.InternalServerErrorResponse(c, "Failed to export bills", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// parseIDParam parses a positive integer path parameter, answering 400 on failure
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || value == 0 {
		utils.BadRequestResponse(c, fmt.Sprintf("Invalid %s", name), err)
		return 0, false
	}
	return uint(value), true
}
