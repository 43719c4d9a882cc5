package handler

import (
	"rentledger-be-svc/internal/service"
	"rentledger-be-svc/pkg/logger"
	"rentledger-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GenerateMonthlyRentRequest represents the request for bulk monthly rent generation
type GenerateMonthlyRentRequest struct {
	LandlordID uint `json:"landlord_id" binding:"required"`
}

// RentBatchHandler handles bulk rent generation HTTP requests
type RentBatchHandler struct {
	batchService service.RentBatchService
	logger       *logger.Logger
}

// NewRentBatchHandler creates a new RentBatchHandler instance
func NewRentBatchHandler(batchService service.RentBatchService, logger *logger.Logger) *RentBatchHandler {
	return &RentBatchHandler{
		batchService: batchService,
		logger:       logger,
	}
}

// GenerateMonthlyRentBills creates Monthly Rent bills for every eligible tenant of a landlord
// @Summary Generate monthly rent bills
// @Description Create one Monthly Rent bill per active tenant of the landlord for the current period. Per-tenant failures are reported in the result payload; the call itself succeeds. Call the period-check endpoint first to warn about duplicates.
// @Tags bills
// @Accept json
// @Produce json
// @Param request body GenerateMonthlyRentRequest true "Landlord to generate for"
// @Success 200 {object} utils.APIResponse{data=service.BatchGenerationResponse} "Batch generation result"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/generate-monthly [post]
func (h *RentBatchHandler) GenerateMonthlyRentBills(c *gin.Context) {
	var req GenerateMonthlyRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	response, err := h.batchService.GenerateMonthlyRentBills(req.LandlordID)
	if err != nil {
		h.logger.WithError(err).WithField("landlord_id", req.LandlordID).Error("Failed to generate monthly rent bills")
		utils.InternalServerErrorResponse(c, "Failed to generate monthly rent bills", err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"landlord_id":   req.LandlordID,
		"total_tenants": response.TotalTenants,
		"success_count": response.SuccessCount,
		"failed_count":  response.FailedCount,
	}).Info("Monthly rent bills generated")

	utils.SuccessResponse(c, "Monthly rent bills generated", response)
}

// CheckBillingPeriod reports whether Monthly Rent bills already exist for a period
// @Summary Check billing period
// @Description Advisory pre-check before batch generation: reports whether Monthly Rent bills already exist for the landlord and period. Does not block generation.
// @Tags bills
// @Accept json
// @Produce json
// @Param landlord_id query int true "Landlord ID"
// @Param period query string true "Billing period, e.g. September 2025"
// @Success 200 {object} utils.APIResponse{data=service.PeriodCheckResponse} "Period check result"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/period-check [get]
func (h *RentBatchHandler) CheckBillingPeriod(c *gin.Context) {
	var query struct {
		LandlordID uint   `form:"landlord_id" binding:"required"`
		Period     string `form:"period" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.WithError(err).Error("Invalid period check query")
		utils.BadRequestResponse(c, "landlord_id and period are required", err)
		return
	}

	result, err := h.batchService.CheckBillingPeriodExists(query.LandlordID, query.Period)
	if err != nil {
		h.logger.WithError(err).WithField("landlord_id", query.LandlordID).Error("Failed to check billing period")
		utils.InternalServerErrorResponse(c, "Failed to check billing period", err)
		return
	}

	utils.SuccessResponse(c, "Billing period checked", result)
}
