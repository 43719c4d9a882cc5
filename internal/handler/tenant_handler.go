package handler

import (
	"errors"

	"rentledger-be-svc/internal/service"
	"rentledger-be-svc/pkg/logger"
	"rentledger-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TenantHandler handles tenant directory HTTP requests
type TenantHandler struct {
	tenantService service.TenantService
	logger        *logger.Logger
}

// NewTenantHandler creates a new TenantHandler instance
func NewTenantHandler(tenantService service.TenantService, logger *logger.Logger) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
		logger:        logger,
	}
}

// GetTenantsByLandlord lists all tenants of a landlord with their payment status rollup
// @Summary List tenants by landlord
// @Description List every tenant of a landlord, including the denormalized payment status rollup
// @Tags tenants
// @Accept json
// @Produce json
// @Param landlord_id path int true "Landlord ID"
// @Success 200 {object} utils.APIResponse{data=[]models.Tenant} "Tenants retrieved"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tenants/landlord/{landlord_id} [get]
func (h *TenantHandler) GetTenantsByLandlord(c *gin.Context) {
	landlordID, ok := parseIDParam(c, "landlord_id")
	if !ok {
		return
	}

	tenants, err := h.tenantService.GetTenantsByLandlord(landlordID)
	if err != nil {
		h.logger.WithError(err).WithField("landlord_id", landlordID).Error("Failed to list tenants")
		utils.InternalServerErrorResponse(c, "Failed to list tenants", err)
		return
	}

	utils.SuccessResponse(c, "Tenants retrieved successfully", tenants)
}

// GetTenant retrieves a single tenant
// @Summary Get tenant
// @Description Get a tenant by ID
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path int true "Tenant ID"
// @Success 200 {object} utils.APIResponse{data=models.Tenant} "Tenant retrieved"
// @Failure 404 {object} utils.APIResponse "Tenant not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenantID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tenant, err := h.tenantService.GetTenantByID(tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundResponse(c, "Tenant not found")
			return
		}
		h.logger.WithError(err).WithField("tenant_id", tenantID).Error("Failed to get tenant")
		utils.InternalServerErrorResponse(c, "Failed to get tenant", err)
		return
	}

	utils.SuccessResponse(c, "Tenant retrieved successfully", tenant)
}
