package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rentledger-be-svc/internal/service"
	"rentledger-be-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	ledgerService service.LedgerService,
	batchService service.RentBatchService,
	tenantService service.TenantService,
	logger *logger.Logger,
) {
	// Initialize handlers
	billHandler := NewBillHandler(ledgerService, logger)
	rentBatchHandler := NewRentBatchHandler(batchService, logger)
	tenantHandler := NewTenantHandler(tenantService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Bill routes
		bills := v1.Group("/bills")
		{
			bills.POST("", billHandler.CreateBill)
			bills.POST("/generate-monthly", rentBatchHandler.GenerateMonthlyRentBills)
			bills.GET("/period-check", rentBatchHandler.CheckBillingPeriod)
			bills.POST("/:id/payments", billHandler.ApplyPayment)
			bills.PATCH("/:id/status", billHandler.SetBillStatus)
			bills.DELETE("/:id", billHandler.DeleteBill)
			bills.GET("/tenant/:tenant_id", billHandler.GetBillsByTenant)
			bills.GET("/tenant/:tenant_id/outstanding", billHandler.GetOutstandingBalance)
			bills.GET("/landlord/:landlord_id", billHandler.GetBillsByLandlord)
			bills.GET("/landlord/:landlord_id/export", billHandler.ExportBills)
		}

		// Tenant routes
		tenants := v1.Group("/tenants")
		{
			tenants.GET("/:id", tenantHandler.GetTenant)
			tenants.GET("/landlord/:landlord_id", tenantHandler.GetTenantsByLandlord)
		}
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Rent Ledger Backend Service",
	})
}
