// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"procura/internal/domain/catalogs/item"
	"procura/internal/domain/catalogs/partner"
	"procura/internal/domain/catalogs/warehouse"
	"procura/internal/domain/documents/goods_receipt"
	"procura/internal/domain/documents/purchase_order"
	"procura/internal/domain/documents/vendor_payment"
	"procura/internal/domain/registers/stock"
	"procura/internal/domain/reports"
	"procura/internal/infrastructure/http/v1/handlers"
	"procura/internal/infrastructure/http/v1/middleware"
	"procura/internal/infrastructure/storage/postgres"
	"procura/pkg/logger"
)

// RouterConfig holds the services exposed by the API.
type RouterConfig struct {
	// Pool is the database connection (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// Catalog services
	Partners   *partner.Service
	Warehouses *warehouse.Service
	Items      *item.Service

	// Document services
	Orders   *purchase_order.Service
	Receipts *goods_receipt.Service
	Payments *vendor_payment.Service

	// Register services
	Stock *stock.Service

	// Reports
	Reports *reports.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.UserContext())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	api := router.Group("/api/v1")
	baseHandler := handlers.NewBaseHandler()

	// Catalogs
	catalogs := api.Group("/catalog")
	{
		RegisterCatalogRoutes(catalogs.Group("/partner"), handlers.NewPartnerHandler(baseHandler, cfg.Partners))
		RegisterCatalogRoutes(catalogs.Group("/warehouse"), handlers.NewWarehouseHandler(baseHandler, cfg.Warehouses))
		RegisterCatalogRoutes(catalogs.Group("/item"), handlers.NewItemHandler(baseHandler, cfg.Items))
	}

	// Documents
	docs := api.Group("/document")
	{
		handlers.NewPurchaseOrderHandler(baseHandler, cfg.Orders).
			RegisterRoutes(docs.Group("/purchase-order"))
		handlers.NewGoodsReceiptHandler(baseHandler, cfg.Receipts).
			RegisterRoutes(docs.Group("/goods-receipt"))
		handlers.NewVendorPaymentHandler(baseHandler, cfg.Payments).
			RegisterRoutes(docs.Group("/vendor-payment"))
	}

	// Registers
	registers := api.Group("/register")
	{
		handlers.NewStockHandler(baseHandler, cfg.Stock).
			RegisterRoutes(registers.Group("/stock"))
	}

	// Reports
	handlers.NewReportsHandler(baseHandler, cfg.Reports).
		RegisterRoutes(api.Group("/report"))

	return router
}
