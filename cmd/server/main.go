// Package main is the entry point for the Procura API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"procura/internal/domain/catalogs/item"
	"procura/internal/domain/catalogs/partner"
	"procura/internal/domain/catalogs/warehouse"
	"procura/internal/domain/documents/goods_receipt"
	"procura/internal/domain/documents/purchase_order"
	"procura/internal/domain/documents/vendor_payment"
	"procura/internal/domain/registers/stock"
	"procura/internal/domain/reports"
	v1 "procura/internal/infrastructure/http/v1"
	"procura/internal/infrastructure/numerator"
	"procura/internal/infrastructure/storage/postgres"
	"procura/internal/infrastructure/storage/postgres/catalog_repo"
	"procura/internal/infrastructure/storage/postgres/document_repo"
	"procura/internal/infrastructure/storage/postgres/register_repo"
	"procura/internal/infrastructure/storage/postgres/report_repo"
	"procura/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting procura server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Infrastructure services ---
	numeratorService := numerator.New(pool)

	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	// --- Repositories ---
	partnerRepo := catalog_repo.NewPartnerRepo(txManager)
	warehouseRepo := catalog_repo.NewWarehouseRepo(txManager)
	itemRepo := catalog_repo.NewItemRepo(txManager)
	orderRepo := document_repo.NewPurchaseOrderRepo(txManager)
	receiptRepo := document_repo.NewGoodsReceiptRepo(txManager)
	paymentRepo := document_repo.NewVendorPaymentRepo(txManager)
	stockRepo := register_repo.NewStockRepo(txManager)
	reportRepo := report_repo.NewReportRepo(txManager)

	// --- Services ---
	partnerService := partner.NewService(partnerRepo, txManager, numeratorService)
	warehouseService := warehouse.NewService(warehouseRepo, txManager, numeratorService)
	itemService := item.NewService(itemRepo, txManager, numeratorService)

	orderService := purchase_order.NewService(purchase_order.ServiceConfig{
		Repo:      orderRepo,
		Vendors:   partnerRepo,
		Items:     itemRepo,
		TxManager: txManager,
		Numerator: numeratorService,
		Audit:     auditService,
	})

	receiptService := goods_receipt.NewService(goods_receipt.ServiceConfig{
		Repo:       receiptRepo,
		Orders:     orderRepo,
		Warehouses: warehouseRepo,
		Stock:      stockRepo,
		TxManager:  txManager,
		Numerator:  numeratorService,
		Audit:      auditService,
	})

	paymentService := vendor_payment.NewService(vendor_payment.ServiceConfig{
		Repo:      paymentRepo,
		Orders:    orderRepo,
		TxManager: txManager,
		Numerator: numeratorService,
		Audit:     auditService,
	})

	stockService := stock.NewService(stockRepo)
	reportService := reports.NewService(reportRepo)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:       pool,
		Logger:     log,
		Partners:   partnerService,
		Warehouses: warehouseService,
		Items:      itemService,
		Orders:     orderService,
		Receipts:   receiptService,
		Payments:   paymentService,
		Stock:      stockService,
		Reports:    reportService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
