package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
	"procura/internal/domain/reports"
)

// ReportsHandler exposes read-only procurement and inventory reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// StockBalance handles GET /report/stock-balance.
// Query params: warehouseId (repeatable), itemId (repeatable), excludeZero, limit, offset.
func (h *ReportsHandler) StockBalance(c *gin.Context) {
	ctx := c.Request.Context()

	warehouseIDs, err := parseIDQuery(c, "warehouseId")
	if err != nil {
		h.Error(c, err)
		return
	}
	itemIDs, err := parseIDQuery(c, "itemId")
	if err != nil {
		h.Error(c, err)
		return
	}

	filter := reports.StockBalanceFilter{
		WarehouseIDs: warehouseIDs,
		ItemIDs:      itemIDs,
		ExcludeZero:  c.Query("excludeZero") == "true",
		Limit:        h.ParseIntQuery(c, "limit", 100),
		Offset:       h.ParseIntQuery(c, "offset", 0),
	}

	report, err := h.service.GetStockBalance(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// LowStock handles GET /report/low-stock.
// Query params: warehouseId (repeatable), limit, offset.
func (h *ReportsHandler) LowStock(c *gin.Context) {
	ctx := c.Request.Context()

	warehouseIDs, err := parseIDQuery(c, "warehouseId")
	if err != nil {
		h.Error(c, err)
		return
	}

	filter := reports.LowStockFilter{
		WarehouseIDs: warehouseIDs,
		Limit:        h.ParseIntQuery(c, "limit", 100),
		Offset:       h.ParseIntQuery(c, "offset", 0),
	}

	report, err := h.service.GetLowStock(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// RegisterRoutes registers report routes.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stock-balance", h.StockBalance)
	rg.GET("/low-stock", h.LowStock)
}

// parseIDQuery parses a repeatable UUID query parameter.
func parseIDQuery(c *gin.Context, name string) ([]id.ID, error) {
	values := c.QueryArray(name)
	if len(values) == 0 {
		return nil, nil
	}

	ids := make([]id.ID, 0, len(values))
	for _, v := range values {
		parsed, err := id.Parse(v)
		if err != nil {
			return nil, apperror.NewValidation("invalid " + name + " format")
		}
		ids = append(ids, parsed)
	}
	return ids, nil
}
