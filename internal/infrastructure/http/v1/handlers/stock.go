package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
	"procura/internal/domain/registers/stock"
	"procura/internal/infrastructure/http/v1/dto"
)

// StockHandler provides read access to the warehouse stock register.
type StockHandler struct {
	*BaseHandler
	service *stock.Service
}

// NewStockHandler creates a new stock register handler.
func NewStockHandler(base *BaseHandler, service *stock.Service) *StockHandler {
	return &StockHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /register/stock - register rows filtered by warehouse or item.
// Exactly one of warehouseId and itemId is required.
func (h *StockHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	warehouseIDStr := c.Query("warehouseId")
	itemIDStr := c.Query("itemId")

	switch {
	case warehouseIDStr != "":
		warehouseID, err := id.Parse(warehouseIDStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid warehouseId format"))
			return
		}
		rows, err := h.service.ListByWarehouse(ctx, warehouseID)
		if err != nil {
			h.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": dto.FromStockList(rows)})

	case itemIDStr != "":
		itemID, err := id.Parse(itemIDStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid itemId format"))
			return
		}
		rows, err := h.service.ListByItem(ctx, itemID)
		if err != nil {
			h.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": dto.FromStockList(rows)})

	default:
		h.Error(c, apperror.NewValidation("warehouseId or itemId is required"))
	}
}

// Get handles GET /register/stock/:itemId/:warehouseId - one register row.
func (h *StockHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	itemID, err := id.Parse(c.Param("itemId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid itemId format"))
		return
	}

	warehouseID, err := id.Parse(c.Param("warehouseId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid warehouseId format"))
		return
	}

	row, err := h.service.Get(ctx, itemID, warehouseID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromStock(row))
}

// RegisterRoutes registers stock register routes.
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:itemId/:warehouseId", h.Get)
}
