package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
	"procura/internal/domain"
	"procura/internal/domain/documents/goods_receipt"
	"procura/internal/infrastructure/http/v1/dto"
)

// GoodsReceiptHandler handles HTTP requests for goods receipts.
// Receipts are immutable once recorded, so there is no update or delete.
type GoodsReceiptHandler struct {
	*BaseHandler
	service *goods_receipt.Service
}

// NewGoodsReceiptHandler creates a new goods receipt handler.
func NewGoodsReceiptHandler(base *BaseHandler, service *goods_receipt.Service) *GoodsReceiptHandler {
	return &GoodsReceiptHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /document/goods-receipt - list with filtering.
func (h *GoodsReceiptHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if orderIDStr := c.Query("orderId"); orderIDStr != "" {
		orderID, err := id.Parse(orderIDStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid orderId format"))
			return
		}

		receipts, err := h.service.ListByOrder(ctx, orderID)
		if err != nil {
			h.Error(c, err)
			return
		}

		items := make([]any, len(receipts))
		for i, gr := range receipts {
			items[i] = dto.FromGoodsReceipt(gr)
		}
		c.JSON(http.StatusOK, dto.ListResponse{
			Items:      items,
			TotalCount: int64(len(items)),
			Limit:      len(items),
		})
		return
	}

	filter := domain.DefaultListFilter()
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "date DESC")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, gr := range result.Items {
		items[i] = dto.FromGoodsReceipt(gr)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /document/goods-receipt/:id
func (h *GoodsReceiptHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	gr, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromGoodsReceipt(gr))
}

// Create handles POST /document/goods-receipt - receive goods against an
// order, updating stock and order status atomically.
func (h *GoodsReceiptHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateGoodsReceiptRequest
	if !h.BindJSON(c, &req) {
		return
	}

	gr, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Receive(ctx, gr); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromGoodsReceipt(gr))
}

// RegisterRoutes registers goods receipt routes.
func (h *GoodsReceiptHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
}
