package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
	"procura/internal/domain"
	"procura/internal/domain/documents/vendor_payment"
	"procura/internal/infrastructure/http/v1/dto"
)

// VendorPaymentHandler handles HTTP requests for vendor payments.
// Payments are immutable once recorded, so there is no update or delete.
type VendorPaymentHandler struct {
	*BaseHandler
	service *vendor_payment.Service
}

// NewVendorPaymentHandler creates a new vendor payment handler.
func NewVendorPaymentHandler(base *BaseHandler, service *vendor_payment.Service) *VendorPaymentHandler {
	return &VendorPaymentHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /document/vendor-payment - list with filtering.
func (h *VendorPaymentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if orderIDStr := c.Query("orderId"); orderIDStr != "" {
		orderID, err := id.Parse(orderIDStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid orderId format"))
			return
		}

		payments, err := h.service.ListByOrder(ctx, orderID)
		if err != nil {
			h.Error(c, err)
			return
		}

		items := make([]any, len(payments))
		for i, vp := range payments {
			items[i] = dto.FromVendorPayment(vp)
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
	for i, vp := range result.Items {
		items[i] = dto.FromVendorPayment(vp)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /document/vendor-payment/:id
func (h *VendorPaymentHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	vp, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromVendorPayment(vp))
}

// Create handles POST /document/vendor-payment - record a payment against an
// order, updating the order's payment status atomically.
func (h *VendorPaymentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateVendorPaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	vp, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Record(ctx, vp); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromVendorPayment(vp))
}

// RegisterRoutes registers vendor payment routes.
func (h *VendorPaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
}
