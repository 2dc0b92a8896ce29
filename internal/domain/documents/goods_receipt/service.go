package goods_receipt

import (
	"context"
	"fmt"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
	"procura/internal/core/numerator"
	"procura/internal/core/tx"
	"procura/internal/core/types"
	"procura/internal/domain"
	"procura/internal/domain/catalogs/warehouse"
	"procura/internal/domain/documents/purchase_order"
	"procura/internal/domain/registers/stock"
	"procura/pkg/logger"
)

const entityType = "goods_receipt"

const numberPrefix = "GR"

// OrderStore is the slice of the purchase order repository the receiving
// flow needs. Satisfied by purchase_order.Repository.
type OrderStore interface {
	GetForUpdate(ctx context.Context, id id.ID) (*purchase_order.PurchaseOrder, error)
	AddReceivedQuantity(ctx context.Context, lineID id.ID, quantity types.Quantity) error
	SetStatus(ctx context.Context, id id.ID, status purchase_order.Status) error
}

// WarehouseStore resolves warehouses. Satisfied by warehouse.Repository.
type WarehouseStore interface {
	GetByID(ctx context.Context, id id.ID) (*warehouse.Warehouse, error)
}

// StockStore applies register movements. Satisfied by stock.Repository.
type StockStore interface {
	Apply(ctx context.Context, movements []stock.Movement) error
}

// Service provides business logic for goods receipts.
type Service struct {
	repo       Repository
	orders     OrderStore
	warehouses WarehouseStore
	stock      StockStore
	txManager  tx.Manager
	numerator  numerator.Generator
	audit      domain.AuditLogger
}

// ServiceConfig configures the goods receipt service.
// Audit is optional; nil disables change logging.
type ServiceConfig struct {
	Repo       Repository
	Orders     OrderStore
	Warehouses WarehouseStore
	Stock      StockStore
	TxManager  tx.Manager
	Numerator  numerator.Generator
	Audit      domain.AuditLogger
}

// NewService creates a new goods receipt service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		repo:       cfg.Repo,
		orders:     cfg.Orders,
		warehouses: cfg.Warehouses,
		stock:      cfg.Stock,
		txManager:  cfg.TxManager,
		numerator:  cfg.Numerator,
		audit:      cfg.Audit,
	}
}

// Receive records a delivery against a purchase order. In one transaction it
// locks the order row, validates each receipt line against the remaining
// quantity of its order line, copies the unit cost from the order, increments
// warehouse stock and re-derives the order's fulfillment status.
func (s *Service) Receive(ctx context.Context, gr *GoodsReceipt) error {
	if err := gr.Validate(ctx); err != nil {
		return err
	}

	wh, err := s.warehouses.GetByID(ctx, gr.WarehouseID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewNotFound("warehouse", gr.WarehouseID.String())
		}
		return err
	}
	if !wh.CanAcceptStock() {
		return apperror.NewValidation("warehouse cannot accept stock").
			WithDetail("warehouseId", gr.WarehouseID.String())
	}

	var orderStatus purchase_order.Status

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		po, err := s.orders.GetForUpdate(ctx, gr.OrderID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("purchase_order", gr.OrderID.String())
			}
			return err
		}

		if !po.CanReceive() {
			return apperror.NewOrderNotReceivable(string(po.Status))
		}
		gr.OrderNumber = po.Number

		movements := make([]stock.Movement, 0, len(gr.Lines))
		for _, line := range gr.Lines {
			ol := po.FindLine(line.OrderLineID)
			if ol == nil {
				return apperror.NewNotFound("order line", line.OrderLineID.String()).
					WithDetail("orderId", gr.OrderID.String())
			}

			remaining := ol.RemainingQuantity()
			if line.Quantity.GreaterThan(remaining) {
				return apperror.NewQuantityExceedsRemaining(
					ol.ID.String(), line.Quantity.String(), remaining.String())
			}

			line.ItemID = ol.ItemID
			line.ItemName = ol.ItemName
			line.UnitCost = ol.UnitPrice

			// Applied in memory so status derivation below sees the delivery.
			ol.ReceivedQuantity = ol.ReceivedQuantity.Add(line.Quantity)

			movements = append(movements, stock.Movement{
				ItemID:      line.ItemID,
				WarehouseID: gr.WarehouseID,
				Quantity:    line.Quantity,
				Value:       line.Value(),
			})
		}

		number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig(numberPrefix), nil, gr.Date)
		if err != nil {
			return fmt.Errorf("generate receipt number: %w", err)
		}
		gr.Number = number

		if err := s.repo.Create(ctx, gr); err != nil {
			return err
		}

		for _, line := range gr.Lines {
			if err := s.orders.AddReceivedQuantity(ctx, line.OrderLineID, line.Quantity); err != nil {
				return err
			}
		}

		if err := s.stock.Apply(ctx, movements); err != nil {
			return err
		}

		orderStatus = purchase_order.DeriveFulfillmentStatus(po.Status, po.Lines)
		if orderStatus != po.Status {
			if err := s.orders.SetStatus(ctx, po.ID, orderStatus); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, gr.ID, domain.AuditActionReceive, map[string]any{
		"number":      gr.Number,
		"order":       gr.OrderNumber,
		"orderStatus": string(orderStatus),
		"lines":       len(gr.Lines),
	})

	return nil
}

// GetByID retrieves a receipt with lines.
func (s *Service) GetByID(ctx context.Context, receiptID id.ID) (*GoodsReceipt, error) {
	gr, err := s.repo.GetByID(ctx, receiptID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound(entityType, receiptID.String())
		}
		return nil, err
	}
	return gr, nil
}

// List retrieves receipts with filtering.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*GoodsReceipt], error) {
	return s.repo.List(ctx, filter)
}

// ListByOrder retrieves all receipts recorded against an order.
func (s *Service) ListByOrder(ctx context.Context, orderID id.ID) ([]*GoodsReceipt, error) {
	return s.repo.ListByOrder(ctx, orderID)
}

func (s *Service) logAudit(ctx context.Context, receiptID id.ID, action domain.AuditAction, changes map[string]any) {
	if s.audit == nil {
		return
	}
	if err := s.audit.LogChange(ctx, entityType, receiptID, action, changes); err != nil {
		logger.Warn(ctx, "audit log failed", "entity", entityType, "action", string(action), "error", err)
	}
}
