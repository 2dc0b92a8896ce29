package vendor_payment

import (
	"context"
	"fmt"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
	"procura/internal/core/numerator"
	"procura/internal/core/tx"
	"procura/internal/core/types"
	"procura/internal/domain"
	"procura/internal/domain/documents/purchase_order"
	"procura/pkg/logger"
)

const entityType = "vendor_payment"

const numberPrefix = "VP"

// OrderStore is the slice of the purchase order repository the payment flow
// needs. Satisfied by purchase_order.Repository.
type OrderStore interface {
	GetForUpdate(ctx context.Context, id id.ID) (*purchase_order.PurchaseOrder, error)
	SetPaymentStatus(ctx context.Context, id id.ID, status purchase_order.PaymentStatus) error
}

// Service provides business logic for vendor payments.
type Service struct {
	repo      Repository
	orders    OrderStore
	txManager tx.Manager
	numerator numerator.Generator
	audit     domain.AuditLogger
}

// ServiceConfig configures the vendor payment service.
// Audit is optional; nil disables change logging.
type ServiceConfig struct {
	Repo      Repository
	Orders    OrderStore
	TxManager tx.Manager
	Numerator numerator.Generator
	Audit     domain.AuditLogger
}

// NewService creates a new vendor payment service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		repo:      cfg.Repo,
		orders:    cfg.Orders,
		txManager: cfg.TxManager,
		numerator: cfg.Numerator,
		audit:     cfg.Audit,
	}
}

// Record registers a payment against a purchase order. In one transaction it
// locks the order row, checks the outstanding balance, persists the payment
// and re-derives the order's payment status from the cumulative paid amount.
func (s *Service) Record(ctx context.Context, vp *VendorPayment) error {
	if err := vp.Validate(ctx); err != nil {
		return err
	}

	var paymentStatus purchase_order.PaymentStatus

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		po, err := s.orders.GetForUpdate(ctx, vp.OrderID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("purchase_order", vp.OrderID.String())
			}
			return err
		}

		if po.PaymentStatus == purchase_order.PaymentPaid {
			return apperror.NewAlreadyPaid(po.ID.String())
		}

		paid, err := s.repo.TotalPaidForOrder(ctx, vp.OrderID)
		if err != nil {
			return err
		}

		balance := po.Balance(paid)
		if vp.Amount.GreaterThan(balance) {
			return apperror.NewAmountExceedsBalance(vp.Amount.String(), balance.String())
		}

		vp.OrderNumber = po.Number
		vp.VendorID = po.VendorID

		number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig(numberPrefix), nil, vp.Date)
		if err != nil {
			return fmt.Errorf("generate payment number: %w", err)
		}
		vp.Number = number

		if err := s.repo.Create(ctx, vp); err != nil {
			return err
		}

		paymentStatus = purchase_order.DerivePaymentStatus(po.Total, paid.Add(vp.Amount))
		if paymentStatus != po.PaymentStatus {
			if err := s.orders.SetPaymentStatus(ctx, po.ID, paymentStatus); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, vp.ID, domain.AuditActionPayment, map[string]any{
		"number":        vp.Number,
		"order":         vp.OrderNumber,
		"amount":        vp.Amount.String(),
		"paymentStatus": string(paymentStatus),
	})

	return nil
}

// GetByID retrieves a payment.
func (s *Service) GetByID(ctx context.Context, paymentID id.ID) (*VendorPayment, error) {
	vp, err := s.repo.GetByID(ctx, paymentID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound(entityType, paymentID.String())
		}
		return nil, err
	}
	return vp, nil
}

// List retrieves payments with filtering.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*VendorPayment], error) {
	return s.repo.List(ctx, filter)
}

// ListByOrder retrieves all payments recorded against an order.
func (s *Service) ListByOrder(ctx context.Context, orderID id.ID) ([]*VendorPayment, error) {
	return s.repo.ListByOrder(ctx, orderID)
}

// TotalPaidForOrder returns the cumulative paid amount for an order.
func (s *Service) TotalPaidForOrder(ctx context.Context, orderID id.ID) (types.Money, error) {
	return s.repo.TotalPaidForOrder(ctx, orderID)
}

func (s *Service) logAudit(ctx context.Context, paymentID id.ID, action domain.AuditAction, changes map[string]any) {
	if s.audit == nil {
		return
	}
	if err := s.audit.LogChange(ctx, entityType, paymentID, action, changes); err != nil {
		logger.Warn(ctx, "audit log failed", "entity", entityType, "action", string(action), "error", err)
	}
}
