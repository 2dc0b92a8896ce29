package purchase_order

import (
	"context"
	"fmt"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
	"procura/internal/core/numerator"
	"procura/internal/core/tx"
	"procura/internal/domain"
	"procura/internal/domain/catalogs/item"
	"procura/internal/domain/catalogs/partner"
	"procura/pkg/logger"
)

const entityType = "purchase_order"

// numberPrefix for generated document numbers: PO-YYYYMMDD-NNNN.
const numberPrefix = "PO"

// Service provides business logic for purchase orders.
type Service struct {
	repo      Repository
	vendors   partner.Repository
	items     item.Repository
	txManager tx.Manager
	numerator numerator.Generator
	audit     domain.AuditLogger
}

// ServiceConfig configures the purchase order service.
// Audit is optional; nil disables change logging.
type ServiceConfig struct {
	Repo      Repository
	Vendors   partner.Repository
	Items     item.Repository
	TxManager tx.Manager
	Numerator numerator.Generator
	Audit     domain.AuditLogger
}

// NewService creates a new purchase order service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		repo:      cfg.Repo,
		vendors:   cfg.Vendors,
		items:     cfg.Items,
		txManager: cfg.TxManager,
		numerator: cfg.Numerator,
		audit:     cfg.Audit,
	}
}

// Create saves a new draft order. The vendor must exist, every line item must
// exist, and line amounts must already be derived (AddLine does both the
// validation and the math).
func (s *Service) Create(ctx context.Context, po *PurchaseOrder) error {
	if err := po.Validate(ctx); err != nil {
		return err
	}

	vendor, err := s.vendors.GetByID(ctx, po.VendorID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewNotFound("vendor", po.VendorID.String())
		}
		return err
	}
	if vendor.DeletionMark || !vendor.IsActive {
		return apperror.NewValidation("vendor is not active").
			WithDetail("vendorId", po.VendorID.String())
	}
	po.VendorName = vendor.Name

	if err := s.checkLineItems(ctx, po); err != nil {
		return err
	}

	number, err := s.numerator.GetNextNumber(ctx, numerator.DefaultConfig(numberPrefix), nil, po.Date)
	if err != nil {
		return fmt.Errorf("generate order number: %w", err)
	}
	po.Number = number

	po.Status = StatusDraft
	po.PaymentStatus = PaymentUnpaid
	po.Recalculate()

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, po)
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, po.ID, domain.AuditActionCreate, map[string]any{
		"number": po.Number,
		"vendor": po.VendorName,
		"total":  po.Total.String(),
	})

	return nil
}

// GetByID retrieves an order with lines.
func (s *Service) GetByID(ctx context.Context, orderID id.ID) (*PurchaseOrder, error) {
	po, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound(entityType, orderID.String())
		}
		return nil, err
	}
	return po, nil
}

// List retrieves orders with filtering.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*PurchaseOrder], error) {
	return s.repo.List(ctx, filter)
}

// Update replaces the content of a draft order. Number, status and creation
// audit fields are preserved from the stored document.
func (s *Service) Update(ctx context.Context, po *PurchaseOrder) error {
	if err := po.Validate(ctx); err != nil {
		return err
	}

	if err := s.checkLineItems(ctx, po); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetForUpdate(ctx, po.ID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound(entityType, po.ID.String())
			}
			return err
		}

		if !existing.CanEdit() {
			return apperror.NewBusinessRule(apperror.CodeInvalidStateTransition,
				"only draft orders can be modified").
				WithDetail("status", string(existing.Status))
		}

		if !id.IsNil(po.VendorID) && po.VendorID != existing.VendorID {
			vendor, err := s.vendors.GetByID(ctx, po.VendorID)
			if err != nil {
				if apperror.IsNotFound(err) {
					return apperror.NewNotFound("vendor", po.VendorID.String())
				}
				return err
			}
			po.VendorName = vendor.Name
		} else {
			po.VendorID = existing.VendorID
			po.VendorName = existing.VendorName
		}

		po.Number = existing.Number
		po.Status = existing.Status
		po.PaymentStatus = existing.PaymentStatus
		po.CreatedAt = existing.CreatedAt
		po.CreatedBy = existing.CreatedBy
		po.SetVersion(existing.Version)

		for _, l := range po.Lines {
			l.OrderID = po.ID
		}
		po.Recalculate()
		po.Touch()

		return s.repo.Update(ctx, po)
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, po.ID, domain.AuditActionUpdate, map[string]any{
		"number": po.Number,
		"total":  po.Total.String(),
	})

	return nil
}

// Delete physically removes a draft order.
func (s *Service) Delete(ctx context.Context, orderID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		po, err := s.repo.GetForUpdate(ctx, orderID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound(entityType, orderID.String())
			}
			return err
		}

		if !po.CanEdit() {
			return apperror.NewBusinessRule(apperror.CodeInvalidStateTransition,
				"only draft orders can be deleted").
				WithDetail("status", string(po.Status))
		}

		return s.repo.Delete(ctx, orderID)
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, orderID, domain.AuditActionDelete, nil)
	return nil
}

// Send marks a draft order as sent to the vendor, freezing its content.
func (s *Service) Send(ctx context.Context, orderID id.ID) (*PurchaseOrder, error) {
	var po *PurchaseOrder
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		po, err = s.repo.GetForUpdate(ctx, orderID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound(entityType, orderID.String())
			}
			return err
		}

		if !po.Status.CanTransitionTo(StatusSent) {
			return apperror.NewInvalidStateTransition(string(po.Status), string(StatusSent))
		}

		if len(po.Lines) == 0 {
			return apperror.NewValidation("cannot send an order without lines").
				WithDetail("orderId", orderID.String())
		}

		po.Status = StatusSent
		po.Touch()
		return s.repo.UpdateHeader(ctx, po)
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, orderID, domain.AuditActionSend, map[string]any{
		"number": po.Number,
	})

	return po, nil
}

// checkLineItems verifies every line references an existing item and snapshots
// item names for display.
func (s *Service) checkLineItems(ctx context.Context, po *PurchaseOrder) error {
	for _, l := range po.Lines {
		it, err := s.items.GetByID(ctx, l.ItemID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound("item", l.ItemID.String()).
					WithDetail("lineNo", l.LineNo)
			}
			return err
		}
		if l.ItemName == "" {
			l.ItemName = it.Name
		}
	}
	return nil
}

func (s *Service) logAudit(ctx context.Context, orderID id.ID, action domain.AuditAction, changes map[string]any) {
	if s.audit == nil {
		return
	}
	if err := s.audit.LogChange(ctx, entityType, orderID, action, changes); err != nil {
		logger.Warn(ctx, "audit log failed", "entity", entityType, "action", string(action), "error", err)
	}
}
