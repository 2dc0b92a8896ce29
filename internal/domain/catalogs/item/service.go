package item

import (
	"context"
	"fmt"
	"time"

	"procura/internal/core/numerator"
	"procura/internal/core/tx"
	"procura/internal/domain"
)

// Service provides business logic for the InventoryItem catalog.
type Service struct {
	*domain.CatalogService[*InventoryItem]
	repo Repository
}

// NewService creates a new InventoryItem service.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*InventoryItem]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  gen,
		EntityName: "item",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

// prepareForCreate generates a code when none was supplied.
func (s *Service) prepareForCreate(ctx context.Context, it *InventoryItem) error {
	if it.Code == "" {
		code, err := s.Numerator().GetNextNumber(ctx, numerator.CodeConfig("ITM"), numerator.CodeOptions(), time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		it.Code = code
	}
	return nil
}
