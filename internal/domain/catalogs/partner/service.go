package partner

import (
	"context"
	"fmt"
	"time"

	"procura/internal/core/numerator"
	"procura/internal/core/tx"
	"procura/internal/domain"
)

// Service provides business logic for the Partner catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Partner]
	repo Repository
}

// NewService creates a new Partner service.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Partner]{
		Repo:       repo,
		TxManager:  txManager,
		Numerator:  gen,
		EntityName: "partner",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

// prepareForCreate generates a code when none was supplied.
func (s *Service) prepareForCreate(ctx context.Context, p *Partner) error {
	if p.Code == "" {
		code, err := s.Numerator().GetNextNumber(ctx, numerator.CodeConfig("VEN"), numerator.CodeOptions(), time.Now())
		if err != nil {
			return fmt.Errorf("generate code: %w", err)
		}
		p.Code = code
	}
	return nil
}
