package reports

import (
	"context"
	"fmt"
)

// Service provides report generation operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetStockBalance generates the stock balance report.
func (s *Service) GetStockBalance(ctx context.Context, filter StockBalanceFilter) (*StockBalanceReport, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}

	report, err := s.repo.GetStockBalance(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get stock balance report: %w", err)
	}

	return report, nil
}

// GetLowStock generates the low stock report: active items whose summed
// availability dropped below their reorder level.
func (s *Service) GetLowStock(ctx context.Context, filter LowStockFilter) (*LowStockReport, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}

	report, err := s.repo.GetLowStock(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get low stock report: %w", err)
	}

	return report, nil
}
