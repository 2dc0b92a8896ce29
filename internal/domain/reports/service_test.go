package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	balanceFilter StockBalanceFilter
	lowFilter     LowStockFilter
}

func (f *fakeReportRepo) GetStockBalance(ctx context.Context, filter StockBalanceFilter) (*StockBalanceReport, error) {
	f.balanceFilter = filter
	return &StockBalanceReport{AsOfDate: time.Now()}, nil
}

func (f *fakeReportRepo) GetLowStock(ctx context.Context, filter LowStockFilter) (*LowStockReport, error) {
	f.lowFilter = filter
	return &LowStockReport{AsOfDate: time.Now()}, nil
}

func TestGetStockBalance_LimitDefaults(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewService(repo)

	_, err := svc.GetStockBalance(context.Background(), StockBalanceFilter{})
	require.NoError(t, err)
	assert.Equal(t, 100, repo.balanceFilter.Limit)

	_, err = svc.GetStockBalance(context.Background(), StockBalanceFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 1000, repo.balanceFilter.Limit)
}

func TestGetLowStock_LimitDefaults(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewService(repo)

	_, err := svc.GetLowStock(context.Background(), LowStockFilter{Limit: -1})
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lowFilter.Limit)
}

func TestLowStockRow_Shortage(t *testing.T) {
	row := LowStockRow{
		Quantity:     decimal.RequireFromString("3"),
		ReorderLevel: decimal.RequireFromString("10"),
	}
	assert.True(t, row.Shortage().Equal(decimal.RequireFromString("7")))
}
