package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"procura/internal/domain/catalogs/warehouse"
	"procura/internal/infrastructure/storage/postgres"
)

// Compile-time check that WarehouseRepo implements warehouse.Repository.
var _ warehouse.Repository = (*WarehouseRepo)(nil)

// WarehouseRepo is the PostgreSQL repository for the Warehouse catalog.
type WarehouseRepo struct {
	*BaseCatalogRepo[*warehouse.Warehouse]
}

// NewWarehouseRepo creates a new Warehouse repository.
func NewWarehouseRepo(txm *postgres.TxManager) *WarehouseRepo {
	return &WarehouseRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"cat_warehouses",
			postgres.ExtractDBColumns[warehouse.Warehouse](),
			func() *warehouse.Warehouse { return &warehouse.Warehouse{} },
		),
	}
}

// ClearDefault clears the default flag on all warehouses.
func (r *WarehouseRepo) ClearDefault(ctx context.Context) error {
	q := r.Builder().
		Update("cat_warehouses").
		Set("is_default", false).
		Where(squirrel.Eq{"is_default": true})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build clear default: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("clear default warehouse: %w", err)
	}

	return nil
}
