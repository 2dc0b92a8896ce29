package catalog_repo

import (
	"procura/internal/domain/catalogs/item"
	"procura/internal/infrastructure/storage/postgres"
)

// Compile-time check that ItemRepo implements item.Repository.
var _ item.Repository = (*ItemRepo)(nil)

// ItemRepo is the PostgreSQL repository for the InventoryItem catalog.
type ItemRepo struct {
	*BaseCatalogRepo[*item.InventoryItem]
}

// NewItemRepo creates a new InventoryItem repository.
func NewItemRepo(txm *postgres.TxManager) *ItemRepo {
	return &ItemRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"cat_items",
			postgres.ExtractDBColumns[item.InventoryItem](),
			func() *item.InventoryItem { return &item.InventoryItem{} },
		),
	}
}
