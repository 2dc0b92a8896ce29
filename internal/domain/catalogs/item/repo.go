package item

import (
	"procura/internal/domain"
)

// Repository defines the interface for InventoryItem persistence.
type Repository interface {
	domain.CatalogRepository[*InventoryItem]
}
