// Package item provides the InventoryItem catalog.
// Items are the goods purchased, received and kept in warehouse stock.
package item

import (
	"context"

	"github.com/shopspring/decimal"

	"procura/internal/core/apperror"
	"procura/internal/core/entity"
	"procura/internal/core/types"
)

// InventoryItem represents a purchasable stock-keeping unit.
type InventoryItem struct {
	entity.Catalog

	// SKU is the stock keeping unit code printed on labels
	SKU *string `db:"sku" json:"sku,omitempty"`

	// Unit of measure ("pcs", "kg", "l")
	Unit string `db:"unit" json:"unit"`

	// DefaultPrice is the suggested purchase price for new order lines
	DefaultPrice types.Money `db:"default_price" json:"defaultPrice"`

	// DefaultTaxRate is the suggested tax rate percentage
	DefaultTaxRate decimal.Decimal `db:"default_tax_rate" json:"defaultTaxRate"`

	// ReorderLevel triggers low-stock reporting when availability drops below it
	ReorderLevel types.Quantity `db:"reorder_level" json:"reorderLevel"`

	// IsActive indicates the item can be used on new orders
	IsActive bool `db:"is_active" json:"isActive"`

	// Description
	Description *string `db:"description" json:"description,omitempty"`
}

// NewInventoryItem creates a new InventoryItem with required fields.
func NewInventoryItem(code, name, unit string) *InventoryItem {
	return &InventoryItem{
		Catalog:  entity.NewCatalog(code, name),
		Unit:     unit,
		IsActive: true,
	}
}

// Validate implements entity.Validatable interface.
func (i *InventoryItem) Validate(ctx context.Context) error {
	if err := i.Catalog.Validate(ctx); err != nil {
		return err
	}

	if i.Unit == "" {
		return apperror.NewValidation("unit is required").
			WithDetail("field", "unit")
	}

	if i.DefaultPrice.IsNegative() {
		return apperror.NewValidation("default price must not be negative").
			WithDetail("field", "defaultPrice")
	}

	if i.DefaultTaxRate.IsNegative() {
		return apperror.NewValidation("default tax rate must not be negative").
			WithDetail("field", "defaultTaxRate")
	}

	return nil
}
