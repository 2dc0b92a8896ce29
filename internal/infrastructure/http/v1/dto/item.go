package dto

import (
	"github.com/shopspring/decimal"

	"procura/internal/domain/catalogs/item"
)

// --- Request DTOs ---

// CreateItemRequest is the request body for creating an inventory item.
type CreateItemRequest struct {
	Code           string          `json:"code"`
	Name           string          `json:"name" binding:"required"`
	SKU            *string         `json:"sku"`
	Unit           string          `json:"unit" binding:"required"`
	DefaultPrice   decimal.Decimal `json:"defaultPrice"`
	DefaultTaxRate decimal.Decimal `json:"defaultTaxRate"`
	ReorderLevel   decimal.Decimal `json:"reorderLevel"`
	IsActive       *bool           `json:"isActive"`
	Description    *string         `json:"description"`
	ParentID       *string         `json:"parentId"`
	IsFolder       bool            `json:"isFolder"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateItemRequest) ToEntity() *item.InventoryItem {
	it := item.NewInventoryItem(r.Code, r.Name, r.Unit)
	it.SKU = r.SKU
	it.DefaultPrice = r.DefaultPrice
	it.DefaultTaxRate = r.DefaultTaxRate
	it.ReorderLevel = r.ReorderLevel
	if r.IsActive != nil {
		it.IsActive = *r.IsActive
	}
	it.Description = r.Description
	it.ParentID = r.ParentID
	it.IsFolder = r.IsFolder
	return it
}

// UpdateItemRequest is the request body for updating an inventory item.
type UpdateItemRequest struct {
	Code           string          `json:"code"`
	Name           string          `json:"name" binding:"required"`
	SKU            *string         `json:"sku,omitempty"`
	Unit           string          `json:"unit" binding:"required"`
	DefaultPrice   decimal.Decimal `json:"defaultPrice"`
	DefaultTaxRate decimal.Decimal `json:"defaultTaxRate"`
	ReorderLevel   decimal.Decimal `json:"reorderLevel"`
	IsActive       bool            `json:"isActive"`
	Description    *string         `json:"description,omitempty"`
	ParentID       *string         `json:"parentId,omitempty"`
	IsFolder       bool            `json:"isFolder"`
	Version        int             `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateItemRequest) ApplyTo(it *item.InventoryItem) {
	it.Code = r.Code
	it.Name = r.Name
	it.SKU = r.SKU
	it.Unit = r.Unit
	it.DefaultPrice = r.DefaultPrice
	it.DefaultTaxRate = r.DefaultTaxRate
	it.ReorderLevel = r.ReorderLevel
	it.IsActive = r.IsActive
	it.Description = r.Description
	it.ParentID = r.ParentID
	it.IsFolder = r.IsFolder
	it.Version = r.Version
}

// --- Response DTOs ---

// ItemResponse is the response body for an inventory item.
type ItemResponse struct {
	CatalogResponse
	SKU            *string         `json:"sku,omitempty"`
	Unit           string          `json:"unit"`
	DefaultPrice   decimal.Decimal `json:"defaultPrice"`
	DefaultTaxRate decimal.Decimal `json:"defaultTaxRate"`
	ReorderLevel   decimal.Decimal `json:"reorderLevel"`
	IsActive       bool            `json:"isActive"`
	Description    *string         `json:"description,omitempty"`
}

// FromItem creates response DTO from domain entity.
func FromItem(it *item.InventoryItem) *ItemResponse {
	return &ItemResponse{
		CatalogResponse: FromCatalog(it.Catalog),
		SKU:             it.SKU,
		Unit:            it.Unit,
		DefaultPrice:    it.DefaultPrice,
		DefaultTaxRate:  it.DefaultTaxRate,
		ReorderLevel:    it.ReorderLevel,
		IsActive:        it.IsActive,
		Description:     it.Description,
	}
}
