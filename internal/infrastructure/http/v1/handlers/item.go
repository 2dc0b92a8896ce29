package handlers

import (
	"procura/internal/domain/catalogs/item"
	"procura/internal/infrastructure/http/v1/dto"
)

// ItemHTTPHandler handles inventory item catalog requests.
type ItemHTTPHandler = CatalogHandler[
	*item.InventoryItem,
	dto.CreateItemRequest,
	dto.UpdateItemRequest,
]

// NewItemHandler creates the inventory item catalog handler.
func NewItemHandler(
	base *BaseHandler,
	service *item.Service,
) *ItemHTTPHandler {

	config := CatalogHandlerConfig[
		*item.InventoryItem,
		dto.CreateItemRequest,
		dto.UpdateItemRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "item",

		MapCreateDTO: func(req dto.CreateItemRequest) *item.InventoryItem {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateItemRequest, existing *item.InventoryItem) *item.InventoryItem {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *item.InventoryItem) any {
			return dto.FromItem(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
