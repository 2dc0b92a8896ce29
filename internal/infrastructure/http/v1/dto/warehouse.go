package dto

import (
	"procura/internal/domain/catalogs/warehouse"
)

// --- Request DTOs ---

// CreateWarehouseRequest is the request body for creating a warehouse.
type CreateWarehouseRequest struct {
	Code        string                  `json:"code"`
	Name        string                  `json:"name" binding:"required"`
	Type        warehouse.WarehouseType `json:"type" binding:"required"`
	Address     *string                 `json:"address"`
	IsActive    *bool                   `json:"isActive"`
	IsDefault   bool                    `json:"isDefault"`
	Description *string                 `json:"description"`
	ParentID    *string                 `json:"parentId"`
	IsFolder    bool                    `json:"isFolder"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateWarehouseRequest) ToEntity() *warehouse.Warehouse {
	wh := warehouse.NewWarehouse(r.Code, r.Name, r.Type)
	wh.Address = r.Address
	if r.IsActive != nil {
		wh.IsActive = *r.IsActive
	}
	wh.IsDefault = r.IsDefault
	wh.Description = r.Description
	wh.ParentID = r.ParentID
	wh.IsFolder = r.IsFolder
	return wh
}

// UpdateWarehouseRequest is the request body for updating a warehouse.
type UpdateWarehouseRequest struct {
	Code        string                  `json:"code"`
	Name        string                  `json:"name" binding:"required"`
	Type        warehouse.WarehouseType `json:"type" binding:"required"`
	Address     *string                 `json:"address,omitempty"`
	IsActive    bool                    `json:"isActive"`
	IsDefault   bool                    `json:"isDefault"`
	Description *string                 `json:"description,omitempty"`
	ParentID    *string                 `json:"parentId,omitempty"`
	IsFolder    bool                    `json:"isFolder"`
	Version     int                     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateWarehouseRequest) ApplyTo(wh *warehouse.Warehouse) {
	wh.Code = r.Code
	wh.Name = r.Name
	wh.Type = r.Type
	wh.Address = r.Address
	wh.IsActive = r.IsActive
	wh.IsDefault = r.IsDefault
	wh.Description = r.Description
	wh.ParentID = r.ParentID
	wh.IsFolder = r.IsFolder
	wh.Version = r.Version
}

// --- Response DTOs ---

// WarehouseResponse is the response body for a warehouse.
type WarehouseResponse struct {
	CatalogResponse
	Type        warehouse.WarehouseType `json:"type"`
	Address     *string                 `json:"address,omitempty"`
	IsActive    bool                    `json:"isActive"`
	IsDefault   bool                    `json:"isDefault"`
	Description *string                 `json:"description,omitempty"`
}

// FromWarehouse creates response DTO from domain entity.
func FromWarehouse(wh *warehouse.Warehouse) *WarehouseResponse {
	return &WarehouseResponse{
		CatalogResponse: FromCatalog(wh.Catalog),
		Type:            wh.Type,
		Address:         wh.Address,
		IsActive:        wh.IsActive,
		IsDefault:       wh.IsDefault,
		Description:     wh.Description,
	}
}
