package dto

import (
	"procura/internal/domain/catalogs/partner"
)

// --- Request DTOs ---

// CreatePartnerRequest is the request body for creating a vendor.
type CreatePartnerRequest struct {
	Code             string  `json:"code"`
	Name             string  `json:"name" binding:"required"`
	ContactName      *string `json:"contactName"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	Address          *string `json:"address"`
	TaxNumber        *string `json:"taxNumber"`
	PaymentTermsDays int     `json:"paymentTermsDays"`
	IsActive         *bool   `json:"isActive"`
	ParentID         *string `json:"parentId"`
	IsFolder         bool    `json:"isFolder"`
}

// ToEntity converts DTO to domain entity.
func (r *CreatePartnerRequest) ToEntity() *partner.Partner {
	p := partner.NewPartner(r.Code, r.Name)
	p.ContactName = r.ContactName
	p.Email = r.Email
	p.Phone = r.Phone
	p.Address = r.Address
	p.TaxNumber = r.TaxNumber
	p.PaymentTermsDays = r.PaymentTermsDays
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	p.ParentID = r.ParentID
	p.IsFolder = r.IsFolder
	return p
}

// UpdatePartnerRequest is the request body for updating a vendor.
type UpdatePartnerRequest struct {
	Code             string  `json:"code"`
	Name             string  `json:"name" binding:"required"`
	ContactName      *string `json:"contactName,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Address          *string `json:"address,omitempty"`
	TaxNumber        *string `json:"taxNumber,omitempty"`
	PaymentTermsDays int     `json:"paymentTermsDays"`
	IsActive         bool    `json:"isActive"`
	ParentID         *string `json:"parentId,omitempty"`
	IsFolder         bool    `json:"isFolder"`
	Version          int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdatePartnerRequest) ApplyTo(p *partner.Partner) {
	p.Code = r.Code
	p.Name = r.Name
	p.ContactName = r.ContactName
	p.Email = r.Email
	p.Phone = r.Phone
	p.Address = r.Address
	p.TaxNumber = r.TaxNumber
	p.PaymentTermsDays = r.PaymentTermsDays
	p.IsActive = r.IsActive
	p.ParentID = r.ParentID
	p.IsFolder = r.IsFolder
	p.Version = r.Version
}

// --- Response DTOs ---

// PartnerResponse is the response body for a vendor.
type PartnerResponse struct {
	CatalogResponse
	ContactName      *string `json:"contactName,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Address          *string `json:"address,omitempty"`
	TaxNumber        *string `json:"taxNumber,omitempty"`
	PaymentTermsDays int     `json:"paymentTermsDays"`
	IsActive         bool    `json:"isActive"`
}

// FromPartner creates response DTO from domain entity.
func FromPartner(p *partner.Partner) *PartnerResponse {
	return &PartnerResponse{
		CatalogResponse:  FromCatalog(p.Catalog),
		ContactName:      p.ContactName,
		Email:            p.Email,
		Phone:            p.Phone,
		Address:          p.Address,
		TaxNumber:        p.TaxNumber,
		PaymentTermsDays: p.PaymentTermsDays,
		IsActive:         p.IsActive,
	}
}
