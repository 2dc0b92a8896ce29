package handlers

import (
	"procura/internal/domain/catalogs/partner"
	"procura/internal/infrastructure/http/v1/dto"
)

// PartnerHTTPHandler handles vendor catalog requests.
type PartnerHTTPHandler = CatalogHandler[
	*partner.Partner,
	dto.CreatePartnerRequest,
	dto.UpdatePartnerRequest,
]

// NewPartnerHandler creates the vendor catalog handler.
func NewPartnerHandler(
	base *BaseHandler,
	service *partner.Service,
) *PartnerHTTPHandler {

	config := CatalogHandlerConfig[
		*partner.Partner,
		dto.CreatePartnerRequest,
		dto.UpdatePartnerRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "partner",

		MapCreateDTO: func(req dto.CreatePartnerRequest) *partner.Partner {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdatePartnerRequest, existing *partner.Partner) *partner.Partner {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *partner.Partner) any {
			return dto.FromPartner(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
