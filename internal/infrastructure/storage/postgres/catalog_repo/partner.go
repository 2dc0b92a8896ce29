package catalog_repo

import (
	"procura/internal/domain/catalogs/partner"
	"procura/internal/infrastructure/storage/postgres"
)

// Compile-time check that PartnerRepo implements partner.Repository.
var _ partner.Repository = (*PartnerRepo)(nil)

// PartnerRepo is the PostgreSQL repository for the Partner catalog.
type PartnerRepo struct {
	*BaseCatalogRepo[*partner.Partner]
}

// NewPartnerRepo creates a new Partner repository.
func NewPartnerRepo(txm *postgres.TxManager) *PartnerRepo {
	return &PartnerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			"cat_partners",
			postgres.ExtractDBColumns[partner.Partner](),
			func() *partner.Partner { return &partner.Partner{} },
		),
	}
}
