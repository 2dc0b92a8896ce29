// Package partner provides the Partner catalog.
// Partners are the vendors purchase orders are placed with.
package partner

import (
	"context"
	"regexp"

	"procura/internal/core/apperror"
	"procura/internal/core/entity"
)

// Partner represents a vendor.
type Partner struct {
	entity.Catalog

	// ContactName is the primary contact person
	ContactName *string `db:"contact_name" json:"contactName,omitempty"`

	// Email for order correspondence
	Email *string `db:"email" json:"email,omitempty"`

	// Phone number
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Address is the billing/shipping address
	Address *string `db:"address" json:"address,omitempty"`

	// TaxNumber is the vendor's tax registration number
	TaxNumber *string `db:"tax_number" json:"taxNumber,omitempty"`

	// PaymentTermsDays is the agreed payment term in days
	PaymentTermsDays int `db:"payment_terms_days" json:"paymentTermsDays"`

	// IsActive indicates the vendor can be used on new orders
	IsActive bool `db:"is_active" json:"isActive"`
}

// NewPartner creates a new Partner with required fields.
func NewPartner(code, name string) *Partner {
	return &Partner{
		Catalog:  entity.NewCatalog(code, name),
		IsActive: true,
	}
}

// Validate implements entity.Validatable interface.
func (p *Partner) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	if p.Email != nil && *p.Email != "" && !isValidEmail(*p.Email) {
		return apperror.NewValidation("invalid email").
			WithDetail("field", "email").
			WithDetail("value", *p.Email)
	}

	if p.PaymentTermsDays < 0 {
		return apperror.NewValidation("payment terms must not be negative").
			WithDetail("field", "paymentTermsDays")
	}

	return nil
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
