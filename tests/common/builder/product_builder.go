//go:build unit || e2e

package builder

import (
	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID             uuid.UUID
	Name           string
	Unit           string
	Category       string
	BasePriceCents int64
	Active         bool
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:             uuid.New(),
		Name:           "Økologiske æbler",
		Unit:           "kasse",
		Category:       "Frugt & Grønt",
		BasePriceCents: 10000,
		Active:         true,
	}
}

func (b *ProductBuilder) WithID(id uuid.UUID) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithBasePrice(cents int64) *ProductBuilder {
	b.BasePriceCents = cents
	return b
}

func (b *ProductBuilder) AsInactive() *ProductBuilder {
	b.Active = false
	return b
}

func (b *ProductBuilder) BuildSpec() pricing.ProductSpec {
	return pricing.ProductSpec{
		ID:             b.ID,
		Name:           b.Name,
		BasePriceCents: b.BasePriceCents,
		Active:         b.Active,
	}
}

// BuildReadModel renders the product at base price, no discounts.
func (b *ProductBuilder) BuildReadModel() queries.ProductView {
	return queries.ProductView{
		ID:                 b.ID,
		Name:               b.Name,
		Unit:               b.Unit,
		Category:           b.Category,
		PriceCents:         b.BasePriceCents,
		OriginalPriceCents: b.BasePriceCents,
		DiscountType:       "none",
	}
}
