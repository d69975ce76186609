package shared

import (
	"time"

	"engros-ordering/internal/domain/pricing"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types
// (CQRS separation).

type CustomerSnapshot struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	CompanyName     string
	ContactName     string
	Phone           string
	Role            string
	GroupID         uuid.UUID
	GroupName       string
	GroupPercentOff float64
	GroupActive     bool
	Active          bool
}

type CartSnapshot struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Items      []CartItemSnapshot
}

type CartItemSnapshot struct {
	ProductID uuid.UUID
	Quantity  int32
}

type ProductSnapshot struct {
	ID             uuid.UUID
	Name           string
	Unit           string
	BasePriceCents int64
	Active         bool
}

func (p ProductSnapshot) PricingSpec() pricing.ProductSpec {
	return pricing.ProductSpec{
		ID:             p.ID,
		Name:           p.Name,
		BasePriceCents: p.BasePriceCents,
		Active:         p.Active,
	}
}

type OrderStateSnapshot struct {
	ID       uuid.UUID
	Status   string
	PlacedAt time.Time
}
