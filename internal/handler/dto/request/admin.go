package request

import (
	"time"

	"github.com/google/uuid"
)

// GroupPriceCell mirrors one edited cell of the admin price grid. The
// value travels as a string: a blank string means "clear this
// override", anything else must parse as a decimal price.
type GroupPriceCell struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	GroupID   uuid.UUID `json:"group_id" binding:"required"`
	Value     string    `json:"value"`
}

type BulkGroupPriceRequest struct {
	Items []GroupPriceCell `json:"items" binding:"required,dive"`
}

type CreateUniqueOfferRequest struct {
	CustomerID uuid.UUID  `json:"customer_id" binding:"required"`
	ProductID  uuid.UUID  `json:"product_id" binding:"required"`
	PriceCents int64      `json:"price_cents" binding:"min=0"`
	ValidFrom  *time.Time `json:"valid_from"`
	ValidTo    *time.Time `json:"valid_to"`
	Unlimited  bool       `json:"unlimited"`
}

type CreateFlashSaleRequest struct {
	ProductID  uuid.UUID `json:"product_id" binding:"required"`
	PriceCents int64     `json:"price_cents" binding:"min=0"`
	StartsAt   time.Time `json:"starts_at" binding:"required"`
	EndsAt     time.Time `json:"ends_at" binding:"required"`
}
