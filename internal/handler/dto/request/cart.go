package request

import (
	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required,min=1"`
}

// Quantity 0 is meaningful on update (it removes the line), so the
// binding allows it and the usecase decides.
type UpdateCartItemRequest struct {
	Quantity int32 `json:"quantity" binding:"min=0"`
}
