package cart

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

type Item struct {
	ProductID uuid.UUID
	Quantity  int32
}

// Cart is the live item set owned by exactly one customer. Pricing is
// never stored here; every view recomputes it from current
// configuration (see pricing.Resolve).
type Cart struct {
	id         uuid.UUID
	customerID uuid.UUID
	items      []Item
}

func NewCart(customerID uuid.UUID) *Cart {
	return &Cart{
		id:         uuid.New(),
		customerID: customerID,
	}
}

func Reconstruct(id, customerID uuid.UUID, items []Item) *Cart {
	return &Cart{
		id:         id,
		customerID: customerID,
		items:      items,
	}
}

func (c *Cart) ID() uuid.UUID         { return c.id }
func (c *Cart) CustomerID() uuid.UUID { return c.customerID }
func (c *Cart) Items() []Item         { return c.items }
func (c *Cart) IsEmpty() bool         { return len(c.items) == 0 }

// AddItem inserts the product or increments its quantity.
func (c *Cart) AddItem(productID uuid.UUID, quantity int32) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity += quantity
			return nil
		}
	}
	c.items = append(c.items, Item{ProductID: productID, Quantity: quantity})
	return nil
}

// UpdateItem sets the quantity outright. Zero removes the line,
// matching what storefronts send when a stepper reaches zero.
func (c *Cart) UpdateItem(productID uuid.UUID, quantity int32) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		c.RemoveItem(productID)
		return nil
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	c.items = append(c.items, Item{ProductID: productID, Quantity: quantity})
	return nil
}

// RemoveItem is idempotent: removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Quantity(productID uuid.UUID) int32 {
	for _, it := range c.items {
		if it.ProductID == productID {
			return it.Quantity
		}
	}
	return 0
}
