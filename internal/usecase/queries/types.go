package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ProductView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Unit               string    `json:"unit"`
	Category           string    `json:"category"`
	PriceCents         int64     `json:"price_cents"`
	OriginalPriceCents int64     `json:"original_price_cents"`
	DiscountType       string    `json:"discount_type"`
	DiscountLabel      string    `json:"discount_label,omitempty"`
	DiscountPercent    int       `json:"discount_percent"`
	Strikethrough      bool      `json:"strikethrough"`
}

type CartItemView struct {
	ProductID              uuid.UUID `json:"product_id"`
	ProductName            string    `json:"product_name"`
	Unit                   string    `json:"unit"`
	Quantity               int32     `json:"quantity"`
	PriceCents             int64     `json:"price_cents"`
	OriginalPriceCents     int64     `json:"original_price_cents"`
	DiscountType           string    `json:"discount_type"`
	DiscountLabel          string    `json:"discount_label,omitempty"`
	DiscountPercent        int       `json:"discount_percent"`
	Strikethrough          bool      `json:"strikethrough"`
	ItemTotalCents         int64     `json:"item_total_cents"`
	ItemOriginalTotalCents int64     `json:"item_original_total_cents"`
	ItemSavingsCents       int64     `json:"item_savings_cents"`
}

type CartView struct {
	Items                   []CartItemView `json:"items"`
	TotalItems              int32          `json:"total_items"`
	TotalPriceCents         int64          `json:"total_price_cents"`
	TotalOriginalPriceCents int64          `json:"total_original_price_cents"`
	TotalSavingsCents       int64          `json:"total_savings_cents"`
}

type OrderItemView struct {
	ProductID          uuid.UUID `json:"product_id"`
	ProductName        string    `json:"product_name"`
	Unit               string    `json:"unit"`
	Quantity           int32     `json:"quantity"`
	PriceCents         int64     `json:"price_cents"`
	OriginalPriceCents int64     `json:"original_price_cents"`
	DiscountType       string    `json:"discount_type"`
	DiscountLabel      string    `json:"discount_label,omitempty"`
	DiscountPercent    int       `json:"discount_percent"`
	TotalCents         int64     `json:"total_cents"`
	SavingsCents       int64     `json:"savings_cents"`
}

type OrderCustomerView struct {
	CustomerID      uuid.UUID `json:"customer_id"`
	CompanyName     string    `json:"company_name"`
	ContactName     string    `json:"contact_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	GroupName       string    `json:"group_name"`
	GroupPercentOff float64   `json:"group_percent_off"`
}

type OrderStatusView struct {
	Status string    `json:"status"`
	Note   *string   `json:"note,omitempty"`
	At     time.Time `json:"at"`
}

type OrderView struct {
	ID                 uuid.UUID         `json:"id"`
	OrderNumber        int64             `json:"order_number"`
	Status             string            `json:"status"`
	Customer           OrderCustomerView `json:"customer"`
	DeliveryAddress    string            `json:"delivery_address"`
	DeliveryCity       string            `json:"delivery_city"`
	DeliveryZip        string            `json:"delivery_zip"`
	DeliveryNote       string            `json:"delivery_note,omitempty"`
	Items              []OrderItemView   `json:"items"`
	History            []OrderStatusView `json:"history"`
	TotalItems         int32             `json:"total_items"`
	TotalCents         int64             `json:"total_cents"`
	OriginalTotalCents int64             `json:"original_total_cents"`
	SavingsCents       int64             `json:"savings_cents"`
	PlacedAt           time.Time         `json:"placed_at"`
}

type OrderListItem struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber int64     `json:"order_number"`
	Status      string    `json:"status"`
	TotalItems  int32     `json:"total_items"`
	TotalCents  int64     `json:"total_cents"`
	PlacedAt    time.Time `json:"placed_at"`
}

type CustomerView struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	CompanyName     string    `json:"company_name"`
	ContactName     string    `json:"contact_name"`
	Phone           string    `json:"phone"`
	Role            string    `json:"role"`
	GroupName       string    `json:"group_name"`
	GroupColor      string    `json:"group_color"`
	GroupPercentOff float64   `json:"group_percent_off"`
}

type GroupPriceView struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	GroupID     uuid.UUID `json:"group_id"`
	GroupName   string    `json:"group_name"`
	PriceCents  int64     `json:"price_cents"`
}
