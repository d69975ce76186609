//go:build unit || e2e

package builder

import (
	"time"

	"engros-ordering/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderViewBuilder struct {
	ID          uuid.UUID
	OrderNumber int64
	Status      string
	CustomerID  uuid.UUID
	PlacedAt    time.Time
}

func NewOrderViewBuilder() *OrderViewBuilder {
	return &OrderViewBuilder{
		ID:          uuid.New(),
		OrderNumber: 1001,
		Status:      "order_placed",
		CustomerID:  uuid.New(),
		PlacedAt:    time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
	}
}

func (b *OrderViewBuilder) WithCustomerID(id uuid.UUID) *OrderViewBuilder {
	b.CustomerID = id
	return b
}

func (b *OrderViewBuilder) WithStatus(status string) *OrderViewBuilder {
	b.Status = status
	return b
}

func (b *OrderViewBuilder) BuildReadModel() *queries.OrderView {
	productID := uuid.New()
	return &queries.OrderView{
		ID:          b.ID,
		OrderNumber: b.OrderNumber,
		Status:      b.Status,
		Customer: queries.OrderCustomerView{
			CustomerID:      b.CustomerID,
			CompanyName:     "Restaurant Havnen ApS",
			ContactName:     "Mette Jensen",
			Email:           "mette@havnen.dk",
			Phone:           "+45 22 33 44 55",
			GroupName:       "Guld",
			GroupPercentOff: 10,
		},
		DeliveryAddress: "Havnegade 12",
		DeliveryCity:    "København K",
		DeliveryZip:     "1058",
		Items: []queries.OrderItemView{
			{
				ProductID:          productID,
				ProductName:        "Økologiske æbler",
				Unit:               "kasse",
				Quantity:           3,
				PriceCents:         7000,
				OriginalPriceCents: 10000,
				DiscountType:       "uniqueOffer",
				DiscountLabel:      "Dit tilbud",
				DiscountPercent:    30,
				TotalCents:         21000,
				SavingsCents:       9000,
			},
		},
		History: []queries.OrderStatusView{
			{Status: "order_placed", At: b.PlacedAt},
		},
		TotalItems:         3,
		TotalCents:         21000,
		OriginalTotalCents: 30000,
		SavingsCents:       9000,
		PlacedAt:           b.PlacedAt,
	}
}

func (b *OrderViewBuilder) BuildListItem() queries.OrderListItem {
	return queries.OrderListItem{
		ID:          b.ID,
		OrderNumber: b.OrderNumber,
		Status:      b.Status,
		TotalItems:  3,
		TotalCents:  21000,
		PlacedAt:    b.PlacedAt,
	}
}
