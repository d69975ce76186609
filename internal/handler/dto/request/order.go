package request

type PlaceOrderRequest struct {
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	DeliveryCity    string `json:"delivery_city" binding:"required"`
	DeliveryZip     string `json:"delivery_zip" binding:"required"`
	DeliveryNote    string `json:"delivery_note"`
}

type OrderStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Note   *string `json:"note"`
}
