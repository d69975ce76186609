package api

import (
	"errors"
	"net/http"

	"engros-ordering/internal/domain/customer"
	reqdto "engros-ordering/internal/handler/dto/request"
	"engros-ordering/internal/handler/httperr"
	"engros-ordering/internal/handler/middleware"
	"engros-ordering/internal/usecase/commands"
	"engros-ordering/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Place order
// @Description Freeze the cart into an immutable order
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PlaceOrderRequest true "Delivery information"
// @Success 201 {object} queries.OrderView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Customer not authenticated",
		})
		return
	}

	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.orderCommands.Place(c.Request.Context(), customerID, commands.PlaceOrderInput{
		DeliveryAddress: req.DeliveryAddress,
		DeliveryCity:    req.DeliveryCity,
		DeliveryZip:     req.DeliveryZip,
		DeliveryNote:    req.DeliveryNote,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCartEmpty):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cart is empty")
		case errors.Is(err, commands.ErrProductInactive):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cart contains a product that is no longer available")
		case errors.Is(err, commands.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cart contains an unknown product")
		case errors.Is(err, commands.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List own orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.OrderListItem
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Customer not authenticated",
		})
		return
	}

	items, err := h.orderQueries.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get order
// @Description Get one frozen order with its status history
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} queries.OrderView
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Customer not authenticated",
		})
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	// Customers only see their own orders; admins see everything.
	if role, _ := middleware.GetCustomerRole(c); role != customer.RoleAdmin && view.Customer.CustomerID != customerID {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}
