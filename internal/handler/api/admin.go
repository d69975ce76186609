package api

import (
	"errors"
	"net/http"

	reqdto "engros-ordering/internal/handler/dto/request"
	resdto "engros-ordering/internal/handler/dto/response"
	"engros-ordering/internal/handler/httperr"
	"engros-ordering/internal/usecase/commands"
	"engros-ordering/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	orderCommands      commands.OrderCommands
	groupPriceCommands commands.GroupPriceCommands
	uniqueOfferCmds    commands.UniqueOfferCommands
	flashSaleCommands  commands.FlashSaleCommands
	groupPriceQueries  queries.GroupPriceQueries
}

func NewAdminHandler(
	orderCommands commands.OrderCommands,
	groupPriceCommands commands.GroupPriceCommands,
	uniqueOfferCmds commands.UniqueOfferCommands,
	flashSaleCommands commands.FlashSaleCommands,
	groupPriceQueries queries.GroupPriceQueries,
) *AdminHandler {
	return &AdminHandler{
		orderCommands:      orderCommands,
		groupPriceCommands: groupPriceCommands,
		uniqueOfferCmds:    uniqueOfferCmds,
		flashSaleCommands:  flashSaleCommands,
		groupPriceQueries:  groupPriceQueries,
	}
}

// @Summary Transition order status
// @Description Apply a status change; the transition table decides legality
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body reqdto.OrderStatusRequest true "New status"
// @Success 200 {object} queries.OrderView
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/orders/{id}/status [post]
func (h *AdminHandler) TransitionOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	var req reqdto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.orderCommands.Transition(c.Request.Context(), orderID, req.Status, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
		case errors.Is(err, commands.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid status transition")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List group price overrides
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.GroupPriceView
// @Router /admin/group-prices [get]
func (h *AdminHandler) ListGroupPrices(c *gin.Context) {
	views, err := h.groupPriceQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Bulk edit group prices
// @Description Apply a batch of price grid edits; each cell gets its own result
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.BulkGroupPriceRequest true "Edited cells"
// @Success 200 {object} resdto.BulkGroupPriceResponse
// @Failure 400 {object} map[string]string
// @Router /admin/group-prices/bulk [post]
func (h *AdminHandler) BulkGroupPrices(c *gin.Context) {
	var req reqdto.BulkGroupPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	inputs := make([]commands.OverridePriceInput, len(req.Items))
	for i, item := range req.Items {
		inputs[i] = commands.OverridePriceInput{
			ProductID: item.ProductID,
			GroupID:   item.GroupID,
			Value:     item.Value,
		}
	}

	results, err := h.groupPriceCommands.BulkUpsert(c.Request.Context(), inputs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOverrideResults(results))
}

// @Summary Create unique offer
// @Description Grant a customer-specific price, retiring any prior active offer for the pair
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUniqueOfferRequest true "Offer"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/unique-offers [post]
func (h *AdminHandler) CreateUniqueOffer(c *gin.Context) {
	var req reqdto.CreateUniqueOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.uniqueOfferCmds.Create(c.Request.Context(), commands.CreateUniqueOfferInput{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		PriceCents: req.PriceCents,
		ValidFrom:  req.ValidFrom,
		ValidTo:    req.ValidTo,
		Unlimited:  req.Unlimited,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidOfferWindow), errors.Is(err, commands.ErrInvalidOfferPrice):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offer window or price")
		case errors.Is(err, commands.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found")
		case errors.Is(err, commands.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Create flash sale
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateFlashSaleRequest true "Flash sale"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/flash-sales [post]
func (h *AdminHandler) CreateFlashSale(c *gin.Context) {
	var req reqdto.CreateFlashSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.flashSaleCommands.Create(c.Request.Context(), commands.CreateFlashSaleInput{
		ProductID:  req.ProductID,
		PriceCents: req.PriceCents,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidOfferWindow), errors.Is(err, commands.ErrInvalidOfferPrice):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sale window or price")
		case errors.Is(err, commands.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary End flash sale
// @Description Deactivate a sale before its window closes
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Flash sale ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/flash-sales/{id} [delete]
func (h *AdminHandler) EndFlashSale(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid flash sale ID",
		})
		return
	}

	if err := h.flashSaleCommands.End(c.Request.Context(), saleID); err != nil {
		switch {
		case errors.Is(err, commands.ErrFlashSaleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Flash sale not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
