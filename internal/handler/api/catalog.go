package api

import (
	"net/http"

	"engros-ordering/internal/handler/httperr"
	"engros-ordering/internal/handler/middleware"
	"engros-ordering/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	productQueries queries.ProductQueries
}

func NewCatalogHandler(productQueries queries.ProductQueries) *CatalogHandler {
	return &CatalogHandler{
		productQueries: productQueries,
	}
}

// @Summary List products
// @Description List the active catalog with prices resolved for the caller
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.ProductView
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var customerID *uuid.UUID
	if id, ok := middleware.GetCustomerID(c); ok {
		customerID = &id
	}

	views, err := h.productQueries.List(c.Request.Context(), customerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, views)
}
