package api

import (
	"errors"
	"net/http"

	reqdto "engros-ordering/internal/handler/dto/request"
	resdto "engros-ordering/internal/handler/dto/response"
	"engros-ordering/internal/handler/httperr"
	"engros-ordering/internal/handler/middleware"
	"engros-ordering/internal/usecase/commands"
	"engros-ordering/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands    commands.AuthCommands
	customerQueries queries.CustomerQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, customerQueries queries.CustomerQueries) *AuthHandler {
	return &AuthHandler{
		authCommands:    authCommands,
		customerQueries: customerQueries,
	}
}

// @Summary Customer login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	out, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: out.Token,
		Customer:    out.Customer,
	})
}

// @Summary Get current customer
// @Description Get the authenticated customer's profile and discount group
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.CustomerView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Customer not authenticated",
		})
		return
	}

	view, err := h.customerQueries.GetByID(c.Request.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
