//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"engros-ordering/internal/domain/pricing"
	"engros-ordering/internal/handler/api"
	resdto "engros-ordering/internal/handler/dto/response"
	"engros-ordering/internal/usecase/commands"
	"engros-ordering/internal/usecase/queries"
	"engros-ordering/tests/common/builder"
	"engros-ordering/tests/common/httptest"
	commandsmock "engros-ordering/tests/mock/commands"
	queriesmock "engros-ordering/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockOrders     *commandsmock.MockOrderCommands
	mockGroupPrice *commandsmock.MockGroupPriceCommands
	mockOffers     *commandsmock.MockUniqueOfferCommands
	mockFlashSales *commandsmock.MockFlashSaleCommands
	mockQueries    *queriesmock.MockGroupPriceQueries
	handler        *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrders = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockGroupPrice = commandsmock.NewMockGroupPriceCommands(s.mockCtrl)
	s.mockOffers = commandsmock.NewMockUniqueOfferCommands(s.mockCtrl)
	s.mockFlashSales = commandsmock.NewMockFlashSaleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGroupPriceQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockOrders, s.mockGroupPrice, s.mockOffers, s.mockFlashSales, s.mockQueries)

	s.router.POST("/admin/orders/:id/status", s.handler.TransitionOrder)
	s.router.GET("/admin/group-prices", s.handler.ListGroupPrices)
	s.router.POST("/admin/group-prices/bulk", s.handler.BulkGroupPrices)
	s.router.POST("/admin/unique-offers", s.handler.CreateUniqueOffer)
	s.router.POST("/admin/flash-sales", s.handler.CreateFlashSale)
	s.router.DELETE("/admin/flash-sales/:id", s.handler.EndFlashSale)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestTransitionOrder() {
	orderID := uuid.New()
	url := "/admin/orders/" + orderID.String() + "/status"

	s.Run("success: applies the transition", func() {
		view := builder.NewOrderViewBuilder().WithStatus("order_confirmed").BuildReadModel()
		note := "confirmed by warehouse"
		s.mockOrders.EXPECT().
			Transition(gomock.Any(), orderID, "order_confirmed", &note).
			Return(view, nil).
			Times(1)

		body := map[string]any{"status": "order_confirmed", "note": note}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		var response queries.OrderView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("order_confirmed", response.Status)
	})

	s.Run("error: 422 for an illegal transition", func() {
		s.mockOrders.EXPECT().
			Transition(gomock.Any(), orderID, "delivered", gomock.Any()).
			Return(nil, commands.ErrInvalidTransition).
			Times(1)

		body := map[string]any{"status": "delivered"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid status transition")
	})

	s.Run("error: 404 for a missing order", func() {
		s.mockOrders.EXPECT().
			Transition(gomock.Any(), orderID, "order_confirmed", gomock.Any()).
			Return(nil, commands.ErrOrderNotFound).
			Times(1)

		body := map[string]any{"status": "order_confirmed"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *AdminHandlerTestSuite) TestListGroupPrices() {
	s.Run("success: returns the override grid", func() {
		views := []queries.GroupPriceView{
			{
				ProductID:   uuid.New(),
				ProductName: "Økologiske æbler",
				GroupID:     uuid.New(),
				GroupName:   "Guld",
				PriceCents:  8500,
			},
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/group-prices", nil, "token")

		var response []queries.GroupPriceView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(int64(8500), response[0].PriceCents)
	})
}

func (s *AdminHandlerTestSuite) TestBulkGroupPrices() {
	url := "/admin/group-prices/bulk"
	productID := uuid.New()
	groupID := uuid.New()

	s.Run("success: per-cell results, failures included", func() {
		badProduct := uuid.New()
		s.mockGroupPrice.EXPECT().
			BulkUpsert(gomock.Any(), []commands.OverridePriceInput{
				{ProductID: productID, GroupID: groupID, Value: "85.00"},
				{ProductID: badProduct, GroupID: groupID, Value: "10.00"},
			}).
			Return([]pricing.OverrideResult{
				{ProductID: productID, GroupID: groupID, OK: true},
				{ProductID: badProduct, GroupID: groupID, OK: false, Error: "unknown product or group"},
			}, nil).
			Times(1)

		body := map[string]any{"items": []map[string]any{
			{"product_id": productID.String(), "group_id": groupID.String(), "value": "85.00"},
			{"product_id": badProduct.String(), "group_id": groupID.String(), "value": "10.00"},
		}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		var response resdto.BulkGroupPriceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Results, 2)
		s.True(response.Results[0].OK)
		s.False(response.Results[1].OK)
		s.Equal("unknown product or group", response.Results[1].Error)
	})

	s.Run("error: 400 when items are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminHandlerTestSuite) TestCreateUniqueOffer() {
	url := "/admin/unique-offers"
	customerID := uuid.New()
	productID := uuid.New()

	s.Run("success: 201 with the new offer id", func() {
		offerID := uuid.New()
		s.mockOffers.EXPECT().
			Create(gomock.Any(), commands.CreateUniqueOfferInput{
				CustomerID: customerID,
				ProductID:  productID,
				PriceCents: 7000,
				Unlimited:  true,
			}).
			Return(offerID, nil).
			Times(1)

		body := map[string]any{
			"customer_id": customerID.String(),
			"product_id":  productID.String(),
			"price_cents": 7000,
			"unlimited":   true,
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(offerID, response.ID)
	})

	s.Run("error: 400 for an inverted validity window", func() {
		s.mockOffers.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrInvalidOfferWindow).
			Times(1)

		body := map[string]any{
			"customer_id": customerID.String(),
			"product_id":  productID.String(),
			"price_cents": 7000,
			"valid_from":  "2025-03-20T00:00:00Z",
			"valid_to":    "2025-03-10T00:00:00Z",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid offer window or price")
	})

	s.Run("error: 404 for an unknown customer", func() {
		s.mockOffers.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrCustomerNotFound).
			Times(1)

		body := map[string]any{
			"customer_id": customerID.String(),
			"product_id":  productID.String(),
			"price_cents": 7000,
			"unlimited":   true,
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})
}

func (s *AdminHandlerTestSuite) TestCreateFlashSale() {
	url := "/admin/flash-sales"
	productID := uuid.New()
	startsAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	endsAt := startsAt.Add(6 * time.Hour)

	s.Run("success: 201 with the new sale id", func() {
		saleID := uuid.New()
		s.mockFlashSales.EXPECT().
			Create(gomock.Any(), commands.CreateFlashSaleInput{
				ProductID:  productID,
				PriceCents: 6000,
				StartsAt:   startsAt,
				EndsAt:     endsAt,
			}).
			Return(saleID, nil).
			Times(1)

		body := map[string]any{
			"product_id":  productID.String(),
			"price_cents": 6000,
			"starts_at":   startsAt.Format(time.RFC3339),
			"ends_at":     endsAt.Format(time.RFC3339),
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(saleID, response.ID)
	})

	s.Run("error: 400 for an inverted window", func() {
		s.mockFlashSales.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrInvalidOfferWindow).
			Times(1)

		body := map[string]any{
			"product_id":  productID.String(),
			"price_cents": 6000,
			"starts_at":   endsAt.Format(time.RFC3339),
			"ends_at":     startsAt.Format(time.RFC3339),
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid sale window or price")
	})
}

func (s *AdminHandlerTestSuite) TestEndFlashSale() {
	saleID := uuid.New()

	s.Run("success: 204 on deactivation", func() {
		s.mockFlashSales.EXPECT().End(gomock.Any(), saleID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/flash-sales/"+saleID.String(), nil, "token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown sale", func() {
		s.mockFlashSales.EXPECT().End(gomock.Any(), saleID).Return(commands.ErrFlashSaleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/flash-sales/"+saleID.String(), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Flash sale not found")
	})
}
