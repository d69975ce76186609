//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"engros-ordering/internal/handler/api"
	"engros-ordering/internal/usecase/queries"
	"engros-ordering/tests/common/builder"
	"engros-ordering/tests/common/httptest"
	queriesmock "engros-ordering/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockProductQueries
	handler     *api.CatalogHandler
	customerID  uuid.UUID
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)
	s.customerID = uuid.New()

	// mirrors OptionalAuth: claims set only when a token is present
	s.router.GET("/products", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("customer_id", s.customerID)
		}
		s.handler.ListProducts(c)
	})
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListProducts() {
	s.Run("anonymous callers get base prices", func() {
		view := builder.NewProductBuilder().BuildReadModel()
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Nil()).
			Return([]queries.ProductView{view}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")

		var response []queries.ProductView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("none", response[0].DiscountType)
		s.Equal(view.PriceCents, response[0].PriceCents)
	})

	s.Run("authenticated callers get personal prices", func() {
		view := builder.NewProductBuilder().BuildReadModel()
		view.PriceCents = 7000
		view.DiscountType = "uniqueOffer"
		view.DiscountLabel = "Dit tilbud"
		view.DiscountPercent = 30
		view.Strikethrough = true

		s.mockQueries.EXPECT().
			List(gomock.Any(), &s.customerID).
			Return([]queries.ProductView{view}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "token")

		var response []queries.ProductView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Dit tilbud", response[0].DiscountLabel)
		s.True(response[0].Strikethrough)
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Nil()).
			Return(nil, queries.ErrCustomerNotFound).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
