//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	"stayhub/tests/common/testutil"
	commandsmock "stayhub/tests/mock/commands"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/services", s.handler.Create)
	s.router.GET("/services", s.handler.List)
	s.router.GET("/services/:id", s.handler.Get)
	s.router.PUT("/services/:id", s.handler.Update)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestCreate() {
	s.Run("success: returns the created service", func() {
		view := builder.NewServiceBuilder().WithName("Deluxe Room").BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreateServiceParams{
			ServiceType:    "room",
			Name:           "Deluxe Room",
			Capacity:       10,
			BasePriceCents: 50000,
		}).Return(view, nil).Times(1)

		body := builder.NewServiceBuilder().WithName("Deluxe Room").BuildCreateRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/services", body, "")

		var response resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Deluxe Room", response.Name)
		s.True(response.IsActive)
	})

	s.Run("error: 422 on a domain validation failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		body := builder.NewServiceBuilder().BuildCreateRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/services", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 400 on binding failures", func() {
		base := builder.NewServiceBuilder().BuildCreateRequestDTO()
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"missing name", testutil.Field("name", nil)},
			{"unknown service type", testutil.Field("service_type", "parking")},
			{"zero capacity", testutil.Field("capacity", 0)},
			{"negative base price", testutil.Field("base_price_cents", -100)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), base, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/services", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}

func (s *CatalogHandlerTestSuite) TestUpdate() {
	serviceID := uuid.New()
	path := fmt.Sprintf("/services/%s", serviceID)
	isActive := true
	body := map[string]any{
		"name":             "Suite",
		"capacity":         8,
		"base_price_cents": 90000,
		"is_active":        isActive,
	}

	s.Run("success: returns the updated service", func() {
		view := builder.NewServiceBuilder().WithName("Suite").WithCapacity(8).WithBasePrice(90000).BuildView()
		s.mockCommands.EXPECT().Update(gomock.Any(), serviceID, commands.UpdateServiceParams{
			Name:           "Suite",
			Capacity:       8,
			BasePriceCents: 90000,
			IsActive:       true,
		}).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, body, "")

		var response resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Suite", response.Name)
		s.Equal(int32(8), response.Capacity)
	})

	s.Run("error: 404 for an unknown service", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), serviceID, gomock.Any()).
			Return(nil, errs.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})

	s.Run("error: 400 without the is_active flag", func() {
		incomplete := map[string]any{"name": "Suite", "capacity": 8, "base_price_cents": 90000}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, incomplete, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 on a malformed service id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/services/not-a-uuid", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service ID format")
	})
}

func (s *CatalogHandlerTestSuite) TestGet() {
	serviceID := uuid.New()

	s.Run("success", func() {
		view := builder.NewServiceBuilder().BuildView()
		view.ID = serviceID
		s.mockQueries.EXPECT().Get(gomock.Any(), serviceID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/"+serviceID.String(), nil, "")

		var response resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(serviceID, response.ID)
	})

	s.Run("error: 404 for an unknown service", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), serviceID).
			Return(nil, errs.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/"+serviceID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}

func (s *CatalogHandlerTestSuite) TestList() {
	s.Run("success: unfiltered list", func() {
		views := []queries.ServiceView{
			*builder.NewServiceBuilder().WithName("Deluxe Room").BuildView(),
			*builder.NewServiceBuilder().WithServiceType("spa").WithName("Day Spa").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Nil()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, "")

		var response []resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: filtered by type", func() {
		views := []queries.ServiceView{
			*builder.NewServiceBuilder().WithServiceType("spa").WithName("Day Spa").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Not(gomock.Nil())).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services?type=spa", nil, "")

		var response []resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("spa", response[0].ServiceType)
	})

	s.Run("error: 400 on an unknown type", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Not(gomock.Nil())).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services?type=parking", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service type")
	})
}
