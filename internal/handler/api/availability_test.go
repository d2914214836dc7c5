//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"stayhub/internal/domain/availability"
	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	commandsmock "stayhub/tests/mock/commands"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAvailabilityCommands
	mockQueries  *queriesmock.MockAvailabilityQueries
	handler      *api.AvailabilityHandler

	serviceID uuid.UUID
	base      string
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAvailabilityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/availability/:serviceType/:serviceId", s.handler.GetByMonth)
	s.router.PUT("/availability/:serviceType/:serviceId", s.handler.Update)
	s.router.PUT("/availability/:serviceType/:serviceId/bulk", s.handler.BulkUpdate)
	s.router.POST("/availability/:serviceType/:serviceId/block", s.handler.Block)

	s.serviceID = uuid.New()
	s.base = fmt.Sprintf("/availability/room/%s", s.serviceID)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetByMonth() {
	s.Run("success: returns the ledger rows", func() {
		views := []queries.AvailabilityView{
			*builder.NewAvailabilityBuilder().WithServiceID(s.serviceID).WithCounts(10, 4).BuildView(),
			*builder.NewAvailabilityBuilder().WithServiceID(s.serviceID).AsBlocked().BuildView(),
		}
		s.mockQueries.EXPECT().GetByMonth(gomock.Any(), "room", s.serviceID, "2026-07").
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base+"?month=2026-07", nil, "")

		var response []resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(int32(6), response[0].Bookings)
		s.Equal(int32(0), response[1].Available)
	})

	s.Run("success: unscheduled month yields an empty list", func() {
		s.mockQueries.EXPECT().GetByMonth(gomock.Any(), "room", s.serviceID, "2026-12").
			Return([]queries.AvailabilityView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base+"?month=2026-12", nil, "")

		var response []resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 without a month parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "month query parameter is required")
	})

	s.Run("error: 400 on a malformed month", func() {
		s.mockQueries.EXPECT().GetByMonth(gomock.Any(), "room", s.serviceID, "July").
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base+"?month=July", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on a malformed service id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/room/not-a-uuid?month=2026-07", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AvailabilityHandlerTestSuite) TestUpdate() {
	date := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)

	s.Run("success: returns the updated row", func() {
		view := builder.NewAvailabilityBuilder().WithServiceID(s.serviceID).WithDate(date).WithCounts(10, 5).BuildView()
		s.mockCommands.EXPECT().Update(gomock.Any(), commands.UpdateAvailabilityParams{
			ServiceType: "room",
			ServiceID:   s.serviceID,
			Date:        date,
			Available:   5,
		}).Return(view, nil).Times(1)

		body := map[string]any{"date": "2026-07-20", "available": 5}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base, body, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int32(5), response.Available)
		s.Equal("2026-07-20", response.Date)
	})

	s.Run("error: 404 for an unknown service", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrServiceNotFound).Times(1)

		body := map[string]any{"date": "2026-07-20", "available": 5}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})

	s.Run("error: 422 when available exceeds total", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrAvailabilityRange).Times(1)

		body := map[string]any{"date": "2026-07-20", "available": 99}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "out of range")
	})

	s.Run("error: 400 on a malformed date", func() {
		body := map[string]any{"date": "07/20/2026", "available": 5}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})
}

func (s *AvailabilityHandlerTestSuite) TestBulkUpdate() {
	s.Run("success: reports per-date outcomes", func() {
		okDate := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)
		badDate := time.Date(2026, 7, 21, 0, 0, 0, 0, time.UTC)

		view := builder.NewAvailabilityBuilder().WithServiceID(s.serviceID).WithDate(okDate).WithCounts(10, 5).BuildView()
		outcomes := []commands.DateOutcome{
			{Date: okDate, View: view},
			{Date: badDate, Error: "available count out of range"},
		}
		s.mockCommands.EXPECT().
			BulkUpdate(gomock.Any(), commands.BulkUpdateParams{
				ServiceType: "room",
				ServiceID:   s.serviceID,
				From:        okDate,
				To:          badDate,
				Available:   5,
			}).
			Return(outcomes, nil).Times(1)

		body := map[string]any{"from": "2026-07-20", "to": "2026-07-21", "available": 5}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/bulk", body, "")

		var response []resdto.DateOutcomeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.NotNil(response[0].Availability)
		s.Empty(response[0].Error)
		s.Nil(response[1].Availability)
		s.Equal("available count out of range", response[1].Error)
	})

	s.Run("error: 400 on a missing range bound", func() {
		body := map[string]any{"from": "2026-07-20", "available": 5}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/bulk", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on a malformed range bound", func() {
		body := map[string]any{"from": "2026-07-20", "to": "not-a-date", "available": 5}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/bulk", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: 400 on an inverted range", func() {
		s.mockCommands.EXPECT().
			BulkUpdate(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(availability.ErrInvalidDateRange, errs.ErrDomainValidation)).Times(1)

		body := map[string]any{"from": "2026-07-21", "to": "2026-07-20", "available": 5}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/bulk", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})
}

func (s *AvailabilityHandlerTestSuite) TestBlock() {
	date := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)

	s.Run("success: warns about surviving bookings", func() {
		view := builder.NewAvailabilityBuilder().WithServiceID(s.serviceID).WithDate(date).WithCounts(10, 0).BuildView()
		s.mockCommands.EXPECT().Block(gomock.Any(), "room", s.serviceID, date).
			Return(&commands.BlockResult{View: view, SurvivingBookings: 4}, nil).Times(1)

		body := map[string]any{"date": "2026-07-20"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.base+"/block", body, "")

		var response resdto.BlockResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int32(0), response.Availability.Available)
		s.Equal(int32(4), response.SurvivingBookings)
		s.NotEmpty(response.Warning)
	})

	s.Run("success: no warning without bookings", func() {
		view := builder.NewAvailabilityBuilder().WithServiceID(s.serviceID).WithDate(date).WithCounts(10, 0).BuildView()
		s.mockCommands.EXPECT().Block(gomock.Any(), "room", s.serviceID, date).
			Return(&commands.BlockResult{View: view}, nil).Times(1)

		body := map[string]any{"date": "2026-07-20"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.base+"/block", body, "")

		var response resdto.BlockResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Warning)
	})

	s.Run("error: 404 for an unknown service", func() {
		s.mockCommands.EXPECT().Block(gomock.Any(), "room", s.serviceID, date).
			Return(nil, errs.ErrServiceNotFound).Times(1)

		body := map[string]any{"date": "2026-07-20"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.base+"/block", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}
