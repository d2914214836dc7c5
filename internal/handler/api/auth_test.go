//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/cookie"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	commandsmock "stayhub/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockAuthCommands
	mockStaffRepo *commandsmock.MockStaffRepository
	handler       *api.AuthHandler

	staffID uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockStaffRepo = commandsmock.NewMockStaffRepository(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockStaffRepo, config.NewTestConfig())

	s.staffID = uuid.New()

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	// Authenticated routes resolve the staff id from the request context,
	// so the tests seed it the way the auth middleware would.
	s.router.GET("/auth/me", func(c *gin.Context) {
		c.Set("staff_id", s.staffID)
		c.Next()
	}, s.handler.Me)
	s.router.GET("/auth/me-unauthenticated", s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.Run("success: returns the token and sets the session cookie", func() {
		staff := builder.NewStaffBuilder().WithEmail("manager@stayhub.test").BuildView()
		s.mockCommands.EXPECT().Login(gomock.Any(), "manager@stayhub.test", "password123").
			Return(&commands.LoginResult{Token: "signed.jwt.token", Staff: staff}, nil).Times(1)

		body := builder.NewStaffBuilder().WithEmail("manager@stayhub.test").BuildLoginRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed.jwt.token", response.Token)
		s.Equal("manager@stayhub.test", response.Staff.Email)

		sessionCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(sessionCookie)
		s.Equal("signed.jwt.token", sessionCookie.Value)
	})

	s.Run("error: 401 on wrong credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrAuthenticationFailed).Times(1)

		body := builder.NewStaffBuilder().WithPassword("wrong-password").BuildLoginRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 without an email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
			map[string]any{"password": "password123"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the current staff", func() {
		snap := &commands.StaffSnapshot{
			ID:          s.staffID,
			Email:       "manager@stayhub.test",
			Role:        "manager",
			Department:  "front_office",
			AccessLevel: 4,
			IsActive:    true,
		}
		s.mockStaffRepo.EXPECT().FindByID(gomock.Any(), s.staffID).Return(snap, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		var response resdto.StaffResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.staffID, response.ID)
		s.Equal("manager", response.Role)
		s.Equal(int32(4), response.AccessLevel)
	})

	s.Run("error: 401 without an authenticated staff id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me-unauthenticated", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Staff not authenticated")
	})

	s.Run("error: 404 when the staff record is gone", func() {
		s.mockStaffRepo.EXPECT().FindByID(gomock.Any(), s.staffID).
			Return(nil, errs.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Staff not found")
	})
}
