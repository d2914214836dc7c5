package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/cookie"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	staffRepo    commands.StaffRepository
	cfg          config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, staffRepo commands.StaffRepository, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		staffRepo:    staffRepo,
		cfg:          cfg,
	}
}

// @Summary Staff login
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
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	duration, err := time.ParseDuration(h.cfg.JWT.Duration)
	if err == nil {
		cookie.SetAccessTokenCookie(c, h.cfg.Cookie, result.Token, duration)
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Staff logout
// @Description Logout current staff session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current staff
// @Description Get current authenticated staff information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.StaffResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrAuthenticationFailed, "Staff not authenticated", nil)
		return
	}

	snap, err := h.staffRepo.FindByID(c.Request.Context(), staffID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Staff not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.StaffResponse{
		ID:          snap.ID,
		Email:       snap.Email,
		Role:        snap.Role,
		Department:  snap.Department,
		AccessLevel: snap.AccessLevel,
	})
}
