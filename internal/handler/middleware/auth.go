package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"stayhub/internal/domain/staff"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/pkg/cookie"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxStaffIDKey = "staff_id"
	ctxSubjectKey = "staff_subject"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		staffID, subject, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxStaffIDKey, staffID)
		c.Set(ctxSubjectKey, subject)
		c.Set("jwt_claims", map[string]any{
			"staff_id":     staffID.String(),
			"role":         subject.Role.String(),
			"department":   subject.Department.String(),
			"access_level": subject.AccessLevel.Int(),
		})
		c.Next()
	}
}

// RequireAccess evaluates the layered guard after RequireAuth has stored the
// subject: admin bypass, then department, then role, then access level.
func (m *AuthMiddleware) RequireAccess(req staff.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, ok := GetSubject(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if decision := staff.Authorize(subject, req); !decision.Allowed {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrPermissionDenied, decision.Reason, nil)
			return
		}

		c.Next()
	}
}

func GetStaffID(c *gin.Context) (uuid.UUID, bool) {
	staffID, exists := c.Get(ctxStaffIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := staffID.(uuid.UUID)
	return id, ok
}

func GetSubject(c *gin.Context) (staff.Subject, bool) {
	subject, exists := c.Get(ctxSubjectKey)
	if !exists {
		return staff.Subject{}, false
	}

	sub, ok := subject.(staff.Subject)
	return sub, ok
}
