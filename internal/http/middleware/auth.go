package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/artistdash-backend/internal/http/response"
	"github.com/yungbote/artistdash-backend/internal/pkg/authz"
	apperr "github.com/yungbote/artistdash-backend/internal/pkg/errors"
	"github.com/yungbote/artistdash-backend/internal/platform/ctxutil"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
	"github.com/yungbote/artistdash-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLogger := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLogger, authService: authService}
}

// RequireAuth verifies the bearer token and attaches its request data.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearer(c)
		if tokenString == "" {
			response.AbortServiceError(c, fmt.Errorf("missing bearer token: %w", apperr.ErrUnauthorized))
			return
		}
		rd, err := am.authService.ParseToken(c.Request.Context(), tokenString)
		if err != nil {
			am.log.Debug("token rejected", "error", err)
			response.AbortServiceError(c, err)
			return
		}
		c.Request = c.Request.WithContext(ctxutil.WithRequestData(c.Request.Context(), rd))
		c.Next()
	}
}

// RequireOperation rejects callers whose role does not grant op. It must run
// after RequireAuth.
func (am *AuthMiddleware) RequireOperation(op authz.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ctxutil.Capability(c.Request.Context()).Require(op); err != nil {
			response.AbortServiceError(c, err)
			return
		}
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
