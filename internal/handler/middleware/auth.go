package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"room-reservation/internal/domain/auth"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/pkg/cookie"
	"room-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	errMissingToken = errors.New("access token required")
	errNotAdmin     = errors.New("admin role required")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	cookies        *cookie.Codec
}

const ctxSessionKey = "admin_session"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, cookies *cookie.Codec) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		cookies:        cookies,
	}
}

// RequireAdmin accepts the session cookie first, then a Bearer token.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, httperr.CodeUnauthorized, "Access token required", nil)
			return
		}

		session, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, httperr.CodeUnauthorized, "Invalid or expired token", nil)
			return
		}

		if session.Role() != auth.RoleAdmin {
			httperr.AbortWithError(c, http.StatusForbidden, errNotAdmin, httperr.CodeForbidden, "Insufficient permissions", nil)
			return
		}

		c.Set(ctxSessionKey, session)
		c.Next()
	}
}

func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if m.cookies != nil {
		if token, err := m.cookies.GetAccessToken(c); err == nil && token != "" {
			return token
		}
	}

	authHeader := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func GetSession(c *gin.Context) (auth.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return auth.Session{}, false
	}

	session, ok := v.(auth.Session)
	return session, ok
}
