//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"room-reservation/internal/handler/dto/response"
	"room-reservation/internal/pkg/cookie"
	"room-reservation/tests/common/builder"
	"room-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// AdminAccess exchanges the test admin password for a bearer token.
func AdminAccess(t *testing.T, router *gin.Engine) string {
	t.Helper()
	token, _ := AdminSession(t, router)
	return token
}

// AdminSession returns both the bearer token and the session cookie set alongside it.
func AdminSession(t *testing.T, router *gin.Engine) (string, *http.Cookie) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/access",
		builder.NewAdminAccessBuilder().BuildDTO(), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, sessionCookie, "admin session cookie not set")
	require.NotEmpty(t, sessionCookie.Value, "admin session cookie is empty")

	var body response.AdminAccessResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.NotEmpty(t, body.AccessToken)

	return body.AccessToken, sessionCookie
}

func AdminLogout(t *testing.T, router *gin.Engine, token string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/logout", nil, token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
