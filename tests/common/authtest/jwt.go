//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"room-reservation/internal/domain/auth"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper mints admin tokens signed with the configured test secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T) string {
	t.Helper()
	ttl, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return h.issue(t, jwt.NewService(h.cfg.Secret, ttl))
}

// CreateExpiredToken backdates the issuing clock instead of sleeping.
func (h *JWTHelper) CreateExpiredToken(t *testing.T) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	return h.issue(t, jwt.NewService(h.cfg.Secret, time.Hour, jwt.WithClock(past)))
}

func (h *JWTHelper) issue(t *testing.T, svc *jwt.Service) string {
	t.Helper()
	token, err := svc.Issue(auth.NewSession())
	require.NoError(t, err)
	return token.Value
}
