//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"room-reservation/internal/domain/auth"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/jwt"
	"room-reservation/internal/pkg/password"
	"room-reservation/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminCommands_Access(t *testing.T) {
	hash, err := password.Hash("open-sesame", bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Date(2030, time.April, 30, 12, 0, 0, 0, kst)
	svc := jwt.NewService("test-secret", time.Hour, jwt.WithClock(clock.NewMockClock(now)))
	uc := commands.NewAdminCommands(hash, svc)

	t.Run("correct password grants a signed admin token", func(t *testing.T) {
		res, err := uc.Access(context.Background(), "open-sesame")
		require.NoError(t, err)
		assert.Equal(t, time.Hour, res.TTL)
		assert.True(t, res.ExpiresAt.Equal(now.Add(time.Hour)))
		assert.Equal(t, auth.RoleAdmin, res.Session.Role())

		claims, err := svc.Verify(res.Token)
		require.NoError(t, err)
		assert.Equal(t, res.Session.Subject(), claims.Subject)
	})

	t.Run("each grant gets its own subject", func(t *testing.T) {
		a, err := uc.Access(context.Background(), "open-sesame")
		require.NoError(t, err)
		b, err := uc.Access(context.Background(), "open-sesame")
		require.NoError(t, err)
		assert.NotEqual(t, a.Session.Subject(), b.Session.Subject())
	})

	for _, pw := range []string{"wrong", "", "   ", "open-sesame "} {
		t.Run("rejects "+pw, func(t *testing.T) {
			res, err := uc.Access(context.Background(), pw)
			assert.Nil(t, res)
			assert.True(t, errs.Is(err, errs.ErrInvalidAdminCredentials), "got %v", err)
		})
	}
}
