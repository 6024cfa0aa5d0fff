//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditCommands_Record(t *testing.T) {
	at := time.Date(2030, time.April, 30, 12, 0, 0, 0, kst)
	rec := commands.AuditRecord{
		OccurredAt: at,
		ClientIP:   "10.0.0.7",
		Method:     "DELETE",
		URI:        "/api/v1/reservation/abc",
		Status:     204,
		Params:     map[string][]string{"holder_id": {"20231234"}},
		RequestID:  "req-1",
	}

	t.Run("stores the entry with JSON params", func(t *testing.T) {
		f := newUoWFixture(t)
		f.audit.EXPECT().Create(gomock.Any(), gomock.Any(), shared.AuditEntry{
			OccurredAt: at,
			ClientIP:   "10.0.0.7",
			Method:     "DELETE",
			URI:        "/api/v1/reservation/abc",
			Status:     204,
			Params:     []byte(`{"holder_id":["20231234"]}`),
			RequestID:  "req-1",
		}).Return(nil)

		require.NoError(t, commands.NewAuditUseCase(f.uow).Record(context.Background(), rec))
	})

	t.Run("propagates store failures", func(t *testing.T) {
		f := newUoWFixture(t)
		boom := errors.New("disk full")
		f.audit.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

		err := commands.NewAuditUseCase(f.uow).Record(context.Background(), rec)
		assert.ErrorIs(t, err, boom)
	})
}
