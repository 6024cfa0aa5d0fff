//go:build unit

package commands_test

import (
	"context"
	"testing"

	"room-reservation/internal/usecase/shared"
	sharedmock "room-reservation/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// uowFixture wires a mocked unit of work whose Within runs fn against mocked repositories.
type uowFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	reservations  *sharedmock.MockReservationRepository
	rooms         *sharedmock.MockRoomRepository
	notifications *sharedmock.MockNotificationRepository
	audit         *sharedmock.MockAuditRepository
}

func newUoWFixture(t *testing.T) *uowFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &uowFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		rooms:         sharedmock.NewMockRoomRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		audit:         sharedmock.NewMockAuditRepository(ctrl),
	}

	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Rooms().Return(f.rooms).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().Audit().Return(f.audit).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}
