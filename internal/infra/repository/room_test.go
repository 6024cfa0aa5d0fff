//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/shared"
	"room-reservation/tests/common/builder"
	repositorymock "room-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRoomRepo(t *testing.T) (*repository.RoomRepository, *repositorymock.MockRoomWriteQueries, *mockDBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	return repository.NewRoomRepository(mockQueries, mockDB), mockQueries, mockDB
}

func TestRoomRepository_Create(t *testing.T) {
	ctx := context.Background()
	rm, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("success: maps the entity", func(t *testing.T) {
		repo, mockQueries, mockDB := newRoomRepo(t)
		mockQueries.EXPECT().CreateRoom(ctx, mockDB, gomock.Cond(func(p sqlc.CreateRoomParams) bool {
			return p.ID == rm.ID() && p.Name == rm.Name() && p.Capacity == 8 && p.Available
		})).Return(rm.ID(), nil)

		id, err := repo.Create(ctx, mockDB, rm)
		require.NoError(t, err)
		assert.Equal(t, rm.ID(), id)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		repo, mockQueries, mockDB := newRoomRepo(t)
		mockQueries.EXPECT().CreateRoom(ctx, mockDB, gomock.Any()).Return(uuid.Nil, errDBConnection)

		id, err := repo.Create(ctx, mockDB, rm)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Equal(t, uuid.Nil, id)
	})
}

func TestRoomRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	rm := builder.NewRoomBuilder().BuildReconstructed()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "error: room vanished", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errDBConnection, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run("update "+tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newRoomRepo(t)
			mockQueries.EXPECT().UpdateRoom(ctx, mockDB, gomock.Cond(func(p sqlc.UpdateRoomParams) bool {
				return p.ID == rm.ID()
			})).Return(tc.affected, tc.queryErr)

			err := repo.Update(ctx, mockDB, rm)
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
		})

		t.Run("delete "+tc.name, func(t *testing.T) {
			repo, mockQueries, mockDB := newRoomRepo(t)
			mockQueries.EXPECT().DeleteRoom(ctx, mockDB, rm.ID()).Return(tc.affected, tc.queryErr)

			err := repo.Delete(ctx, mockDB, rm.ID())
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
		})
	}
}

func TestRoomRepository_LockForUpdate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success: returns a snapshot", func(t *testing.T) {
		repo, mockQueries, mockDB := newRoomRepo(t)
		mockQueries.EXPECT().LockRoomForUpdate(ctx, mockDB, id).Return(sqlc.Rooms{ID: id, Name: "A", Capacity: 4, Available: true}, nil)

		snap, err := repo.LockForUpdate(ctx, mockDB, id)
		require.NoError(t, err)
		assert.Equal(t, id, snap.ID)
		assert.Equal(t, 4, snap.Capacity)
		assert.True(t, snap.Available)
	})

	t.Run("error: room not found", func(t *testing.T) {
		repo, mockQueries, mockDB := newRoomRepo(t)
		mockQueries.EXPECT().LockRoomForUpdate(ctx, mockDB, id).Return(sqlc.Rooms{}, pgx.ErrNoRows)

		snap, err := repo.LockForUpdate(ctx, mockDB, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, snap)
	})
}

func TestRoomRepository_AddImage(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	image := shared.RoomImage{ObjectKey: "rooms/a.png", URL: "http://cdn/rooms/a.png", ContentType: "image/png", SizeBytes: 42}

	t.Run("success: returns the stored row", func(t *testing.T) {
		repo, mockQueries, mockDB := newRoomRepo(t)
		created := time.Date(2030, time.May, 1, 9, 0, 0, 0, time.UTC)
		mockQueries.EXPECT().CreateRoomImage(ctx, mockDB, sqlc.CreateRoomImageParams{
			RoomID:      roomID,
			ObjectKey:   image.ObjectKey,
			Url:         image.URL,
			ContentType: image.ContentType,
			SizeBytes:   image.SizeBytes,
		}).Return(sqlc.RoomImages{
			ID:          uuid.New(),
			RoomID:      roomID,
			ObjectKey:   image.ObjectKey,
			Url:         image.URL,
			ContentType: image.ContentType,
			SizeBytes:   image.SizeBytes,
			CreatedAt:   pgconv.TimeToPgtype(created),
		}, nil)

		got, err := repo.AddImage(ctx, mockDB, roomID, image)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.Equal(t, image.URL, got.URL)
		assert.True(t, created.Equal(got.CreatedAt))
	})

	t.Run("error: missing room surfaces as not found", func(t *testing.T) {
		repo, mockQueries, mockDB := newRoomRepo(t)
		fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
		mockQueries.EXPECT().CreateRoomImage(ctx, mockDB, gomock.Any()).Return(sqlc.RoomImages{}, fk)

		got, err := repo.AddImage(ctx, mockDB, roomID, image)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, got)
	})
}
