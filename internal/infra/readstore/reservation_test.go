//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"room-reservation/internal/infra"
	"room-reservation/internal/infra/readstore"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	readstoremock "room-reservation/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var kst = time.FixedZone("KST", 9*60*60)

func reservationRow(roomID uuid.UUID, start time.Time, hours int) sqlc.Reservations {
	return sqlc.Reservations{
		ID:         uuid.New(),
		RoomID:     roomID,
		StartAt:    pgconv.TimeToPgtype(start),
		EndAt:      pgconv.TimeToPgtype(start.Add(time.Duration(hours) * time.Hour)),
		Nickname:   "study-group",
		HolderName: "Kim Minji",
		HolderID:   "20231234",
		Phone:      "010-1234-5678",
		Purpose:    "weekly algorithm study",
		CreatedAt:  pgconv.TimeToPgtype(start.Add(-24 * time.Hour)),
		UpdatedAt:  pgconv.TimeToPgtype(start.Add(-24 * time.Hour)),
	}
}

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockReservationReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation found",
			setupMock: func(mock *readstoremock.MockReservationReadQueries) {
				start := time.Date(2030, time.May, 1, 10, 0, 0, 0, kst)
				mock.EXPECT().GetReservationByID(ctx, gomock.Any(), id).Return(sqlc.GetReservationByIDRow{
					ID:         id,
					RoomID:     uuid.New(),
					RoomName:   "Seminar Room A",
					StartAt:    pgconv.TimeToPgtype(start),
					EndAt:      pgconv.TimeToPgtype(start.Add(2 * time.Hour)),
					HolderName: "Kim Minji",
					HolderID:   "20231234",
				}, nil)
			},
		},
		{
			name: "error: reservation not found",
			setupMock: func(mock *readstoremock.MockReservationReadQueries) {
				mock.EXPECT().GetReservationByID(ctx, gomock.Any(), id).Return(sqlc.GetReservationByIDRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockReservationReadQueries) {
				mock.EXPECT().GetReservationByID(ctx, gomock.Any(), id).Return(sqlc.GetReservationByIDRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
			store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, actualError := store.FindByID(ctx, id)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, result)
			} else {
				require.NoError(t, actualError)
				require.NotNil(t, result)
				assert.Equal(t, id, result.ID)
				assert.Equal(t, "Seminar Room A", result.RoomName)
				assert.Equal(t, 2*time.Hour, result.EndAt.Sub(result.StartAt))
			}
		})
	}
}

func TestReservationReadStore_Overlapping(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	windowStart := time.Date(2030, time.May, 1, 0, 0, 0, 0, kst)
	windowEnd := windowStart.Add(24 * time.Hour)

	t.Run("passes the half-open window and maps rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		rows := []sqlc.Reservations{
			reservationRow(roomID, windowStart.Add(10*time.Hour), 2),
			reservationRow(roomID, windowStart.Add(23*time.Hour), 2),
		}
		mockQueries.EXPECT().ListOverlappingReservations(ctx, gomock.Any(), sqlc.ListOverlappingReservationsParams{
			RoomID:      roomID,
			WindowStart: pgconv.TimeToPgtype(windowStart),
			WindowEnd:   pgconv.TimeToPgtype(windowEnd),
		}).Return(rows, nil).Times(2)

		views, err := store.ListOverlapping(ctx, roomID, windowStart, windowEnd)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, rows[1].ID, views[1].ID)
		assert.True(t, views[1].EndAt.Equal(windowEnd.Add(time.Hour)), "rows crossing midnight are returned unclipped")

		snaps, err := store.SnapshotsOverlapping(ctx, roomID, windowStart, windowEnd)
		require.NoError(t, err)
		require.Len(t, snaps, 2)
		assert.Equal(t, rows[0].ID, snaps[0].ID)
		assert.Equal(t, "20231234", snaps[0].HolderID)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListOverlappingReservations(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		views, err := store.ListOverlapping(ctx, roomID, windowStart, windowEnd)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, views)
	})
}

func TestReservationReadStore_Pagination(t *testing.T) {
	ctx := context.Background()

	t.Run("first page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListReservationsFirstPage(ctx, gomock.Any(), int32(3)).Return([]sqlc.ListReservationsFirstPageRow{
			{ID: uuid.New(), RoomName: "A"},
			{ID: uuid.New(), RoomName: "B"},
		}, nil)

		views, err := store.ListFirstPage(ctx, 3)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "B", views[1].RoomName)
	})

	t.Run("keyset passes the cursor position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		lastAt := time.Date(2030, time.April, 30, 9, 0, 0, 0, time.UTC)
		lastID := uuid.New()
		mockQueries.EXPECT().ListReservationsKeyset(ctx, gomock.Any(), sqlc.ListReservationsKeysetParams{
			CreatedAt: pgconv.TimeToPgtype(lastAt),
			ID:        lastID,
			Lim:       11,
		}).Return([]sqlc.ListReservationsKeysetRow{}, nil)

		views, err := store.ListKeyset(ctx, lastAt, lastID, 11)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("keyset database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListReservationsKeyset(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.ListKeyset(ctx, time.Now(), uuid.New(), 10)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
