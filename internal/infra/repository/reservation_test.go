//go:build unit

package repository_test

import (
	"context"
	"testing"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/tests/common/builder"
	repositorymock "room-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, *reservation.Reservation, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation created with its interval",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Cond(func(p sqlc.CreateReservationParams) bool {
					return p.ID == res.ID() &&
						p.RoomID == res.RoomID() &&
						p.StartAt.Time.Equal(res.TimeSlot().Start()) &&
						p.EndAt.Time.Equal(res.TimeSlot().End()) &&
						p.HolderID == "20231234" &&
						p.Phone == "010-1234-5678"
				})).Return(res.ID(), nil)
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(uuid.Nil, errDBConnection)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: exclusion constraint rejects an overlapping interval",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, tx sqlc.DBTX) {
				conflict := &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(uuid.Nil, conflict)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			domainReservation, err := builder.NewReservationBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainReservation, mockDB)

			id, actualError := repo.Create(ctx, mockDB, domainReservation)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, domainReservation.ID(), id)
			}
		})
	}
}

// =============================================================================
// Delete Reservation Tests
// =============================================================================

func TestReservationRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: row deleted", affected: 1},
		{name: "error: nothing to delete", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errDBConnection, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DeleteReservation(ctx, mockDB, id).Return(tc.affected, tc.queryErr)

			err := repo.Delete(ctx, mockDB, id)
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
