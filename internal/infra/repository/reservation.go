package repository

import (
	"context"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create relies on the reservations_no_overlap exclusion constraint as the last line of defence;
// a violation surfaces as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := reservationToCreateParams(res)

	resultID, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func reservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	holder := res.Holder()
	return sqlc.CreateReservationParams{
		ID:         res.ID(),
		RoomID:     res.RoomID(),
		StartAt:    pgconv.TimeToPgtype(res.TimeSlot().Start()),
		EndAt:      pgconv.TimeToPgtype(res.TimeSlot().End()),
		Nickname:   holder.Nickname(),
		HolderName: holder.Name(),
		HolderID:   holder.ID(),
		Phone:      holder.Phone(),
		Purpose:    res.Purpose().String(),
		CreatedAt:  pgconv.TimeToPgtype(res.CreatedAt()),
	}
}
