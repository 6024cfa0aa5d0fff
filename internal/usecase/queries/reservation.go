package queries

import (
	"context"
	"time"

	"room-reservation/internal/domain/slot"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ListOverlapping returns the room's reservations intersecting [start, end), ordered by start.
	ListOverlapping(ctx context.Context, roomID uuid.UUID, start, end time.Time) ([]*ReservationView, error)
	ListFirstPage(ctx context.Context, limit int32) ([]*ReservationView, error)
	ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ListUpcomingByRoom returns reservations in progress or starting within the booking horizon.
	ListUpcomingByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	rooms        RoomReadStore
	clock        clock.Clock
	horizon      time.Duration
}

func NewReservationQueries(reservations ReservationReadStore, rooms RoomReadStore, clk clock.Clock, horizon time.Duration) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		rooms:        rooms,
		clock:        clk,
		horizon:      horizon,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	rv, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, errs.ErrReservationNotFound)
	}
	rv.Status = slot.Classify(rv.StartAt, rv.EndAt, q.clock.Now())
	return rv, nil
}

func (q *reservationQueriesImpl) ListUpcomingByRoom(ctx context.Context, roomID uuid.UUID) ([]*ReservationView, error) {
	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		return nil, mapNotFound(err, errs.ErrRoomNotFound)
	}

	now := q.clock.Now()
	rows, err := q.reservations.ListOverlapping(ctx, roomID, now, now.Add(q.horizon))
	if err != nil {
		return nil, err
	}
	withStatus(rows, now)
	return rows, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	rows, next, err := page(cursor, limit,
		func(lim int32) ([]*ReservationView, error) {
			return q.reservations.ListFirstPage(ctx, lim)
		},
		func(after time.Time, id uuid.UUID, lim int32) ([]*ReservationView, error) {
			return q.reservations.ListKeyset(ctx, after, id, lim)
		},
		func(rv *ReservationView) (time.Time, uuid.UUID) { return rv.CreatedAt, rv.ID },
	)
	if err != nil {
		return nil, nil, err
	}
	withStatus(rows, q.clock.Now())
	return rows, next, nil
}

// Lifecycle status is never stored; it is derived at read time.
func withStatus(rows []*ReservationView, now time.Time) {
	for _, rv := range rows {
		rv.Status = slot.Classify(rv.StartAt, rv.EndAt, now)
	}
}
