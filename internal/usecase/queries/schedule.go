package queries

import (
	"context"

	"room-reservation/internal/domain/slot"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	DayGrid(ctx context.Context, roomID uuid.UUID, date slot.Date) (*DayGridView, error)
	// EvaluateSelection replays picks in order through the selection reducer.
	EvaluateSelection(ctx context.Context, roomID uuid.UUID, date slot.Date, picks []string) (*SelectionView, error)
}

type scheduleQueriesImpl struct {
	rooms        RoomReadStore
	reservations ReservationReadStore
	engine       *slot.Engine
	clock        clock.Clock
}

func NewScheduleQueries(rooms RoomReadStore, reservations ReservationReadStore, engine *slot.Engine, clk clock.Clock) ScheduleQueries {
	return &scheduleQueriesImpl{
		rooms:        rooms,
		reservations: reservations,
		engine:       engine,
		clock:        clk,
	}
}

func (q *scheduleQueriesImpl) DayGrid(ctx context.Context, roomID uuid.UUID, date slot.Date) (*DayGridView, error) {
	day, err := q.loadDay(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	grid := day.Grid()
	slots := make([]SlotView, len(grid))
	for i, st := range grid {
		slots[i] = SlotView{
			Ordinal:  st.Slot.Ordinal(),
			Start:    st.Slot.Label(),
			End:      st.Slot.EndLabel(),
			Occupied: st.Occupied,
			Eligible: st.Eligible(),
			Reason:   string(st.Reason),
		}
	}

	return &DayGridView{
		RoomID: roomID,
		Date:   date.String(),
		Slots:  slots,
	}, nil
}

func (q *scheduleQueriesImpl) EvaluateSelection(ctx context.Context, roomID uuid.UUID, date slot.Date, picks []string) (*SelectionView, error) {
	day, err := q.loadDay(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	sel, err := day.Replay(picks)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSelection)
	}

	view := &SelectionView{
		RoomID:               roomID,
		Date:                 date.String(),
		State:                sel.State().String(),
		Picks:                slot.Labels(sel.Picks()),
		IsComplete:           sel.IsComplete(),
		IsValid:              sel.IsValid(),
		ExceedsLimit:         sel.ExceedsLimit(),
		OverlappingSlotTimes: sel.OverlappingSlotTimes(),
	}
	if rng, ok := sel.Range(); ok {
		view.StartTime = rng.StartLabel()
		view.EndTime = rng.EndLabel()
		view.SlotCount = rng.Len()
	}
	if start, end, ierr := day.Interval(sel); ierr == nil {
		view.StartAt = &start
		view.EndAt = &end
	}
	return view, nil
}

func (q *scheduleQueriesImpl) loadDay(ctx context.Context, roomID uuid.UUID, date slot.Date) (slot.Day, error) {
	if _, err := q.rooms.FindByID(ctx, roomID); err != nil {
		return slot.Day{}, mapNotFound(err, errs.ErrRoomNotFound)
	}

	loc := q.engine.Location()
	dayStart, dayEnd := slot.DayBounds(date, loc)
	rows, err := q.reservations.ListOverlapping(ctx, roomID, dayStart, dayEnd)
	if err != nil {
		return slot.Day{}, err
	}

	bookings := make([]slot.Booking, 0, len(rows))
	for _, rv := range rows {
		if b, ok := slot.Project(date, rv.StartAt, rv.EndAt, loc); ok {
			bookings = append(bookings, b)
		}
	}
	return q.engine.Day(date, bookings, q.clock.Now()), nil
}
