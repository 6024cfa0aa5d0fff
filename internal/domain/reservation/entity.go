package reservation

import (
	"time"

	"room-reservation/internal/domain/slot"

	"github.com/google/uuid"
)

type Reservation struct {
	id        uuid.UUID
	roomID    uuid.UUID
	timeSlot  TimeSlot
	holder    Holder
	purpose   Purpose
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(
	window Window,
	now time.Time,
	roomID uuid.UUID,
	timeSlot TimeSlot,
	holder Holder,
	purpose Purpose,
) (*Reservation, error) {
	if err := window.Validate(timeSlot, now); err != nil {
		return nil, err
	}

	return &Reservation{
		id:        uuid.New(),
		roomID:    roomID,
		timeSlot:  timeSlot,
		holder:    holder,
		purpose:   purpose,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id, roomID uuid.UUID,
	timeSlot TimeSlot,
	holder Holder,
	purpose Purpose,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		roomID:    roomID,
		timeSlot:  timeSlot,
		holder:    holder,
		purpose:   purpose,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Lifecycle is derived from the clock and never stored.
func (r *Reservation) Lifecycle(now time.Time) slot.Lifecycle {
	return slot.Classify(r.timeSlot.Start(), r.timeSlot.End(), now)
}

func (r *Reservation) CanBeCanceledBy(name, holderID string) bool {
	return r.holder.Matches(name, holderID)
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) TimeSlot() TimeSlot   { return r.timeSlot }
func (r *Reservation) Holder() Holder       { return r.holder }
func (r *Reservation) Purpose() Purpose     { return r.purpose }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
