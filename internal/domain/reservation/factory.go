package reservation

import (
	"room-reservation/internal/domain/room"
	"room-reservation/internal/pkg/clock"
)

type Factory struct {
	Clock  clock.Clock
	Window Window
}

func NewFactory(clock clock.Clock, window Window) *Factory {
	return &Factory{
		Clock:  clock,
		Window: window,
	}
}

func (f *Factory) CreateReservation(
	roomEntity *room.Room,
	timeSlot TimeSlot,
	holder Holder,
	purpose Purpose,
) (*Reservation, error) {
	if !roomEntity.Available() {
		return nil, ErrRoomUnavailable
	}

	return NewReservation(
		f.Window,
		f.Clock.Now(),
		roomEntity.ID(),
		timeSlot,
		holder,
		purpose,
	)
}
