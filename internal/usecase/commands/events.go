package commands

import (
	"context"
	"time"

	"room-reservation/internal/usecase/shared"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	JobKindReservationCreated  = "reservation_created"
	JobKindReservationCanceled = "reservation_canceled"
	JobKindReservationDeleted  = "reservation_deleted"

	TopicReservationCreated  = "reservation.created"
	TopicReservationCanceled = "reservation.canceled"
	TopicReservationDeleted  = "reservation.deleted"
)

// ReservationEvent is the outbox payload published for reservation changes.
type ReservationEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	RoomID        uuid.UUID `json:"room_id"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	Nickname      string    `json:"nickname"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func enqueueReservationEvent(ctx context.Context, tx shared.Tx, kind, topic string, ev ReservationEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, topic, payload, ev.OccurredAt)
}
