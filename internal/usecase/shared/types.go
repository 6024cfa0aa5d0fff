package shared

import (
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"

	"github.com/google/uuid"
)

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

// Write-side snapshots keep commands independent of read-side views.
type RoomSnapshot struct {
	ID          uuid.UUID
	Name        string
	Location    string
	Capacity    int
	Equipment   string
	Description string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *RoomSnapshot) ToDomain() *room.Room {
	return room.ReconstructRoom(s.ID, room.Details{
		Name:        s.Name,
		Location:    s.Location,
		Capacity:    s.Capacity,
		Equipment:   s.Equipment,
		Description: s.Description,
		Available:   s.Available,
	}, nil, s.CreatedAt, s.UpdatedAt)
}

type ReservationSnapshot struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	StartAt    time.Time
	EndAt      time.Time
	Nickname   string
	HolderName string
	HolderID   string
	Phone      string
	Purpose    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s *ReservationSnapshot) ToDomain() (*reservation.Reservation, error) {
	ts, err := reservation.NewTimeSlot(s.StartAt, s.EndAt)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		s.ID, s.RoomID, ts,
		reservation.ReconstructHolder(s.Nickname, s.HolderName, s.HolderID, s.Phone),
		reservation.ReconstructPurpose(s.Purpose),
		s.CreatedAt, s.UpdatedAt,
	), nil
}

type RoomImage struct {
	ID          uuid.UUID
	ObjectKey   string
	URL         string
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
	RunAt    time.Time
}

type AuditEntry struct {
	OccurredAt time.Time
	ClientIP   string
	Method     string
	URI        string
	Status     int
	Params     []byte
	RequestID  string
}
