package queries

import (
	"time"

	"room-reservation/internal/domain/slot"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	Capacity    int             `json:"capacity"`
	Equipment   string          `json:"equipment"`
	Description string          `json:"description"`
	Available   bool            `json:"available"`
	Images      []RoomImageView `json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type RoomImageView struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReservationView carries holder contact fields; handlers decide what is public.
type ReservationView struct {
	ID         uuid.UUID      `json:"id"`
	RoomID     uuid.UUID      `json:"room_id"`
	RoomName   string         `json:"room_name"`
	StartAt    time.Time      `json:"start_at"`
	EndAt      time.Time      `json:"end_at"`
	Nickname   string         `json:"nickname"`
	HolderName string         `json:"holder_name"`
	HolderID   string         `json:"holder_id"`
	Phone      string         `json:"phone"`
	Purpose    string         `json:"purpose"`
	Status     slot.Lifecycle `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
}

type AuditLogView struct {
	ID         uuid.UUID           `json:"id"`
	OccurredAt time.Time           `json:"occurred_at"`
	ClientIP   string              `json:"client_ip"`
	Method     string              `json:"method"`
	URI        string              `json:"uri"`
	Status     int                 `json:"status"`
	Params     map[string][]string `json:"params"`
	RequestID  string              `json:"request_id"`
}

type SlotView struct {
	Ordinal  int    `json:"ordinal"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Occupied bool   `json:"occupied"`
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

type DayGridView struct {
	RoomID uuid.UUID  `json:"room_id"`
	Date   string     `json:"date"`
	Slots  []SlotView `json:"slots"`
}

// SelectionView is the interactive state of a replayed selection.
// StartAt and EndAt are set only when the selection may be submitted.
type SelectionView struct {
	RoomID               uuid.UUID  `json:"room_id"`
	Date                 string     `json:"date"`
	State                string     `json:"state"`
	Picks                []string   `json:"picks"`
	StartTime            string     `json:"start_time,omitempty"`
	EndTime              string     `json:"end_time,omitempty"`
	SlotCount            int        `json:"slot_count"`
	IsComplete           bool       `json:"is_complete"`
	IsValid              bool       `json:"is_valid"`
	ExceedsLimit         bool       `json:"exceeds_limit"`
	OverlappingSlotTimes []string   `json:"overlapping_slot_times"`
	StartAt              *time.Time `json:"start_at,omitempty"`
	EndAt                *time.Time `json:"end_at,omitempty"`
}
