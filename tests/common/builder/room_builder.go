//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation/internal/domain/room"
	reqdto "room-reservation/internal/handler/dto/request"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID          uuid.UUID
	Name        string
	Location    string
	Capacity    int
	Equipment   string
	Description string
	Available   bool
	CreatedAt   time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:          uuid.New(),
		Name:        "Seminar Room A",
		Location:    "Engineering Hall 3F",
		Capacity:    8,
		Equipment:   "projector, whiteboard",
		Description: "quiet room facing the courtyard",
		Available:   true,
		CreatedAt:   time.Date(2030, time.January, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RoomBuilder) WithID(id uuid.UUID) *RoomBuilder {
	b.ID = id
	return b
}

func (b *RoomBuilder) WithName(name string) *RoomBuilder {
	b.Name = name
	return b
}

func (b *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	b.Capacity = capacity
	return b
}

func (b *RoomBuilder) AsUnavailable() *RoomBuilder {
	b.Available = false
	return b
}

func (b *RoomBuilder) WithLocation(location string) *RoomBuilder {
	b.Location = location
	return b
}

func (b *RoomBuilder) WithEquipment(equipment string) *RoomBuilder {
	b.Equipment = equipment
	return b
}

func (b *RoomBuilder) WithDescription(description string) *RoomBuilder {
	b.Description = description
	return b
}

func (b *RoomBuilder) Details() room.Details {
	return room.Details{
		Name:        b.Name,
		Location:    b.Location,
		Capacity:    b.Capacity,
		Equipment:   b.Equipment,
		Description: b.Description,
		Available:   b.Available,
	}
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(b.Details(), b.CreatedAt)
}

// BuildReconstructed skips validation and keeps the builder's ID.
func (b *RoomBuilder) BuildReconstructed() *room.Room {
	return room.ReconstructRoom(b.ID, b.Details(), nil, b.CreatedAt, b.CreatedAt)
}

func (b *RoomBuilder) BuildDTO() reqdto.CreateRoomRequest {
	available := b.Available
	return reqdto.CreateRoomRequest{
		Name:        b.Name,
		Location:    b.Location,
		Capacity:    b.Capacity,
		Equipment:   b.Equipment,
		Description: b.Description,
		Available:   &available,
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:          b.ID,
		Name:        b.Name,
		Location:    b.Location,
		Capacity:    b.Capacity,
		Equipment:   b.Equipment,
		Description: b.Description,
		Available:   b.Available,
		Images:      []queries.RoomImageView{},
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}
