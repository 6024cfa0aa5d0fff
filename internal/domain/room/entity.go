package room

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName      = errors.New("room name cannot be empty")
	ErrRoomNameTooLong    = errors.New("room name is too long (max 100 characters)")
	ErrEmptyLocation      = errors.New("room location cannot be empty")
	ErrLocationTooLong    = errors.New("room location is too long (max 255 characters)")
	ErrEquipmentTooLong   = errors.New("room equipment is too long (max 500 characters)")
	ErrInvalidCapacity    = errors.New("room capacity must be positive")
	ErrDescriptionTooLong = errors.New("room description is too long (max 1000 characters)")
)

const (
	MaxRoomNameLength    = 100
	MaxLocationLength    = 255
	MaxEquipmentLength   = 500
	MaxDescriptionLength = 1000
)

type Room struct {
	id          uuid.UUID
	name        string
	location    string
	capacity    int
	equipment   string
	description string
	available   bool
	images      []string
	createdAt   time.Time
	updatedAt   time.Time
}

// Details is the editable part of a room.
type Details struct {
	Name        string
	Location    string
	Capacity    int
	Equipment   string
	Description string
	Available   bool
}

func NewRoom(d Details, now time.Time) (*Room, error) {
	d, err := validateDetails(d)
	if err != nil {
		return nil, err
	}

	return &Room{
		id:          uuid.New(),
		name:        d.Name,
		location:    d.Location,
		capacity:    d.Capacity,
		equipment:   d.Equipment,
		description: d.Description,
		available:   d.Available,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRoom(id uuid.UUID, d Details, images []string, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:          id,
		name:        d.Name,
		location:    d.Location,
		capacity:    d.Capacity,
		equipment:   d.Equipment,
		description: d.Description,
		available:   d.Available,
		images:      images,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Room) Update(d Details, now time.Time) error {
	d, err := validateDetails(d)
	if err != nil {
		return err
	}
	r.name = d.Name
	r.location = d.Location
	r.capacity = d.Capacity
	r.equipment = d.Equipment
	r.description = d.Description
	r.available = d.Available
	r.updatedAt = now
	return nil
}

func (r *Room) Details() Details {
	return Details{
		Name:        r.name,
		Location:    r.location,
		Capacity:    r.capacity,
		Equipment:   r.equipment,
		Description: r.description,
		Available:   r.available,
	}
}

func validateDetails(d Details) (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Location = strings.TrimSpace(d.Location)
	d.Equipment = strings.TrimSpace(d.Equipment)
	d.Description = strings.TrimSpace(d.Description)

	switch {
	case d.Name == "":
		return Details{}, ErrEmptyRoomName
	case utf8.RuneCountInString(d.Name) > MaxRoomNameLength:
		return Details{}, ErrRoomNameTooLong
	case d.Location == "":
		return Details{}, ErrEmptyLocation
	case utf8.RuneCountInString(d.Location) > MaxLocationLength:
		return Details{}, ErrLocationTooLong
	case d.Capacity <= 0:
		return Details{}, ErrInvalidCapacity
	case utf8.RuneCountInString(d.Equipment) > MaxEquipmentLength:
		return Details{}, ErrEquipmentTooLong
	case utf8.RuneCountInString(d.Description) > MaxDescriptionLength:
		return Details{}, ErrDescriptionTooLong
	default:
		return d, nil
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Location() string     { return r.location }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Equipment() string    { return r.equipment }
func (r *Room) Description() string  { return r.description }
func (r *Room) Available() bool      { return r.available }
func (r *Room) Images() []string     { return append([]string(nil), r.images...) }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
