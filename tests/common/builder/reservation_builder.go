//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/slot"
	reqdto "room-reservation/internal/handler/dto/request"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	RoomName   string
	Date       string
	Slots      []string
	Nickname   string
	HolderName string
	HolderID   string
	Phone      string
	Purpose    string
	StartAt    time.Time
	EndAt      time.Time
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	loc := time.FixedZone("KST", 9*60*60)
	start := time.Date(2030, time.May, 1, 10, 0, 0, 0, loc)
	return &ReservationBuilder{
		ID:         uuid.New(),
		RoomID:     uuid.New(),
		RoomName:   "Seminar Room A",
		Date:       "2030-05-01",
		Slots:      []string{"10:00", "11:00"},
		Nickname:   "study-group",
		HolderName: "Kim Minji",
		HolderID:   "20231234",
		Phone:      "010-1234-5678",
		Purpose:    "weekly algorithm study",
		StartAt:    start,
		EndAt:      start.Add(2 * time.Hour),
		CreatedAt:  start.Add(-24 * time.Hour),
	}
}

func (b *ReservationBuilder) WithRoomID(id uuid.UUID) *ReservationBuilder {
	b.RoomID = id
	return b
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithSlots(slots ...string) *ReservationBuilder {
	b.Slots = slots
	return b
}

func (b *ReservationBuilder) WithHolder(name, id string) *ReservationBuilder {
	b.HolderName = name
	b.HolderID = id
	return b
}

func (b *ReservationBuilder) WithInterval(start, end time.Time) *ReservationBuilder {
	b.StartAt = start
	b.EndAt = end
	return b
}

func (b *ReservationBuilder) WithPhone(phone string) *ReservationBuilder {
	b.Phone = phone
	return b
}

func (b *ReservationBuilder) WithNickname(nickname string) *ReservationBuilder {
	b.Nickname = nickname
	return b
}

func (b *ReservationBuilder) WithPurpose(purpose string) *ReservationBuilder {
	b.Purpose = purpose
	return b
}

// BuildDomain validates the fields the way the create command does, with now
// one day before the reservation.
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	timeSlot, err := reservation.NewTimeSlot(b.StartAt, b.EndAt)
	if err != nil {
		return nil, err
	}
	holder, err := reservation.NewHolder(b.Nickname, b.HolderName, b.HolderID, b.Phone)
	if err != nil {
		return nil, err
	}
	purpose, err := reservation.NewPurpose(b.Purpose)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(reservation.DefaultWindow(), b.CreatedAt, b.RoomID, timeSlot, holder, purpose)
}

func (b *ReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:     b.RoomID,
		Date:       b.Date,
		Slots:      append([]string(nil), b.Slots...),
		Nickname:   b.Nickname,
		HolderName: b.HolderName,
		HolderID:   b.HolderID,
		Phone:      b.Phone,
		Purpose:    b.Purpose,
	}
}

func (b *ReservationBuilder) BuildCommand() commands.CreateReservationRequest {
	date, err := slot.ParseDate(b.Date)
	if err != nil {
		panic(err)
	}
	return commands.CreateReservationRequest{
		RoomID:     b.RoomID,
		Date:       date,
		Slots:      append([]string(nil), b.Slots...),
		Nickname:   b.Nickname,
		HolderName: b.HolderName,
		HolderID:   b.HolderID,
		Phone:      b.Phone,
		Purpose:    b.Purpose,
	}
}

func (b *ReservationBuilder) BuildCancelDTO() reqdto.CancelReservationRequest {
	return reqdto.CancelReservationRequest{
		HolderName: b.HolderName,
		HolderID:   b.HolderID,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:         b.ID,
		RoomID:     b.RoomID,
		RoomName:   b.RoomName,
		StartAt:    b.StartAt,
		EndAt:      b.EndAt,
		Nickname:   b.Nickname,
		HolderName: b.HolderName,
		HolderID:   b.HolderID,
		Phone:      b.Phone,
		Purpose:    b.Purpose,
		Status:     slot.LifecycleScheduled,
		CreatedAt:  b.CreatedAt,
	}
}
