package request

import (
	"room-reservation/internal/domain/slot"
	"room-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID     uuid.UUID `json:"room_id" binding:"required"`
	Date       string    `json:"date" binding:"required,datetime=2006-01-02"`
	Slots      []string  `json:"slots" binding:"required,min=1,max=32,dive,datetime=15:04"`
	Nickname   string    `json:"nickname" binding:"required,min=2,max=50"`
	HolderName string    `json:"holder_name" binding:"required,min=2,max=50"`
	HolderID   string    `json:"holder_id" binding:"required,digits,min=6,max=20"`
	Phone      string    `json:"phone" binding:"required,krphone"`
	Purpose    string    `json:"purpose" binding:"required,min=4,max=500"`
}

func (r *CreateReservationRequest) ToCommand() (commands.CreateReservationRequest, error) {
	date, err := slot.ParseDate(r.Date)
	if err != nil {
		return commands.CreateReservationRequest{}, err
	}
	return commands.CreateReservationRequest{
		RoomID:     r.RoomID,
		Date:       date,
		Slots:      r.Slots,
		Nickname:   r.Nickname,
		HolderName: r.HolderName,
		HolderID:   r.HolderID,
		Phone:      r.Phone,
		Purpose:    r.Purpose,
	}, nil
}

type CancelReservationRequest struct {
	HolderName string `json:"holder_name" binding:"required"`
	HolderID   string `json:"holder_id" binding:"required"`
}

func (r *CancelReservationRequest) ToCommand() commands.CancelReservationRequest {
	return commands.CancelReservationRequest{
		HolderName: r.HolderName,
		HolderID:   r.HolderID,
	}
}

// EvaluateSelectionRequest replays picks in order; an empty list yields the empty state.
type EvaluateSelectionRequest struct {
	Date  string   `json:"date" binding:"required,datetime=2006-01-02"`
	Slots []string `json:"slots" binding:"max=32,dive,datetime=15:04"`
}
