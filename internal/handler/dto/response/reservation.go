package response

import (
	"time"

	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReservationResponse is the public view; holder contact fields are omitted.
type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	RoomName  string    `json:"room_name"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Nickname  string    `json:"nickname"`
	Purpose   string    `json:"purpose"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminReservationResponse struct {
	ReservationResponse
	HolderName string `json:"holder_name"`
	HolderID   string `json:"holder_id"`
	Phone      string `json:"phone"`
}

type AdminReservationListResponse struct {
	Reservations []*AdminReservationResponse `json:"reservations"`
	NextCursor   string                      `json:"next_cursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:        v.ID,
		RoomID:    v.RoomID,
		RoomName:  v.RoomName,
		StartAt:   v.StartAt,
		EndAt:     v.EndAt,
		Nickname:  v.Nickname,
		Purpose:   v.Purpose,
		Status:    v.Status.String(),
		CreatedAt: v.CreatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(views))
	for i, v := range views {
		res[i] = FromReservationView(v)
	}
	return res
}

func FromAdminReservationView(v *queries.ReservationView) *AdminReservationResponse {
	return &AdminReservationResponse{
		ReservationResponse: *FromReservationView(v),
		HolderName:          v.HolderName,
		HolderID:            v.HolderID,
		Phone:               v.Phone,
	}
}

func FromAdminReservationViews(views []*queries.ReservationView, next *queries.Cursor) *AdminReservationListResponse {
	items := make([]*AdminReservationResponse, len(views))
	for i, v := range views {
		items[i] = FromAdminReservationView(v)
	}
	resp := &AdminReservationListResponse{Reservations: items}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
