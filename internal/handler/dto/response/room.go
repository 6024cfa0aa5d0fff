package response

import (
	"time"

	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Location    string              `json:"location"`
	Capacity    int                 `json:"capacity"`
	Equipment   string              `json:"equipment"`
	Description string              `json:"description"`
	Available   bool                `json:"available"`
	Images      []RoomImageResponse `json:"images"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type RoomImageResponse struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoomIDResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var resp RoomResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	if resp.Images == nil {
		resp.Images = []RoomImageResponse{}
	}
	return &resp, nil
}

func FromRoomViews(views []*queries.RoomView) ([]*RoomResponse, error) {
	res := make([]*RoomResponse, len(views))
	for i, v := range views {
		r, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

func FromRoomImage(img *shared.RoomImage) (*RoomImageResponse, error) {
	var resp RoomImageResponse
	if err := copier.Copy(&resp, img); err != nil {
		return nil, err
	}
	return &resp, nil
}
