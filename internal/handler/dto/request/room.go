package request

import (
	"room-reservation/internal/pkg/patch"
	"room-reservation/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Location    string `json:"location" binding:"required,max=255"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	Equipment   string `json:"equipment" binding:"max=500"`
	Description string `json:"description" binding:"max=1000"`
	Available   *bool  `json:"available"`
}

func (r *CreateRoomRequest) ToCommand() commands.RoomInput {
	return commands.RoomInput{
		Name:        r.Name,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Equipment:   r.Equipment,
		Description: r.Description,
		Available:   patch.Coalesce(r.Available, true),
	}
}

type UpdateRoomRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Location    *string `json:"location" binding:"omitempty,max=255"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=1"`
	Equipment   *string `json:"equipment" binding:"omitempty,max=500"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Available   *bool   `json:"available"`
}

func (r *UpdateRoomRequest) ToCommand() commands.RoomPatch {
	return commands.RoomPatch{
		Name:        r.Name,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Equipment:   r.Equipment,
		Description: r.Description,
		Available:   r.Available,
	}
}
