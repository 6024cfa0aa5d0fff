package repository

import (
	"context"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (int64, error)
	DeleteRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	LockRoomForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	CreateRoomImage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomImageParams) (sqlc.RoomImages, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) Create(ctx context.Context, tx sqlc.DBTX, rm *room.Room) (uuid.UUID, error) {
	params := sqlc.CreateRoomParams{
		ID:          rm.ID(),
		Name:        rm.Name(),
		Location:    rm.Location(),
		Capacity:    int32(rm.Capacity()), // #nosec G115 -- capacity is validated positive and small
		Equipment:   rm.Equipment(),
		Description: rm.Description(),
		Available:   rm.Available(),
		CreatedAt:   pgconv.TimeToPgtype(rm.CreatedAt()),
	}

	id, err := r.queries.CreateRoom(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error {
	params := sqlc.UpdateRoomParams{
		ID:          rm.ID(),
		Name:        rm.Name(),
		Location:    rm.Location(),
		Capacity:    int32(rm.Capacity()), // #nosec G115 -- capacity is validated positive and small
		Equipment:   rm.Equipment(),
		Description: rm.Description(),
		Available:   rm.Available(),
		UpdatedAt:   pgconv.TimeToPgtype(rm.UpdatedAt()),
	}

	affected, err := r.queries.UpdateRoom(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete cascades to the room's reservations and images.
func (r *RoomRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteRoom(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.RoomSnapshot, error) {
	row, err := r.queries.LockRoomForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	return roomRowToSnapshot(row), nil
}

func (r *RoomRepository) AddImage(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, image shared.RoomImage) (*shared.RoomImage, error) {
	row, err := r.queries.CreateRoomImage(ctx, tx, sqlc.CreateRoomImageParams{
		RoomID:      roomID,
		ObjectKey:   image.ObjectKey,
		Url:         image.URL,
		ContentType: image.ContentType,
		SizeBytes:   image.SizeBytes,
	})
	if err != nil {
		if infra.KindOf(err) == infra.KindForeignKeyViolated {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to create room image", err)
	}
	return &shared.RoomImage{
		ID:          row.ID,
		ObjectKey:   row.ObjectKey,
		URL:         row.Url,
		ContentType: row.ContentType,
		SizeBytes:   row.SizeBytes,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func roomRowToSnapshot(row sqlc.Rooms) *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:          row.ID,
		Name:        row.Name,
		Location:    row.Location,
		Capacity:    int(row.Capacity),
		Equipment:   row.Equipment,
		Description: row.Description,
		Available:   row.Available,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
