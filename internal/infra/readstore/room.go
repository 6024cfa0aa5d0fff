package readstore

import (
	"context"

	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	ListAvailableRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Rooms, error)
	ListRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Rooms, error)
	ListRoomImagesByRoomIDs(ctx context.Context, db sqlc.DBTX, roomIds []uuid.UUID) ([]sqlc.RoomImages, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room by id", err)
	}

	views, err := r.withImages(ctx, []sqlc.Rooms{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *RoomReadStore) ListAvailable(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListAvailableRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}
	return r.withImages(ctx, rows)
}

func (r *RoomReadStore) ListAll(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	return r.withImages(ctx, rows)
}

// withImages loads the images of all rows in one query.
func (r *RoomReadStore) withImages(ctx context.Context, rows []sqlc.Rooms) ([]*queries.RoomView, error) {
	result := make([]*queries.RoomView, len(rows))
	if len(rows) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, len(rows))
	byID := make(map[uuid.UUID]*queries.RoomView, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
		result[i] = mapRoomRow(row)
		byID[row.ID] = result[i]
	}

	images, err := r.queries.ListRoomImagesByRoomIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room images", err)
	}
	for _, img := range images {
		if rv, ok := byID[img.RoomID]; ok {
			rv.Images = append(rv.Images, queries.RoomImageView{
				ID:          img.ID,
				URL:         img.Url,
				ContentType: img.ContentType,
				SizeBytes:   img.SizeBytes,
				CreatedAt:   pgconv.TimeFromPgtype(img.CreatedAt),
			})
		}
	}
	return result, nil
}

func mapRoomRow(row sqlc.Rooms) *queries.RoomView {
	return &queries.RoomView{
		ID:          row.ID,
		Name:        row.Name,
		Location:    row.Location,
		Capacity:    int(row.Capacity),
		Equipment:   row.Equipment,
		Description: row.Description,
		Available:   row.Available,
		Images:      []queries.RoomImageView{},
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
