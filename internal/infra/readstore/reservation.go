package readstore

import (
	"context"
	"time"

	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListOverlappingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingReservationsParams) ([]sqlc.Reservations, error)
	ListReservationsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListReservationsFirstPageRow, error)
	ListReservationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsKeysetParams) ([]sqlc.ListReservationsKeysetRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation by id", err)
	}
	return &queries.ReservationView{
		ID:         row.ID,
		RoomID:     row.RoomID,
		RoomName:   row.RoomName,
		StartAt:    pgconv.TimeFromPgtype(row.StartAt),
		EndAt:      pgconv.TimeFromPgtype(row.EndAt),
		Nickname:   row.Nickname,
		HolderName: row.HolderName,
		HolderID:   row.HolderID,
		Phone:      row.Phone,
		Purpose:    row.Purpose,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *ReservationReadStore) ListOverlapping(ctx context.Context, roomID uuid.UUID, start, end time.Time) ([]*queries.ReservationView, error) {
	rows, err := r.overlapping(ctx, roomID, start, end)
	if err != nil {
		return nil, err
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationView{
			ID:         row.ID,
			RoomID:     row.RoomID,
			StartAt:    pgconv.TimeFromPgtype(row.StartAt),
			EndAt:      pgconv.TimeFromPgtype(row.EndAt),
			Nickname:   row.Nickname,
			HolderName: row.HolderName,
			HolderID:   row.HolderID,
			Phone:      row.Phone,
			Purpose:    row.Purpose,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

// Snapshot variants serve the write side; inside a transaction they see its own writes.

func (r *ReservationReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation by id", err)
	}
	return &shared.ReservationSnapshot{
		ID:         row.ID,
		RoomID:     row.RoomID,
		StartAt:    pgconv.TimeFromPgtype(row.StartAt),
		EndAt:      pgconv.TimeFromPgtype(row.EndAt),
		Nickname:   row.Nickname,
		HolderName: row.HolderName,
		HolderID:   row.HolderID,
		Phone:      row.Phone,
		Purpose:    row.Purpose,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReservationReadStore) SnapshotsOverlapping(ctx context.Context, roomID uuid.UUID, start, end time.Time) ([]shared.ReservationSnapshot, error) {
	rows, err := r.overlapping(ctx, roomID, start, end)
	if err != nil {
		return nil, err
	}
	result := make([]shared.ReservationSnapshot, len(rows))
	for i, row := range rows {
		result[i] = shared.ReservationSnapshot{
			ID:         row.ID,
			RoomID:     row.RoomID,
			StartAt:    pgconv.TimeFromPgtype(row.StartAt),
			EndAt:      pgconv.TimeFromPgtype(row.EndAt),
			Nickname:   row.Nickname,
			HolderName: row.HolderName,
			HolderID:   row.HolderID,
			Phone:      row.Phone,
			Purpose:    row.Purpose,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}

func (r *ReservationReadStore) overlapping(ctx context.Context, roomID uuid.UUID, start, end time.Time) ([]sqlc.Reservations, error) {
	rows, err := r.queries.ListOverlappingReservations(ctx, r.db, sqlc.ListOverlappingReservationsParams{
		RoomID:      roomID,
		WindowStart: pgconv.TimeToPgtype(start),
		WindowEnd:   pgconv.TimeToPgtype(end),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping reservations", err)
	}
	return rows, nil
}

func (r *ReservationReadStore) ListFirstPage(ctx context.Context, limit int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations first page", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationView{
			ID:         row.ID,
			RoomID:     row.RoomID,
			RoomName:   row.RoomName,
			StartAt:    pgconv.TimeFromPgtype(row.StartAt),
			EndAt:      pgconv.TimeFromPgtype(row.EndAt),
			Nickname:   row.Nickname,
			HolderName: row.HolderName,
			HolderID:   row.HolderID,
			Phone:      row.Phone,
			Purpose:    row.Purpose,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReservationReadStore) ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsKeyset(ctx, r.db, sqlc.ListReservationsKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Lim:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations keyset", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationView{
			ID:         row.ID,
			RoomID:     row.RoomID,
			RoomName:   row.RoomName,
			StartAt:    pgconv.TimeFromPgtype(row.StartAt),
			EndAt:      pgconv.TimeFromPgtype(row.EndAt),
			Nickname:   row.Nickname,
			HolderName: row.HolderName,
			HolderID:   row.HolderID,
			Phone:      row.Phone,
			Purpose:    row.Purpose,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
