package queries

import (
	"context"

	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListAvailable(ctx context.Context) ([]*RoomView, error)
	ListAll(ctx context.Context) ([]*RoomView, error)
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListAvailable(ctx context.Context) ([]*RoomView, error)
	ListAll(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	rv, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, errs.ErrRoomNotFound)
	}
	return rv, nil
}

func (q *roomQueriesImpl) ListAvailable(ctx context.Context) ([]*RoomView, error) {
	return q.readStore.ListAvailable(ctx)
}

func (q *roomQueriesImpl) ListAll(ctx context.Context) ([]*RoomView, error) {
	return q.readStore.ListAll(ctx)
}

func mapNotFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
