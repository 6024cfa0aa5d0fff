package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AuditReadStore interface {
	ListFirstPage(ctx context.Context, limit int32) ([]*AuditLogView, error)
	ListKeyset(ctx context.Context, lastOccurredAt time.Time, lastID uuid.UUID, limit int32) ([]*AuditLogView, error)
}

type AuditQueries interface {
	List(ctx context.Context, cursor *Cursor, limit int) ([]*AuditLogView, *Cursor, error)
}

type auditQueriesImpl struct {
	readStore AuditReadStore
}

func NewAuditQueries(readStore AuditReadStore) AuditQueries {
	return &auditQueriesImpl{readStore: readStore}
}

func (q *auditQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*AuditLogView, *Cursor, error) {
	return page(cursor, limit,
		func(lim int32) ([]*AuditLogView, error) {
			return q.readStore.ListFirstPage(ctx, lim)
		},
		func(after time.Time, id uuid.UUID, lim int32) ([]*AuditLogView, error) {
			return q.readStore.ListKeyset(ctx, after, id, lim)
		},
		func(v *AuditLogView) (time.Time, uuid.UUID) { return v.OccurredAt, v.ID },
	)
}
