package repository

import (
	"context"

	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/shared"
)

type AuditWriteQueries interface {
	CreateAuditLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAuditLogParams) error
}

type AuditRepository struct {
	queries AuditWriteQueries
	db      sqlc.DBTX
}

func NewAuditRepository(queries AuditWriteQueries, db sqlc.DBTX) *AuditRepository {
	return &AuditRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AuditRepository) Create(ctx context.Context, tx sqlc.DBTX, entry shared.AuditEntry) error {
	params := sqlc.CreateAuditLogParams{
		OccurredAt: pgconv.TimeToPgtype(entry.OccurredAt),
		ClientIp:   entry.ClientIP,
		Method:     entry.Method,
		Uri:        entry.URI,
		Status:     int32(entry.Status), // #nosec G115 -- HTTP status codes fit in int32
		Params:     entry.Params,
		RequestID:  entry.RequestID,
	}
	if params.Params == nil {
		params.Params = []byte("{}")
	}

	if err := r.queries.CreateAuditLog(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create audit log", err)
	}
	return nil
}
