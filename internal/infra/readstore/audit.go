package readstore

import (
	"context"
	"log/slog"
	"time"

	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type AuditReadQueries interface {
	ListAuditLogsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.AuditLogs, error)
	ListAuditLogsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAuditLogsKeysetParams) ([]sqlc.AuditLogs, error)
}

type AuditReadStore struct {
	queries AuditReadQueries
	db      sqlc.DBTX
}

func NewAuditReadStore(queries AuditReadQueries, db sqlc.DBTX) *AuditReadStore {
	return &AuditReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AuditReadStore) ListFirstPage(ctx context.Context, limit int32) ([]*queries.AuditLogView, error) {
	rows, err := r.queries.ListAuditLogsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit logs first page", err)
	}
	return mapAuditRows(rows), nil
}

func (r *AuditReadStore) ListKeyset(ctx context.Context, lastOccurredAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.AuditLogView, error) {
	rows, err := r.queries.ListAuditLogsKeyset(ctx, r.db, sqlc.ListAuditLogsKeysetParams{
		OccurredAt: pgconv.TimeToPgtype(lastOccurredAt),
		ID:         lastID,
		Lim:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit logs keyset", err)
	}
	return mapAuditRows(rows), nil
}

func mapAuditRows(rows []sqlc.AuditLogs) []*queries.AuditLogView {
	result := make([]*queries.AuditLogView, len(rows))
	for i, row := range rows {
		params := map[string][]string{}
		if len(row.Params) > 0 {
			if err := json.Unmarshal(row.Params, &params); err != nil {
				// keep the record listable even if params were written by an older format
				slog.Warn("failed to decode audit params", "id", row.ID, "error", err.Error())
				params = map[string][]string{}
			}
		}
		result[i] = &queries.AuditLogView{
			ID:         row.ID,
			OccurredAt: pgconv.TimeFromPgtype(row.OccurredAt),
			ClientIP:   row.ClientIp,
			Method:     row.Method,
			URI:        row.Uri,
			Status:     int(row.Status),
			Params:     params,
			RequestID:  row.RequestID,
		}
	}
	return result
}
