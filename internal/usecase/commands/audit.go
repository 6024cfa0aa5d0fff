package commands

import (
	"context"
	"log/slog"
	"time"

	"room-reservation/internal/usecase/shared"

	"github.com/goccy/go-json"
)

type AuditRecord struct {
	OccurredAt time.Time
	ClientIP   string
	Method     string
	URI        string
	Status     int
	Params     map[string][]string
	RequestID  string
}

type AuditCommands interface {
	Record(ctx context.Context, rec AuditRecord) error
}

type auditUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewAuditUseCase(uow shared.UnitOfWork) AuditCommands {
	return &auditUseCaseImpl{uow: uow}
}

func (uc *auditUseCaseImpl) Record(ctx context.Context, rec AuditRecord) error {
	slog.InfoContext(ctx, "audit",
		"occurred_at", rec.OccurredAt,
		"client_ip", rec.ClientIP,
		"method", rec.Method,
		"uri", rec.URI,
		"status", rec.Status,
		"params", rec.Params,
		"request_id", rec.RequestID)

	params, err := json.Marshal(rec.Params)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Audit().Create(ctx, tx.DB(), shared.AuditEntry{
			OccurredAt: rec.OccurredAt,
			ClientIP:   rec.ClientIP,
			Method:     rec.Method,
			URI:        rec.URI,
			Status:     rec.Status,
			Params:     params,
			RequestID:  rec.RequestID,
		})
	})
}
