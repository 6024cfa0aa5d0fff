package shared

import (
	"context"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"
	sqlc "room-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Rooms() RoomRepository
	Notifications() NotificationRepository
	Audit() AuditRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// ReservationsOverlapping returns reservations of the room intersecting [start, end).
	ReservationsOverlapping(ctx context.Context, roomID uuid.UUID, start, end time.Time) ([]ReservationSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, r *room.Room) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	// LockForUpdate serializes submissions for one room until the transaction ends.
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*RoomSnapshot, error)
	AddImage(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, image RoomImage) (*RoomImage, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error
}

type AuditRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, entry AuditEntry) error
}
