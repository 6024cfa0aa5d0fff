package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/slot"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID     uuid.UUID
	Date       slot.Date
	Slots      []string
	Nickname   string
	HolderName string
	HolderID   string
	Phone      string
	Purpose    string
}

type CreateReservationResult struct {
	ReservationID uuid.UUID
	RoomID        uuid.UUID
	StartAt       time.Time
	EndAt         time.Time
}

type CancelReservationRequest struct {
	HolderName string
	HolderID   string
}

type ReservationCommands interface {
	Create(ctx context.Context, req CreateReservationRequest) (*CreateReservationResult, error)
	Cancel(ctx context.Context, id uuid.UUID, req CancelReservationRequest) error
	AdminDelete(ctx context.Context, id uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow     shared.UnitOfWork
	engine  *slot.Engine
	factory *reservation.Factory
	locker  SubmissionLocker
	lockTTL time.Duration
	clock   clock.Clock
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	engine *slot.Engine,
	factory *reservation.Factory,
	locker SubmissionLocker,
	lockTTL time.Duration,
	clk clock.Clock,
) ReservationCommands {
	if locker == nil {
		locker = NewNoopLocker()
	}
	return &reservationUseCaseImpl{
		uow:     uow,
		engine:  engine,
		factory: factory,
		locker:  locker,
		lockTTL: lockTTL,
		clock:   clk,
	}
}

// Create gates the selection locally against the latest snapshot, then
// re-checks overlap inside a transaction holding the room row lock.
func (uc *reservationUseCaseImpl) Create(ctx context.Context, req CreateReservationRequest) (*CreateReservationResult, error) {
	reads := uc.uow.CommandReads()

	roomSnap, err := reads.RoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, markNotFound(err, errs.ErrRoomNotFound)
	}

	start, end, err := uc.resolveInterval(ctx, reads, req)
	if err != nil {
		return nil, err
	}

	res, err := uc.buildReservation(roomSnap, start, end, req)
	if err != nil {
		return nil, err
	}

	release, lockErr := uc.locker.Acquire(ctx, submissionLockKey(req.RoomID), uc.lockTTL)
	if lockErr != nil {
		slog.Warn("submission lock unavailable, relying on database",
			"room_id", req.RoomID, "error", lockErr.Error())
	} else {
		defer release()
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, derr := tx.Rooms().LockForUpdate(ctx, tx.DB(), req.RoomID)
		if derr != nil {
			return markNotFound(derr, errs.ErrRoomNotFound)
		}
		if !locked.Available {
			return errs.ErrRoomUnavailable
		}

		existing, derr := tx.Reads().ReservationsOverlapping(ctx, req.RoomID, start, end)
		if derr != nil {
			return derr
		}
		if len(existing) > 0 {
			return errs.Mark(errs.New("overlap detected at commit"), errs.ErrSubmissionConflict)
		}

		id, derr := tx.Reservations().Create(ctx, tx.DB(), res)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, errs.ErrSubmissionConflict)
			}
			return derr
		}
		createdID = id

		return enqueueReservationEvent(ctx, tx, JobKindReservationCreated, TopicReservationCreated, ReservationEvent{
			ReservationID: id,
			RoomID:        req.RoomID,
			StartAt:       start,
			EndAt:         end,
			Nickname:      res.Holder().Nickname(),
			OccurredAt:    uc.clock.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	return &CreateReservationResult{
		ReservationID: createdID,
		RoomID:        req.RoomID,
		StartAt:       start,
		EndAt:         end,
	}, nil
}

func (uc *reservationUseCaseImpl) resolveInterval(ctx context.Context, reads shared.CommandReads, req CreateReservationRequest) (time.Time, time.Time, error) {
	loc := uc.engine.Location()
	dayStart, dayEnd := slot.DayBounds(req.Date, loc)

	snaps, err := reads.ReservationsOverlapping(ctx, req.RoomID, dayStart, dayEnd)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	bookings := make([]slot.Booking, 0, len(snaps))
	for _, s := range snaps {
		if b, ok := slot.Project(req.Date, s.StartAt, s.EndAt, loc); ok {
			bookings = append(bookings, b)
		}
	}

	day := uc.engine.Day(req.Date, bookings, uc.clock.Now())
	sel, err := day.Replay(req.Slots)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(err, errs.ErrInvalidSelection)
	}

	start, end, err := day.Interval(sel)
	if err != nil {
		return time.Time{}, time.Time{}, markSelectionErr(err)
	}
	return start, end, nil
}

func (uc *reservationUseCaseImpl) buildReservation(roomSnap *shared.RoomSnapshot, start, end time.Time, req CreateReservationRequest) (*reservation.Reservation, error) {
	timeSlot, err := reservation.NewTimeSlot(start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	holder, err := reservation.NewHolder(req.Nickname, req.HolderName, req.HolderID, req.Phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	purpose, err := reservation.NewPurpose(req.Purpose)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	res, err := uc.factory.CreateReservation(roomSnap.ToDomain(), timeSlot, holder, purpose)
	if err != nil {
		if errors.Is(err, reservation.ErrRoomUnavailable) {
			return nil, errs.Mark(err, errs.ErrRoomUnavailable)
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return res, nil
}

// Cancel deletes a reservation when the holder name and id both match.
// A mismatch is reported without saying which field differed.
func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, req CancelReservationRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			return markNotFound(err, errs.ErrReservationNotFound)
		}

		res, err := snap.ToDomain()
		if err != nil {
			return err
		}
		if !res.CanBeCanceledBy(req.HolderName, req.HolderID) {
			return errs.ErrAuthorizationMismatch
		}

		if err := tx.Reservations().Delete(ctx, tx.DB(), id); err != nil {
			return markNotFound(err, errs.ErrReservationNotFound)
		}
		return enqueueReservationEvent(ctx, tx, JobKindReservationCanceled, TopicReservationCanceled, eventFromSnapshot(snap, uc.clock.Now()))
	})
}

func (uc *reservationUseCaseImpl) AdminDelete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			return markNotFound(err, errs.ErrReservationNotFound)
		}
		if err := tx.Reservations().Delete(ctx, tx.DB(), id); err != nil {
			return markNotFound(err, errs.ErrReservationNotFound)
		}
		return enqueueReservationEvent(ctx, tx, JobKindReservationDeleted, TopicReservationDeleted, eventFromSnapshot(snap, uc.clock.Now()))
	})
}

func eventFromSnapshot(snap *shared.ReservationSnapshot, now time.Time) ReservationEvent {
	return ReservationEvent{
		ReservationID: snap.ID,
		RoomID:        snap.RoomID,
		StartAt:       snap.StartAt,
		EndAt:         snap.EndAt,
		Nickname:      snap.Nickname,
		OccurredAt:    now,
	}
}

func submissionLockKey(roomID uuid.UUID) string {
	return "reservation:submit:" + roomID.String()
}

// markSelectionErr keeps the engine error in the chain so callers can still
// extract *slot.OverlapError.
func markSelectionErr(err error) error {
	switch {
	case errors.Is(err, slot.ErrEmptySelection):
		return errs.Mark(err, errs.ErrEmptySelection)
	case errors.Is(err, slot.ErrRangeOverlapsExisting):
		return errs.Mark(err, errs.ErrRangeOverlaps)
	case errors.Is(err, slot.ErrRangeTooLong):
		return errs.Mark(err, errs.ErrRangeTooLong)
	default:
		return errs.Mark(err, errs.ErrInvalidSelection)
	}
}

func markNotFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
