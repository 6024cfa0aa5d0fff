package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/patch"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type RoomInput struct {
	Name        string
	Location    string
	Capacity    int
	Equipment   string
	Description string
	Available   bool
}

// RoomPatch is a partial update; nil fields keep their current value.
type RoomPatch struct {
	Name        *string
	Location    *string
	Capacity    *int
	Equipment   *string
	Description *string
	Available   *bool
}

type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type RoomCommands interface {
	Create(ctx context.Context, in RoomInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p RoomPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, id uuid.UUID, upload ImageUpload) (*shared.RoomImage, error)
}

type roomUseCaseImpl struct {
	uow      shared.UnitOfWork
	storage  ImageStorage
	maxBytes int64
	clock    clock.Clock
}

func NewRoomUseCase(uow shared.UnitOfWork, storage ImageStorage, maxBytes int64, clk clock.Clock) RoomCommands {
	return &roomUseCaseImpl{
		uow:      uow,
		storage:  storage,
		maxBytes: maxBytes,
		clock:    clk,
	}
}

func (uc *roomUseCaseImpl) Create(ctx context.Context, in RoomInput) (uuid.UUID, error) {
	rm, err := room.NewRoom(room.Details(in), uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Rooms().Create(ctx, tx.DB(), rm)
		if derr != nil {
			return derr
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *roomUseCaseImpl) Update(ctx context.Context, id uuid.UUID, p RoomPatch) error {
	if patch.IsEmpty(p.Name, p.Location, p.Capacity, p.Equipment, p.Description, p.Available) {
		return errs.Mark(errs.New("empty room update"), errs.ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Rooms().LockForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return markNotFound(err, errs.ErrRoomNotFound)
		}

		rm := snap.ToDomain()
		current := rm.Details()
		next := room.Details{
			Name:        patch.Coalesce(p.Name, current.Name),
			Location:    patch.Coalesce(p.Location, current.Location),
			Capacity:    patch.Coalesce(p.Capacity, current.Capacity),
			Equipment:   patch.Coalesce(p.Equipment, current.Equipment),
			Description: patch.Coalesce(p.Description, current.Description),
			Available:   patch.Coalesce(p.Available, current.Available),
		}
		if err := rm.Update(next, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Rooms().Update(ctx, tx.DB(), rm); err != nil {
			return markNotFound(err, errs.ErrRoomNotFound)
		}
		return nil
	})
}

// Delete removes the room with its reservations and image records.
// Stored image objects are left for the bucket lifecycle policy.
func (uc *roomUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().Delete(ctx, tx.DB(), id); err != nil {
			return markNotFound(err, errs.ErrRoomNotFound)
		}
		return nil
	})
}

func (uc *roomUseCaseImpl) UploadImage(ctx context.Context, id uuid.UUID, upload ImageUpload) (*shared.RoomImage, error) {
	if uc.maxBytes > 0 && upload.Size > uc.maxBytes {
		return nil, errs.ErrImageTooLarge
	}
	contentType := strings.ToLower(strings.TrimSpace(upload.ContentType))
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, errs.ErrUnsupportedImage
	}

	if _, err := uc.uow.CommandReads().RoomByID(ctx, id); err != nil {
		return nil, markNotFound(err, errs.ErrRoomNotFound)
	}

	key := imageObjectKey(id, upload.Filename, ext)
	url, err := uc.storage.Put(ctx, key, upload.Body, upload.Size, contentType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrImageUploadFailed)
	}

	var saved *shared.RoomImage
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		img, derr := tx.Rooms().AddImage(ctx, tx.DB(), id, shared.RoomImage{
			ObjectKey:   key,
			URL:         url,
			ContentType: contentType,
			SizeBytes:   upload.Size,
		})
		if derr != nil {
			return markNotFound(derr, errs.ErrRoomNotFound)
		}
		saved = img
		return nil
	})
	if err != nil {
		if rmErr := uc.storage.Remove(ctx, key); rmErr != nil {
			slog.Warn("failed to remove orphaned room image", "key", key, "error", rmErr.Error())
		}
		return nil, err
	}
	return saved, nil
}

// imageObjectKey ignores the client file name except for a sanitized stem.
func imageObjectKey(roomID uuid.UUID, filename, ext string) string {
	stem := strings.TrimSuffix(path.Base(strings.ReplaceAll(filename, "\\", "/")), path.Ext(filename))
	stem = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return -1
		}
	}, stem)
	if len(stem) > 40 {
		stem = stem[:40]
	}
	if stem == "" {
		stem = "image"
	}
	return fmt.Sprintf("rooms/%s/%s-%s%s", roomID, uuid.NewString(), stem, ext)
}
