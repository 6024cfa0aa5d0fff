package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Room errors
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomUnavailable = errors.New("room is not available")

	// Reservation errors
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrSubmissionConflict    = errors.New("reservation conflicts with a concurrent submission")
	ErrAuthorizationMismatch = errors.New("reservation credentials do not match")

	// Selection errors
	ErrEmptySelection   = errors.New("no slot selected")
	ErrRangeTooLong     = errors.New("selected range is too long")
	ErrRangeOverlaps    = errors.New("selected range overlaps an existing reservation")
	ErrInvalidSelection = errors.New("invalid selection")

	// Admin errors
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")

	// Storage errors
	ErrImageTooLarge     = errors.New("image is too large")
	ErrUnsupportedImage  = errors.New("unsupported image type")
	ErrImageUploadFailed = errors.New("image upload failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
