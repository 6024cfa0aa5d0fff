package api

import (
	"log/slog"
	"net/http"

	"room-reservation/internal/domain/slot"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

var errorMappings = []errorMapping{
	{errs.ErrRoomNotFound, http.StatusNotFound, httperr.CodeRoomNotFound, "Room not found"},
	{errs.ErrRoomUnavailable, http.StatusConflict, httperr.CodeRoomUnavailable, "Room is not available"},
	{errs.ErrReservationNotFound, http.StatusNotFound, httperr.CodeReservationNotFound, "Reservation not found"},
	{errs.ErrEmptySelection, http.StatusBadRequest, httperr.CodeEmptySelection, "No slot selected"},
	{errs.ErrRangeTooLong, http.StatusBadRequest, httperr.CodeRangeTooLong, "Selected range is too long"},
	{errs.ErrRangeOverlaps, http.StatusBadRequest, httperr.CodeRangeOverlaps, "Selected range overlaps an existing reservation"},
	{errs.ErrInvalidSelection, http.StatusBadRequest, httperr.CodeInvalidSelection, "Invalid selection"},
	{errs.ErrSubmissionConflict, http.StatusConflict, httperr.CodeSubmissionConflict, "The slot was reserved by another request"},
	{errs.ErrAuthorizationMismatch, http.StatusForbidden, httperr.CodeAuthorizationMismatch, errs.ErrAuthorizationMismatch.Error()},
	{errs.ErrInvalidAdminCredentials, http.StatusUnauthorized, httperr.CodeInvalidCredentials, "Invalid admin password"},
	{errs.ErrImageTooLarge, http.StatusRequestEntityTooLarge, httperr.CodeImageTooLarge, "Image is too large"},
	{errs.ErrUnsupportedImage, http.StatusUnsupportedMediaType, httperr.CodeUnsupportedImage, "Unsupported image type"},
	{errs.ErrImageUploadFailed, http.StatusBadGateway, httperr.CodeImageUploadFailed, "Image upload failed"},
	{errs.ErrDomainValidation, http.StatusBadRequest, httperr.CodeValidationFailed, "Validation failed"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, httperr.CodeInvalidCursor, "Invalid cursor"},
}

// abortWithUsecaseError maps a marked usecase error onto the HTTP error envelope.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if !errs.Is(err, m.target) {
			continue
		}
		var detail any
		if m.target == errs.ErrRangeOverlaps {
			detail = overlapDetail(err)
		}
		httperr.AbortWithError(c, m.status, err, m.code, m.message, detail)
		return
	}

	slog.Error("unhandled usecase error",
		"request_id", middleware.GetRequestID(c),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 10))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error", nil)
}

func overlapDetail(err error) any {
	var overlap *slot.OverlapError
	if !errs.As(err, &overlap) {
		return nil
	}
	return gin.H{"conflictingSlots": overlap.Slots}
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, msg, nil)
}

func abortValidation(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidationFailed, "Invalid request", gin.H{"reason": err.Error()})
}
