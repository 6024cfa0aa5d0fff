package httperr

import (
	"github.com/gin-gonic/gin"
)

// Machine-readable error codes returned in error.code.
const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeForbidden             = "FORBIDDEN"
	CodeRoomNotFound          = "ROOM_NOT_FOUND"
	CodeRoomUnavailable       = "ROOM_UNAVAILABLE"
	CodeReservationNotFound   = "RESERVATION_NOT_FOUND"
	CodeEmptySelection        = "EMPTY_SELECTION"
	CodeRangeTooLong          = "RANGE_TOO_LONG"
	CodeRangeOverlaps         = "RANGE_OVERLAPS_EXISTING"
	CodeInvalidSelection      = "INVALID_SELECTION"
	CodeSubmissionConflict    = "SUBMISSION_CONFLICT"
	CodeAuthorizationMismatch = "AUTHORIZATION_MISMATCH"
	CodeInvalidCredentials    = "INVALID_ADMIN_CREDENTIALS"
	CodeInvalidCursor         = "INVALID_CURSOR"
	CodeImageTooLarge         = "IMAGE_TOO_LARGE"
	CodeUnsupportedImage      = "UNSUPPORTED_IMAGE"
	CodeImageUploadFailed     = "IMAGE_UPLOAD_FAILED"
	CodeRateLimited           = "RATE_LIMITED"
	CodeNotFound              = "NOT_FOUND"
	CodeInternal              = "INTERNAL_ERROR"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string, detail any) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, code, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
