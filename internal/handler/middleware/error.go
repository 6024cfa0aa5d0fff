package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const panicStackLines = 12

// ErrorHandler writes the envelope of the last public error when a handler
// recorded one without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil))
	}
}

// NoRoute answers unknown paths with the standard error envelope.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httperr.NewResponse(http.StatusNotFound, httperr.CodeNotFound, "Resource not found", nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			if !ok {
				err = errs.New(fmt.Sprint(rec))
			}
			slog.ErrorContext(c.Request.Context(), "recovered from panic",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
				"stack", errs.ExtractStackLines(errs.Wrap(err, "panic"), panicStackLines))

			c.AbortWithStatusJSON(http.StatusInternalServerError,
				httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil))
		}()
		c.Next()
	}
}
