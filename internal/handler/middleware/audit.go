package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// AuditMiddleware records every mutating /api request after the handler ran.
// A failed write is logged and never changes the response.
func AuditMiddleware(recorder commands.AuditCommands, clk clock.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !isAudited(c.Request) {
			return
		}

		rec := commands.AuditRecord{
			OccurredAt: clk.Now(),
			ClientIP:   c.ClientIP(),
			Method:     c.Request.Method,
			URI:        c.Request.URL.RequestURI(),
			Status:     c.Writer.Status(),
			Params:     requestParams(c),
			RequestID:  GetRequestID(c),
		}

		if err := recorder.Record(context.WithoutCancel(c.Request.Context()), rec); err != nil {
			slog.Error("failed to record audit log",
				"request_id", rec.RequestID,
				"uri", rec.URI,
				"error", err.Error())
		}
	}
}

func isAudited(r *http.Request) bool {
	if !strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// requestParams merges query values with path parameters. Bodies are not captured.
func requestParams(c *gin.Context) map[string][]string {
	params := make(map[string][]string, len(c.Params))
	for k, v := range c.Request.URL.Query() {
		params[k] = append([]string(nil), v...)
	}
	for _, p := range c.Params {
		params[p.Key] = append(params[p.Key], p.Value)
	}
	return params
}
