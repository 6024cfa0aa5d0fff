package response

import "room-reservation/internal/usecase/queries"

type DayGridResponse = queries.DayGridView

type SelectionResponse = queries.SelectionView

type AuditLogListResponse struct {
	Logs       []*queries.AuditLogView `json:"logs"`
	NextCursor string                  `json:"next_cursor,omitempty"`
}

func FromAuditLogs(items []*queries.AuditLogView, next *queries.Cursor) *AuditLogListResponse {
	resp := &AuditLogListResponse{Logs: items}
	if resp.Logs == nil {
		resp.Logs = []*queries.AuditLogView{}
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
