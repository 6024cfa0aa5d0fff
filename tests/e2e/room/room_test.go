//go:build e2e

package room_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"room-reservation/internal/handler/dto/request"
	"room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/httperr"
	"room-reservation/tests/common/authtest"
	"room-reservation/tests/common/builder"
	"room-reservation/tests/common/dbtest"
	"room-reservation/tests/common/httptest"
	"room-reservation/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	roomsURL      = "/api/room"
	roomURL       = "/api/room/%s"
	daySlotsURL   = "/api/room/%s/slots?date=%s"
	selectionURL  = "/api/room/%s/selection"
	adminRoomsURL = "/api/admin/room"
	adminRoomURL  = "/api/admin/room/%s"
	roomImageURL  = "/api/admin/room/%s/image"
)

type RoomSuite struct {
	e2e.SharedSuite
}

func TestRoomSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RoomSuite))
}

func (s *RoomSuite) day(offset int) (string, time.Time) {
	loc, err := s.Config.App.Location()
	s.Require().NoError(err)
	now := time.Now().In(loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, offset)
	return midnight.Format(time.DateOnly), midnight
}

func (s *RoomSuite) TestDayGrid() {
	s.Run("future day: every free slot is eligible and booked ones are occupied", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Grid Room", 6)
		date, midnight := s.day(2)
		dbtest.CreateTestReservation(t, s.DB, roomID, midnight.Add(10*time.Hour), midnight.Add(12*time.Hour), "Lee Jiho", "20201111")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(daySlotsURL, roomID, date), nil, "")
		var grid response.DayGridResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &grid)

		require.Len(t, grid.Slots, 16)
		require.Equal(t, "08:00", grid.Slots[0].Start)
		require.Equal(t, "24:00", grid.Slots[15].End)
		for _, sv := range grid.Slots {
			occupied := sv.Start == "10:00" || sv.Start == "11:00"
			require.Equal(t, occupied, sv.Occupied, sv.Start)
			require.Equal(t, !occupied, sv.Eligible, sv.Start)
		}
	})

	s.Run("past day: every slot is past", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Yesterday Room", 6)
		date, _ := s.day(-1)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(daySlotsURL, roomID, date), nil, "")
		var grid response.DayGridResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &grid)
		for _, sv := range grid.Slots {
			require.False(t, sv.Eligible, sv.Start)
			require.Equal(t, "past", sv.Reason, sv.Start)
		}
	})

	s.Run("error: unknown room", func() {
		t := s.T()
		date, _ := s.day(1)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(daySlotsURL, uuid.New(), date), nil, "")
		httptest.AssertErrorCode(t, w, http.StatusNotFound, httperr.CodeRoomNotFound)
	})

	s.Run("error: malformed date", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Bad Date Room", 6)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(daySlotsURL, roomID, "2030-13-01"), nil, "")
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, httperr.CodeInvalidRequest)
	})
}

func (s *RoomSuite) TestEvaluateSelection() {
	evaluate := func(t *testing.T, roomID uuid.UUID, date string, picks ...string) response.SelectionResponse {
		t.Helper()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(selectionURL, roomID),
			request.EvaluateSelectionRequest{Date: date, Slots: picks}, "")
		var sel response.SelectionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &sel)
		return sel
	}

	s.Run("overlap names the conflicting slots", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Overlap Room", 6)
		date, midnight := s.day(2)
		dbtest.CreateTestReservation(t, s.DB, roomID, midnight.Add(10*time.Hour), midnight.Add(12*time.Hour), "Lee Jiho", "20201111")

		sel := evaluate(t, roomID, date, "10:00", "11:00")
		require.Equal(t, "two_picked", sel.State)
		require.Equal(t, "10:00", sel.StartTime)
		require.Equal(t, "12:00", sel.EndTime)
		require.False(t, sel.IsValid)
		require.Equal(t, []string{"10:00", "11:00"}, sel.OverlappingSlotTimes)
		require.Nil(t, sel.StartAt)
	})

	s.Run("whole day exceeds the limit", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Whole Day Room", 6)
		date, _ := s.day(2)

		sel := evaluate(t, roomID, date, "23:00", "08:00")
		require.Equal(t, 16, sel.SlotCount)
		require.True(t, sel.ExceedsLimit)
		require.True(t, sel.IsValid)
		require.Nil(t, sel.EndAt)
	})

	s.Run("same slot twice deselects", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Toggle Room", 6)
		date, _ := s.day(2)

		sel := evaluate(t, roomID, date, "08:00", "08:00")
		require.Equal(t, "empty", sel.State)
		require.Empty(t, sel.Picks)
		require.False(t, sel.IsValid)
	})

	s.Run("a range ending at 24:00 normalizes to the next midnight", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Midnight Room", 6)
		date, midnight := s.day(2)

		sel := evaluate(t, roomID, date, "23:00")
		require.Equal(t, "24:00", sel.EndTime)
		require.NotNil(t, sel.EndAt)
		require.True(t, sel.EndAt.Equal(midnight.AddDate(0, 0, 1)), "got %s", sel.EndAt)
	})
}

func (s *RoomSuite) TestAdminRooms() {
	s.Run("create, update, list and delete", func() {
		t := s.T()
		token := authtest.AdminAccess(t, s.Router)

		b := builder.NewRoomBuilder().WithName("Study Room B").WithCapacity(4)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminRoomsURL, b.BuildDTO(), token)
		var created response.RoomIDResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, fmt.Sprintf(roomURL, created.ID), w.Header().Get("Location"))

		available := false
		capacity := 6
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(adminRoomURL, created.ID),
			request.UpdateRoomRequest{Capacity: &capacity, Available: &available}, token)
		require.Equal(t, http.StatusNoContent, uw.Code, uw.Body.String())

		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, "")
		var public []response.RoomResponse
		httptest.AssertSuccessResponse(t, pw, http.StatusOK, &public)
		require.Empty(t, public, "unavailable rooms are hidden from guests")

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminRoomsURL, nil, token)
		var all []response.RoomResponse
		httptest.AssertSuccessResponse(t, aw, http.StatusOK, &all)
		require.Len(t, all, 1)
		require.Equal(t, "Study Room B", all[0].Name)
		require.Equal(t, 6, all[0].Capacity)
		require.False(t, all[0].Available)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(adminRoomURL, created.ID), nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "rooms"))
	})

	s.Run("error: mutations require an admin session", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminRoomsURL, builder.NewRoomBuilder().BuildDTO(), "")
		httptest.AssertErrorCode(t, w, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})

	s.Run("image upload is attached to the room", func() {
		t := s.T()
		token := authtest.AdminAccess(t, s.Router)
		roomID := dbtest.CreateTestRoom(t, s.DB, "Photo Room", 6)

		body, contentType := imageForm(t, "front view.png", "image/png", []byte("\x89PNG\r\n\x1a\nfake"))
		w := httptest.Do(t, s.Router, httptest.Request{
			Method:  http.MethodPost,
			Path:    fmt.Sprintf(roomImageURL, roomID),
			Body:    body,
			Token:   token,
			Headers: map[string]string{"Content-Type": contentType},
		})
		var img response.RoomImageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &img)
		require.Contains(t, img.URL, "rooms/"+roomID.String()+"/")
		require.Equal(t, "image/png", img.ContentType)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(roomURL, roomID), nil, "")
		var got response.RoomResponse
		httptest.AssertSuccessResponse(t, gw, http.StatusOK, &got)
		require.Len(t, got.Images, 1)
		require.Equal(t, img.ID, got.Images[0].ID)
	})

	s.Run("error: unsupported image type", func() {
		t := s.T()
		token := authtest.AdminAccess(t, s.Router)
		roomID := dbtest.CreateTestRoom(t, s.DB, "Text Room", 6)

		body, contentType := imageForm(t, "notes.txt", "text/plain", []byte("hello"))
		w := httptest.Do(t, s.Router, httptest.Request{
			Method:  http.MethodPost,
			Path:    fmt.Sprintf(roomImageURL, roomID),
			Body:    body,
			Token:   token,
			Headers: map[string]string{"Content-Type": contentType},
		})
		httptest.AssertErrorCode(t, w, http.StatusUnsupportedMediaType, httperr.CodeUnsupportedImage)
	})
}

func imageForm(t *testing.T, filename, partType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", partType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}
