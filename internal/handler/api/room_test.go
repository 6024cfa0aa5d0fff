//go:build unit

package api_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	nethttptest "net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"room-reservation/internal/domain/slot"
	"room-reservation/internal/handler/api"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"
	"room-reservation/tests/common/builder"
	"room-reservation/tests/common/httptest"
	"room-reservation/tests/common/testutil"
	commandsmock "room-reservation/tests/mock/commands"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
	mockSchedule *queriesmock.MockScheduleQueries
	handler      *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.mockSchedule = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries, s.mockSchedule)

	s.router.GET("/room", s.handler.ListAvailable)
	s.router.GET("/room/:id", s.handler.Get)
	s.router.GET("/room/:id/slots", s.handler.DayGrid)
	s.router.POST("/room/:id/selection", s.handler.EvaluateSelection)
	s.router.GET("/admin/room", s.handler.AdminList)
	s.router.POST("/admin/room", s.handler.Create)
	s.router.PUT("/admin/room/:id", s.handler.Update)
	s.router.DELETE("/admin/room/:id", s.handler.Delete)
	s.router.POST("/admin/room/:id/image", s.handler.UploadImage)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestListAvailable() {
	s.Run("success: images default to an empty list", func() {
		view := builder.NewRoomBuilder().BuildView()
		view.Images = nil
		s.mockQueries.EXPECT().ListAvailable(gomock.Any()).Return([]*queries.RoomView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room", nil, "")
		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(view.Name, response[0].Name)
		s.NotNil(response[0].Images)
		s.Contains(rec.Body.String(), `"images":[]`)
	})
}

func (s *RoomHandlerTestSuite) TestGet() {
	view := builder.NewRoomBuilder().BuildView()
	view.Images = []queries.RoomImageView{{ID: uuid.New(), URL: "http://cdn/a.png", ContentType: "image/png", SizeBytes: 10}}

	s.Run("success: returns the room with images", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room/"+view.ID.String(), nil, "")
		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Require().Len(response.Images, 1)
		s.Equal("http://cdn/a.png", response.Images[0].URL)
	})

	s.Run("error: unknown room", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room/"+view.ID.String(), nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeRoomNotFound)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room/123", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest)
	})
}

func (s *RoomHandlerTestSuite) TestDayGrid() {
	roomID := uuid.New()
	date := slot.NewDate(2030, time.May, 1)

	s.Run("success: passes the parsed date", func() {
		grid := &queries.DayGridView{RoomID: roomID, Date: date.String(), Slots: []queries.SlotView{
			{Ordinal: 0, Start: "08:00", End: "09:00", Eligible: true},
		}}
		s.mockSchedule.EXPECT().DayGrid(gomock.Any(), roomID, date).Return(grid, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, fmt.Sprintf("/room/%s/slots?date=2030-05-01", roomID), nil, "")
		var response resdto.DayGridResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2030-05-01", response.Date)
		s.Len(response.Slots, 1)
	})

	s.Run("error: date is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, fmt.Sprintf("/room/%s/slots", roomID), nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest)
	})

	s.Run("error: malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, fmt.Sprintf("/room/%s/slots?date=05-01-2030", roomID), nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest)
	})
}

func (s *RoomHandlerTestSuite) TestEvaluateSelection() {
	roomID := uuid.New()
	url := fmt.Sprintf("/room/%s/selection", roomID)
	date := slot.NewDate(2030, time.May, 1)

	s.Run("success: replays picks in order", func() {
		view := &queries.SelectionView{RoomID: roomID, Date: date.String(), State: "two_picked", Picks: []string{"12:00", "10:00"}, StartTime: "10:00", EndTime: "13:00", SlotCount: 3, IsComplete: true, IsValid: true}
		s.mockSchedule.EXPECT().EvaluateSelection(gomock.Any(), roomID, date, []string{"12:00", "10:00"}).Return(view, nil).Times(1)

		body := map[string]any{"date": "2030-05-01", "slots": []string{"12:00", "10:00"}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		var response resdto.SelectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("10:00", response.StartTime)
		s.Equal("13:00", response.EndTime)
	})

	s.Run("error: unknown slot label", func() {
		s.mockSchedule.EXPECT().EvaluateSelection(gomock.Any(), roomID, date, []string{"07:00"}).
			Return(nil, errs.Mark(slot.ErrUnknownSlot, errs.ErrInvalidSelection)).Times(1)

		body := map[string]any{"date": "2030-05-01", "slots": []string{"07:00"}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidSelection)
	})

	s.Run("error: missing date", func() {
		body := map[string]any{"slots": []string{"10:00"}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidationFailed)
	})
}

type testCaseRoom struct {
	name       string
	mutate     testutil.Mutation
	expectCode int
}

func (s *RoomHandlerTestSuite) TestCreate() {
	url := "/admin/room"
	reqBody := builder.NewRoomBuilder().BuildDTO()
	newID := uuid.New()

	s.Run("success: returns 201 with id and Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToCommand()).Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		var response resdto.RoomIDResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(newID, response.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/room/" + newID.String()})
	})

	s.Run("success: available defaults to true", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Cond(func(x any) bool {
			in, ok := x.(commands.RoomInput)
			return ok && in.Available
		})).Return(newID, nil).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("available", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseRoom{
			{name: "name boundary OK (100 chars)", mutate: testutil.Field("name", strings.Repeat("a", 100)), expectCode: http.StatusCreated},
			{name: "name boundary invalid (101 chars)", mutate: testutil.Field("name", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
			{name: "capacity boundary OK (1)", mutate: testutil.Field("capacity", 1), expectCode: http.StatusCreated},
			{name: "capacity boundary invalid (0)", mutate: testutil.Field("capacity", 0), expectCode: http.StatusBadRequest},
			{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: location", mutate: testutil.Field("location", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(newID, nil)
				}
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})
}

func (s *RoomHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/admin/room/" + id.String()

	s.Run("success: only supplied fields are set", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Cond(func(x any) bool {
			p, ok := x.(commands.RoomPatch)
			return ok && p.Capacity != nil && *p.Capacity == 12 && p.Name == nil && p.Available == nil
		})).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"capacity": 12}, "")
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	})

	s.Run("error: empty patch", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidationFailed)
	})

	s.Run("error: unknown room", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"name": "Renamed"}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeRoomNotFound)
	})
}

func (s *RoomHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/room/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown room", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/room/"+id.String(), nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeRoomNotFound)
	})
}

func (s *RoomHandlerTestSuite) TestUploadImage() {
	id := uuid.New()
	url := fmt.Sprintf("/admin/room/%s/image", id)
	png := []byte("\x89PNG\r\n\x1a\nfake")

	s.Run("success: forwards filename, type and size", func() {
		img := &shared.RoomImage{ID: uuid.New(), ObjectKey: "rooms/x/a.png", URL: "http://cdn/a.png", ContentType: "image/png", SizeBytes: int64(len(png))}
		s.mockCommands.EXPECT().UploadImage(gomock.Any(), id, gomock.Cond(func(x any) bool {
			up, ok := x.(commands.ImageUpload)
			return ok && up.Filename == "a.png" && up.ContentType == "image/png" && up.Size == int64(len(png))
		})).Return(img, nil).Times(1)

		rec := s.upload(url, "file", "a.png", "image/png", png)
		var response resdto.RoomImageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(img.URL, response.URL)
	})

	s.Run("error: file field is required", func() {
		rec := s.upload(url, "other", "a.png", "image/png", png)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest)
	})

	s.Run("error: maps upload errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"too large", errs.ErrImageTooLarge, http.StatusRequestEntityTooLarge, httperr.CodeImageTooLarge},
			{"unsupported", errs.ErrUnsupportedImage, http.StatusUnsupportedMediaType, httperr.CodeUnsupportedImage},
			{"storage failure", errs.ErrImageUploadFailed, http.StatusBadGateway, httperr.CodeImageUploadFailed},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UploadImage(gomock.Any(), id, gomock.Any()).Return(nil, tc.err).Times(1)

				rec := s.upload(url, "file", "a.png", "image/png", png)
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

func (s *RoomHandlerTestSuite) upload(url, field, filename, contentType string, data []byte) *nethttptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	s.Require().NoError(err)
	_, err = part.Write(data)
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := nethttptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := nethttptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}
