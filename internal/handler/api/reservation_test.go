//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"room-reservation/internal/domain/slot"
	"room-reservation/internal/handler/api"
	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservation", s.handler.Create)
	s.router.GET("/reservation/:roomId", s.handler.ListByRoom)
	s.router.DELETE("/reservation/:id", s.handler.Cancel)
	s.router.GET("/admin/reservation", s.handler.AdminList)
	s.router.GET("/admin/reservation/:id", s.handler.AdminGet)
	s.router.DELETE("/admin/reservation/:id", s.handler.AdminDelete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     testutil.Mutation
	expectCode int
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservation"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildDTO()
	view := b.BuildView()

	s.Run("success: returns 201 with the public view and Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildCommand()).
			Return(&commands.CreateReservationResult{ReservationID: view.ID, RoomID: view.RoomID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/admin/reservation/" + view.ID.String()})
		s.Equal(view.ID, response.ID)
		s.Equal("scheduled", response.Status)
		s.NotContains(rec.Body.String(), b.HolderID)
		s.NotContains(rec.Body.String(), b.Phone)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseReservation{
			{name: "nickname boundary OK (2 chars)", mutate: testutil.Field("nickname", "ab"), expectCode: http.StatusCreated},
			{name: "nickname boundary invalid (1 char)", mutate: testutil.Field("nickname", "a"), expectCode: http.StatusBadRequest},
			{name: "nickname boundary invalid (51 chars)", mutate: testutil.Field("nickname", strings.Repeat("a", 51)), expectCode: http.StatusBadRequest},
			{name: "holder id boundary OK (6 digits)", mutate: testutil.Field("holder_id", "123456"), expectCode: http.StatusCreated},
			{name: "holder id boundary invalid (5 digits)", mutate: testutil.Field("holder_id", "12345"), expectCode: http.StatusBadRequest},
			{name: "purpose boundary OK (4 chars)", mutate: testutil.Field("purpose", "demo"), expectCode: http.StatusCreated},
			{name: "purpose boundary invalid (3 chars)", mutate: testutil.Field("purpose", "abc"), expectCode: http.StatusBadRequest},
		}

		format := []testCaseReservation{
			{name: "holder id with letters", mutate: testutil.Field("holder_id", "2023abcd"), expectCode: http.StatusBadRequest},
			{name: "phone without dashes", mutate: testutil.Field("phone", "01012345678"), expectCode: http.StatusBadRequest},
			{name: "phone with landline prefix", mutate: testutil.Field("phone", "02-1234-5678"), expectCode: http.StatusBadRequest},
			{name: "date in wrong layout", mutate: testutil.Field("date", "2030/05/01"), expectCode: http.StatusBadRequest},
			{name: "slot label out of range", mutate: testutil.Field("slots", []string{"25:00"}), expectCode: http.StatusBadRequest},
			{name: "empty slot list", mutate: testutil.Field("slots", []string{}), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseReservation{
			{name: "missing field: room_id", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: slots", mutate: testutil.Field("slots", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: holder_name", mutate: testutil.Field("holder_name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: phone", mutate: testutil.Field("phone", nil), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseReservation{bound, format, missing} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
							Return(&commands.CreateReservationResult{ReservationID: view.ID, RoomID: view.RoomID}, nil)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)
					}

					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorCode(s.T(), rec, tc.expectCode, httperr.CodeValidationFailed)
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{"room not found", errs.ErrRoomNotFound, http.StatusNotFound, httperr.CodeRoomNotFound},
			{"room unavailable", errs.ErrRoomUnavailable, http.StatusConflict, httperr.CodeRoomUnavailable},
			{"empty selection", errs.Mark(slot.ErrEmptySelection, errs.ErrEmptySelection), http.StatusBadRequest, httperr.CodeEmptySelection},
			{"range too long", errs.Mark(slot.ErrRangeTooLong, errs.ErrRangeTooLong), http.StatusBadRequest, httperr.CodeRangeTooLong},
			{"ineligible slot", errs.Mark(slot.ErrIneligibleSlot, errs.ErrInvalidSelection), http.StatusBadRequest, httperr.CodeInvalidSelection},
			{"concurrent submission", errs.ErrSubmissionConflict, http.StatusConflict, httperr.CodeSubmissionConflict},
			{"internal server error", errors.New("database error"), http.StatusInternalServerError, httperr.CodeInternal},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})

	s.Run("error: overlap carries the conflicting slot labels", func() {
		overlap := errs.Mark(&slot.OverlapError{Slots: []string{"10:00", "11:00"}}, errs.ErrRangeOverlaps)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, overlap).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		detail := httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeRangeOverlaps)
		s.Equal([]any{"10:00", "11:00"}, detail["conflictingSlots"])
	})
}

func (s *ReservationHandlerTestSuite) TestListByRoom() {
	roomID := uuid.New()
	url := fmt.Sprintf("/reservation/%s", roomID)

	s.Run("success: returns public views", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().WithRoomID(roomID).BuildView(),
			builder.NewReservationBuilder().WithRoomID(roomID).BuildView(),
		}
		s.mockQueries.EXPECT().ListUpcomingByRoom(gomock.Any(), roomID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.NotContains(rec.Body.String(), "holder_id")
	})

	s.Run("error: invalid room id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservation/not-a-uuid", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest)
	})

	s.Run("error: unknown room", func() {
		s.mockQueries.EXPECT().ListUpcomingByRoom(gomock.Any(), roomID).Return(nil, errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeRoomNotFound)
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/reservation/" + id.String()
	reqBody := builder.NewReservationBuilder().BuildCancelDTO()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, reqBody.ToCommand()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: holder mismatch is forbidden", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, gomock.Any()).Return(errs.ErrAuthorizationMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, httperr.CodeAuthorizationMismatch)
	})

	s.Run("error: unknown reservation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, gomock.Any()).Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeReservationNotFound)
	})

	s.Run("error: missing holder id", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("holder_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, requestMap, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidationFailed)
	})
}

func (s *ReservationHandlerTestSuite) TestAdminList() {
	s.Run("success: includes holder fields and the next cursor", func() {
		b := builder.NewReservationBuilder()
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().List(gomock.Any(), (*queries.Cursor)(nil), 5).
			Return([]*queries.ReservationView{b.BuildView()}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservation?limit=5", nil, "")
		var response resdto.AdminReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Reservations, 1)
		s.Equal(b.HolderID, response.Reservations[0].HolderID)
		s.Equal(b.Phone, response.Reservations[0].Phone)
		s.Equal("next-page", response.NextCursor)
	})

	s.Run("error: malformed cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), &queries.Cursor{After: "garbage"}, queries.DefaultListLimit).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservation?after=garbage", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidCursor)
	})
}

func (s *ReservationHandlerTestSuite) TestAdminGet() {
	s.Run("success: returns the reservation with holder fields", func() {
		b := builder.NewReservationBuilder()
		view := b.BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservation/"+view.ID.String(), nil, "")
		var response resdto.AdminReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(b.HolderID, response.HolderID)
		s.Equal(b.Phone, response.Phone)
	})

	s.Run("error: unknown reservation", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservation/"+id.String(), nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeReservationNotFound)
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservation/not-a-uuid", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidRequest)
	})
}

func (s *ReservationHandlerTestSuite) TestAdminDelete() {
	id := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().AdminDelete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/reservation/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown reservation", func() {
		s.mockCommands.EXPECT().AdminDelete(gomock.Any(), id).Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/reservation/"+id.String(), nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeReservationNotFound)
	})
}
