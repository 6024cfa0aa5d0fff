//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"room-reservation/internal/domain/slot"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/queries"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleQueriesTestSuite struct {
	suite.Suite
	reservations *queriesmock.MockReservationReadStore
	rooms        *queriesmock.MockRoomReadStore
	q            queries.ScheduleQueries
	roomID       uuid.UUID
	date         slot.Date
}

func (s *ScheduleQueriesTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.reservations = queriesmock.NewMockReservationReadStore(ctrl)
	s.rooms = queriesmock.NewMockRoomReadStore(ctrl)
	s.roomID = uuid.New()
	s.date = slot.NewDate(2030, time.May, 1)
	now := time.Date(2030, time.May, 1, 10, 30, 0, 0, kst)
	s.q = queries.NewScheduleQueries(s.rooms, s.reservations, slot.DefaultEngine(kst), clock.NewMockClock(now))
}

func TestScheduleQueriesSuite(t *testing.T) {
	suite.Run(t, new(ScheduleQueriesTestSuite))
}

func (s *ScheduleQueriesTestSuite) at(day, hour int) time.Time {
	return time.Date(2030, time.May, day, hour, 0, 0, 0, kst)
}

// expectDay stubs a day holding 12:00-14:00 and a reservation from the previous night.
func (s *ScheduleQueriesTestSuite) expectDay() {
	dayStart, dayEnd := s.at(1, 0), s.at(2, 0)
	s.rooms.EXPECT().FindByID(gomock.Any(), s.roomID).Return(&queries.RoomView{ID: s.roomID}, nil)
	s.reservations.EXPECT().ListOverlapping(gomock.Any(), s.roomID, dayStart, dayEnd).Return([]*queries.ReservationView{
		{ID: uuid.New(), RoomID: s.roomID, StartAt: time.Date(2030, time.April, 30, 23, 0, 0, 0, kst), EndAt: s.at(1, 1)},
		{ID: uuid.New(), RoomID: s.roomID, StartAt: s.at(1, 12), EndAt: s.at(1, 14)},
	}, nil)
}

func (s *ScheduleQueriesTestSuite) TestDayGrid() {
	s.expectDay()

	grid, err := s.q.DayGrid(context.Background(), s.roomID, s.date)
	s.Require().NoError(err)
	s.Equal("2030-05-01", grid.Date)
	s.Require().Len(grid.Slots, 16)

	s.Equal(queries.SlotView{Ordinal: 0, Start: "08:00", End: "09:00", Reason: string(slot.ReasonPast)}, grid.Slots[0])
	s.Equal(queries.SlotView{Ordinal: 2, Start: "10:00", End: "11:00", Eligible: true}, grid.Slots[2])
	s.Equal(queries.SlotView{Ordinal: 4, Start: "12:00", End: "13:00", Occupied: true, Reason: string(slot.ReasonOccupied)}, grid.Slots[4])
	s.True(grid.Slots[5].Occupied)
	s.True(grid.Slots[6].Eligible)
	s.Equal("24:00", grid.Slots[15].End)
}

func (s *ScheduleQueriesTestSuite) TestDayGrid_UnknownRoom() {
	s.rooms.EXPECT().FindByID(gomock.Any(), s.roomID).Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

	_, err := s.q.DayGrid(context.Background(), s.roomID, s.date)
	s.True(errs.Is(err, errs.ErrRoomNotFound))
}

func (s *ScheduleQueriesTestSuite) TestEvaluateSelection() {
	testCases := []struct {
		name  string
		picks []string
		want  queries.SelectionView
		at    [2]time.Time
	}{
		{
			name:  "valid range is submittable",
			picks: []string{"16:00", "15:00"},
			want: queries.SelectionView{
				State: "two_picked", Picks: []string{"16:00", "15:00"},
				StartTime: "15:00", EndTime: "17:00", SlotCount: 2,
				IsComplete: true, IsValid: true, OverlappingSlotTimes: []string{},
			},
			at: [2]time.Time{s.at(1, 15), s.at(1, 17)},
		},
		{
			name:  "range across a reservation names conflicts",
			picks: []string{"11:00", "13:00"},
			want: queries.SelectionView{
				State: "two_picked", Picks: []string{"11:00", "13:00"},
				StartTime: "11:00", EndTime: "14:00", SlotCount: 3,
				IsComplete: true, OverlappingSlotTimes: []string{"12:00", "13:00"},
			},
		},
		{
			name:  "range over the limit",
			picks: []string{"15:00", "19:00"},
			want: queries.SelectionView{
				State: "two_picked", Picks: []string{"15:00", "19:00"},
				StartTime: "15:00", EndTime: "20:00", SlotCount: 5,
				IsComplete: true, IsValid: true, ExceedsLimit: true, OverlappingSlotTimes: []string{},
			},
		},
		{
			name:  "past pick is ignored",
			picks: []string{"09:00"},
			want:  queries.SelectionView{State: "empty", Picks: []string{}, OverlappingSlotTimes: []string{}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectDay()

			got, err := s.q.EvaluateSelection(context.Background(), s.roomID, s.date, tc.picks)
			s.Require().NoError(err)

			want := tc.want
			want.RoomID = s.roomID
			want.Date = "2030-05-01"
			if !tc.at[0].IsZero() {
				want.StartAt, want.EndAt = &tc.at[0], &tc.at[1]
			}
			if diff := cmp.Diff(&want, got); diff != "" {
				s.T().Errorf("selection mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func (s *ScheduleQueriesTestSuite) TestEvaluateSelection_UnknownLabel() {
	s.expectDay()

	_, err := s.q.EvaluateSelection(context.Background(), s.roomID, s.date, []string{"10:15"})
	s.True(errs.Is(err, errs.ErrInvalidSelection))
}
