//go:build unit

package slot_test

import (
	"testing"
	"time"

	"room-reservation/internal/domain/slot"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendar_Default(t *testing.T) {
	cal := slot.DefaultCalendar()
	slots := cal.Slots()

	require.Len(t, slots, 16)
	assert.Equal(t, "08:00", slots[0].Label())
	assert.Equal(t, "23:00", slots[15].Label())
	assert.Equal(t, "24:00", slots[15].EndLabel())

	for i, s := range slots {
		assert.Equal(t, i, s.Ordinal())
		assert.Equal(t, s.Start()+slot.SlotMinutes, s.End())
	}

	slots[0] = slots[1]
	assert.Equal(t, "08:00", cal.Slots()[0].Label(), "catalog is not shared")
}

func TestCalendar_Lookup(t *testing.T) {
	cal := slot.DefaultCalendar()

	s, err := cal.Lookup("17:00")
	require.NoError(t, err)
	assert.Equal(t, 9, s.Ordinal())

	for _, label := range []string{"07:00", "24:00", "12:30", "12", "ab:cd", "25:00"} {
		_, err := cal.Lookup(label)
		assert.Error(t, err, label)
	}
}

func TestNewCalendar_Bounds(t *testing.T) {
	_, err := slot.NewCalendar(10, 10)
	assert.ErrorIs(t, err, slot.ErrInvalidCalendar)
	_, err = slot.NewCalendar(-1, 10)
	assert.ErrorIs(t, err, slot.ErrInvalidCalendar)
	_, err = slot.NewCalendar(8, 25)
	assert.ErrorIs(t, err, slot.ErrInvalidCalendar)

	cal, err := slot.NewCalendar(9, 18)
	require.NoError(t, err)
	assert.Equal(t, 9, cal.Len())
}

func TestRange_SlotsIn(t *testing.T) {
	cal := slot.DefaultCalendar()
	a, _ := cal.Lookup("15:00")
	b, _ := cal.Lookup("13:00")
	rng := slot.NewRange(a, b)

	got := slot.Labels(cal.SlotsIn(rng))
	if diff := cmp.Diff([]string{"13:00", "14:00", "15:00"}, got); diff != "" {
		t.Errorf("SlotsIn mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, rng.Contains(a))
	assert.True(t, rng.Contains(b))
	out, _ := cal.Lookup("16:00")
	assert.False(t, rng.Contains(out))
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    slot.TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: slot.Midnight},
		{in: "08:30", want: 8*60 + 30},
		{in: "24:00", want: slot.EndOfDay},
		{in: "24:01", wantErr: true},
		{in: "23:60", wantErr: true},
		{in: "8:00", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := slot.ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, slot.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := slot.ParseDate("2025-05-01")
	require.NoError(t, err)
	assert.Equal(t, slot.NewDate(2025, time.May, 1), d)
	assert.Equal(t, "2025-05-01", d.String())
	assert.Equal(t, slot.NewDate(2025, time.January, 1), slot.NewDate(2024, time.December, 31).AddDays(1))

	_, err = slot.ParseDate("2025-02-30")
	assert.ErrorIs(t, err, slot.ErrInvalidDate)
	_, err = slot.ParseDate("05/01/2025")
	assert.ErrorIs(t, err, slot.ErrInvalidDate)
}
