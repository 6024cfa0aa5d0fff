//go:build unit

package slot_test

import (
	"testing"
	"time"

	"room-reservation/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got, err := slot.NormalizeLabel(day, "24:00", seoul)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, time.May, 2, 0, 0, 0, 0, seoul)))

	got, err = slot.NormalizeLabel(day, "10:00", seoul)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, time.May, 1, 10, 0, 0, 0, seoul)))

	monthEnd := slot.NewDate(2025, time.December, 31)
	assert.True(t, slot.Normalize(monthEnd, slot.EndOfDay, seoul).Equal(time.Date(2026, time.January, 1, 0, 0, 0, 0, seoul)))

	_, err = slot.NormalizeLabel(day, "24:30", seoul)
	assert.ErrorIs(t, err, slot.ErrInvalidTimeOfDay)
}

func TestProject(t *testing.T) {
	// day 0 of May is April 30.
	at := func(d, h, m int) time.Time { return time.Date(2025, time.May, d, h, m, 0, 0, seoul) }

	tests := []struct {
		name       string
		start, end time.Time
		wantOK     bool
		wantStart  string
		wantEnd    string
	}{
		{name: "inside the day", start: at(1, 10, 0), end: at(1, 12, 0), wantOK: true, wantStart: "10:00", wantEnd: "12:00"},
		{name: "ends at next midnight", start: at(1, 22, 0), end: at(2, 0, 0), wantOK: true, wantStart: "22:00", wantEnd: "24:00"},
		{name: "starts the day before", start: at(0, 23, 0), end: at(1, 1, 0), wantOK: true, wantStart: "00:00", wantEnd: "01:00"},
		{name: "ends at this midnight", start: at(0, 22, 0), end: at(1, 0, 0), wantOK: false},
		{name: "next day", start: at(2, 0, 0), end: at(2, 2, 0), wantOK: false},
		{name: "sub-hour edges", start: at(1, 10, 30), end: at(1, 11, 15), wantOK: true, wantStart: "10:30", wantEnd: "11:15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := slot.Project(day, tt.start, tt.end, seoul)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantStart, b.Start.String())
			assert.Equal(t, tt.wantEnd, b.End.String())
			assert.Equal(t, day, b.Date)
		})
	}
}

func TestProject_UTCInput(t *testing.T) {
	// 13:00-15:00 UTC on April 30 is 22:00-24:00 in Seoul.
	start := time.Date(2025, time.April, 30, 13, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.April, 30, 15, 0, 0, 0, time.UTC)
	b, ok := slot.Project(slot.NewDate(2025, time.April, 30), start, end, seoul)
	require.True(t, ok)
	assert.Equal(t, "22:00", b.Start.String())
	assert.Equal(t, "24:00", b.End.String())
}
