//go:build unit

package slot_test

import (
	"testing"
	"time"

	"room-reservation/internal/domain/slot"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	start := time.Date(2025, time.May, 1, 10, 0, 0, 0, seoul)
	end := time.Date(2025, time.May, 1, 12, 0, 0, 0, seoul)

	tests := []struct {
		name string
		now  time.Time
		want slot.Lifecycle
	}{
		{name: "before start", now: start.Add(-time.Minute), want: slot.LifecycleScheduled},
		{name: "at start", now: start, want: slot.LifecycleInProgress},
		{name: "inside", now: start.Add(time.Hour), want: slot.LifecycleInProgress},
		{name: "at end", now: end, want: slot.LifecycleCompleted},
		{name: "after end", now: end.Add(24 * time.Hour), want: slot.LifecycleCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.Classify(start, end, tt.now))
		})
	}
}

func TestClassify_ExactlyOneState(t *testing.T) {
	start := time.Date(2025, time.May, 1, 9, 0, 0, 0, seoul)
	end := time.Date(2025, time.May, 2, 0, 0, 0, 0, seoul)

	for now := start.Add(-2 * time.Hour); now.Before(end.Add(2 * time.Hour)); now = now.Add(7 * time.Minute) {
		got := slot.Classify(start, end, now)
		assert.True(t, got.IsValid())
		scheduled := now.Before(start)
		inProgress := !now.Before(start) && now.Before(end)
		completed := !now.Before(end)
		assert.Equal(t, scheduled, got == slot.LifecycleScheduled)
		assert.Equal(t, inProgress, got == slot.LifecycleInProgress)
		assert.Equal(t, completed, got == slot.LifecycleCompleted)
	}
}

func TestClassifyLocal_EndOfDay(t *testing.T) {
	start, _ := slot.ParseTimeOfDay("09:00")
	end, _ := slot.ParseTimeOfDay("24:00")

	late := time.Date(2025, time.May, 1, 23, 59, 0, 0, seoul)
	assert.Equal(t, slot.LifecycleInProgress, slot.ClassifyLocal(day, start, end, late, seoul))

	midnight := time.Date(2025, time.May, 2, 0, 0, 0, 0, seoul)
	assert.Equal(t, slot.LifecycleCompleted, slot.ClassifyLocal(day, start, end, midnight, seoul))
}

func TestLifecycle_IsValid(t *testing.T) {
	assert.False(t, slot.Lifecycle("cancelled").IsValid())
	assert.Equal(t, "in_progress", slot.LifecycleInProgress.String())
}
