package slot

import "time"

type Lifecycle string

const (
	LifecycleScheduled  Lifecycle = "scheduled"
	LifecycleInProgress Lifecycle = "in_progress"
	LifecycleCompleted  Lifecycle = "completed"
)

func (l Lifecycle) String() string {
	return string(l)
}

func (l Lifecycle) IsValid() bool {
	switch l {
	case LifecycleScheduled, LifecycleInProgress, LifecycleCompleted:
		return true
	default:
		return false
	}
}

// Classify derives the status of [start, end) at now. The start instant is
// in progress and the end instant is completed.
func Classify(start, end, now time.Time) Lifecycle {
	switch {
	case now.Before(start):
		return LifecycleScheduled
	case now.Before(end):
		return LifecycleInProgress
	default:
		return LifecycleCompleted
	}
}

func ClassifyLocal(date Date, start, end TimeOfDay, now time.Time, loc *time.Location) Lifecycle {
	return Classify(Normalize(date, start, loc), Normalize(date, end, loc), now)
}
