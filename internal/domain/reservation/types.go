package reservation

import (
	"errors"
	"time"
)

var (
	ErrInvalidTimeSlot   = errors.New("invalid time slot")
	ErrStartTooEarly     = errors.New("start time is too far in the past")
	ErrEndInPast         = errors.New("end time is in the past")
	ErrBeyondHorizon     = errors.New("reservation is beyond the booking horizon")
	ErrDurationTooLong   = errors.New("reservation exceeds the maximum duration")
	ErrInvalidNickname   = errors.New("invalid nickname")
	ErrInvalidHolderName = errors.New("invalid holder name")
	ErrInvalidHolderID   = errors.New("invalid holder id")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidPurpose    = errors.New("invalid purpose")
	ErrRoomUnavailable   = errors.New("room is not available")
)

const (
	DefaultLookback    = time.Hour
	DefaultHorizon     = 7 * 24 * time.Hour
	DefaultMaxDuration = 4 * time.Hour
)

// Window bounds a reservation relative to the instant it is made.
type Window struct {
	Lookback    time.Duration
	Horizon     time.Duration
	MaxDuration time.Duration
}

func DefaultWindow() Window {
	return Window{
		Lookback:    DefaultLookback,
		Horizon:     DefaultHorizon,
		MaxDuration: DefaultMaxDuration,
	}
}

func (w Window) Validate(slot TimeSlot, now time.Time) error {
	switch {
	case slot.start.Before(now.Add(-w.Lookback)):
		return ErrStartTooEarly
	case slot.end.Before(now):
		return ErrEndInPast
	case slot.start.After(now.Add(w.Horizon)), slot.end.After(now.Add(w.Horizon)):
		return ErrBeyondHorizon
	case w.MaxDuration > 0 && slot.Duration() > w.MaxDuration:
		return ErrDurationTooLong
	default:
		return nil
	}
}
