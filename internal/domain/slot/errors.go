package slot

import (
	"errors"
	"strings"
)

var (
	ErrIneligibleSlot        = errors.New("slot is not selectable")
	ErrRangeTooLong          = errors.New("selected range is too long")
	ErrRangeOverlapsExisting = errors.New("selected range overlaps an existing reservation")
	ErrEmptySelection        = errors.New("no slot selected")
	ErrInvalidBooking        = errors.New("invalid booking interval")
)

// OverlapError names the slots of a selection that are already reserved.
type OverlapError struct {
	Slots []string
}

func (e *OverlapError) Error() string {
	return ErrRangeOverlapsExisting.Error() + ": " + strings.Join(e.Slots, ", ")
}

func (e *OverlapError) Is(target error) bool {
	return target == ErrRangeOverlapsExisting
}

type IneligibleError struct {
	Slot   string
	Reason Reason
}

func (e *IneligibleError) Error() string {
	return ErrIneligibleSlot.Error() + ": " + e.Slot + " (" + string(e.Reason) + ")"
}

func (e *IneligibleError) Is(target error) bool {
	return target == ErrIneligibleSlot
}
