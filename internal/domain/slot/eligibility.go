package slot

import "time"

type Reason string

const (
	ReasonNone          Reason = ""
	ReasonPast          Reason = "past"
	ReasonBeforeOpening Reason = "before_opening"
	ReasonOccupied      Reason = "occupied"
)

// Rules holds the operating-hours floor applied to the current day.
type Rules struct {
	OpeningFloor TimeOfDay
}

func DefaultRules() Rules {
	return Rules{OpeningFloor: TimeOfDay(DefaultOpeningHour * MinutesPerHour)}
}

type Eligibility struct {
	rules     Rules
	occupancy Occupancy
	today     Date
	now       TimeOfDay
}

func NewEligibility(rules Rules, occupancy Occupancy, now time.Time, loc *time.Location) Eligibility {
	local := now.In(loc)
	return Eligibility{
		rules:     rules,
		occupancy: occupancy,
		today:     DateOf(local),
		now:       TimeOfDayOf(local),
	}
}

// Reason reports why s cannot be offered in the day grid.
func (e Eligibility) Reason(s Slot) Reason {
	if r := e.clockReason(s); r != ReasonNone {
		return r
	}
	if e.occupancy.IsOccupied(s) {
		return ReasonOccupied
	}
	return ReasonNone
}

func (e Eligibility) IsEligible(s Slot) bool {
	return e.Reason(s) == ReasonNone
}

// IsPickable applies only the clock rules. Occupied slots stay pickable so that
// a selection covering them reports the conflicting labels instead of vanishing.
func (e Eligibility) IsPickable(s Slot) bool {
	return e.clockReason(s) == ReasonNone
}

func (e Eligibility) Check(s Slot) error {
	if r := e.Reason(s); r != ReasonNone {
		return &IneligibleError{Slot: s.Label(), Reason: r}
	}
	return nil
}

func (e Eligibility) clockReason(s Slot) Reason {
	day := e.occupancy.Date()
	switch {
	case day.Before(e.today):
		return ReasonPast
	case day == e.today && hasElapsed(s, e.now):
		return ReasonPast
	case day == e.today && s.Start() < e.rules.OpeningFloor:
		return ReasonBeforeOpening
	default:
		return ReasonNone
	}
}

// The 24:00 end never elapses within its own day.
func hasElapsed(s Slot, now TimeOfDay) bool {
	end := s.End()
	if end.IsEndOfDay() {
		return false
	}
	return end <= now
}
