package slot

import "time"

const DefaultMaxRangeSlots = 4

type State string

const (
	StateEmpty     State = "empty"
	StateOnePicked State = "one_picked"
	StateTwoPicked State = "two_picked"
)

func (s State) String() string {
	return string(s)
}

// Selection is the immutable result of the pick reducer. All derived fields
// are computed by Day.Pick or Day.Refresh and never mutated afterwards.
type Selection struct {
	picks       [2]Slot
	count       int
	rng         Range
	overlapping []string
	exceeds     bool
	valid       bool
}

func (s Selection) State() State {
	switch s.count {
	case 1:
		return StateOnePicked
	case 2:
		return StateTwoPicked
	default:
		return StateEmpty
	}
}

func (s Selection) Picks() []Slot {
	out := make([]Slot, s.count)
	copy(out, s.picks[:s.count])
	return out
}

func (s Selection) IsEmpty() bool    { return s.count == 0 }
func (s Selection) IsComplete() bool { return s.count == 2 }
func (s Selection) ExceedsLimit() bool {
	return s.exceeds
}

// IsValid is false when the range overlaps a reservation or a pick is no longer
// selectable. The length limit is reported separately by ExceedsLimit.
func (s Selection) IsValid() bool {
	return s.valid
}

func (s Selection) Range() (Range, bool) {
	if s.count == 0 {
		return Range{}, false
	}
	return s.rng, true
}

func (s Selection) OverlappingSlotTimes() []string {
	out := make([]string, len(s.overlapping))
	copy(out, s.overlapping)
	return out
}

// Validate returns the first condition that blocks submission.
func (s Selection) Validate() error {
	switch {
	case s.count == 0:
		return ErrEmptySelection
	case len(s.overlapping) > 0:
		return &OverlapError{Slots: s.OverlappingSlotTimes()}
	case !s.valid:
		return ErrIneligibleSlot
	case s.exceeds:
		return ErrRangeTooLong
	default:
		return nil
	}
}

// Engine binds a calendar, eligibility rules and the local time zone.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	calendar Calendar
	rules    Rules
	maxSlots int
	loc      *time.Location
}

func NewEngine(calendar Calendar, rules Rules, maxSlots int, loc *time.Location) *Engine {
	if maxSlots <= 0 {
		maxSlots = DefaultMaxRangeSlots
	}
	if loc == nil {
		loc = time.Local
	}
	return &Engine{
		calendar: calendar,
		rules:    rules,
		maxSlots: maxSlots,
		loc:      loc,
	}
}

func DefaultEngine(loc *time.Location) *Engine {
	return NewEngine(DefaultCalendar(), DefaultRules(), DefaultMaxRangeSlots, loc)
}

func (e *Engine) Calendar() Calendar       { return e.calendar }
func (e *Engine) Location() *time.Location { return e.loc }
func (e *Engine) MaxRangeSlots() int       { return e.maxSlots }

// Day builds the evaluation context for one date from an immutable snapshot
// of that day's bookings and the current instant.
func (e *Engine) Day(date Date, bookings []Booking, now time.Time) Day {
	occupancy := NewOccupancy(date, bookings)
	return Day{
		engine:      e,
		occupancy:   occupancy,
		eligibility: NewEligibility(e.rules, occupancy, now, e.loc),
	}
}

type Day struct {
	engine      *Engine
	occupancy   Occupancy
	eligibility Eligibility
}

// SlotStatus is one cell of the day grid.
type SlotStatus struct {
	Slot     Slot
	Occupied bool
	Reason   Reason
}

func (s SlotStatus) Eligible() bool {
	return s.Reason == ReasonNone
}

func (d Day) Date() Date { return d.occupancy.Date() }

func (d Day) Grid() []SlotStatus {
	slots := d.engine.calendar.Slots()
	grid := make([]SlotStatus, len(slots))
	for i, s := range slots {
		grid[i] = SlotStatus{
			Slot:     s,
			Occupied: d.occupancy.IsOccupied(s),
			Reason:   d.eligibility.Reason(s),
		}
	}
	return grid
}

func (d Day) Lookup(label string) (Slot, error) {
	return d.engine.calendar.Lookup(label)
}

func (d Day) CheckPick(s Slot) error {
	return d.eligibility.Check(s)
}

// Pick is the selection reducer. Picking a past or before-opening slot returns
// sel unchanged. Occupied slots are accepted and surface through
// OverlappingSlotTimes, which makes the selection invalid.
func (d Day) Pick(sel Selection, s Slot) Selection {
	if !d.eligibility.IsPickable(s) {
		return sel
	}
	if sel.count == 1 {
		if sel.picks[0].Equal(s) {
			return Selection{}
		}
		return d.derive([2]Slot{sel.picks[0], s}, 2)
	}
	return d.derive([2]Slot{s}, 1)
}

// Replay folds a sequence of start labels through Pick, starting from empty.
func (d Day) Replay(labels []string) (Selection, error) {
	var sel Selection
	for _, label := range labels {
		s, err := d.Lookup(label)
		if err != nil {
			return Selection{}, err
		}
		sel = d.Pick(sel, s)
	}
	return sel, nil
}

// Refresh recomputes the derived fields of sel against this day's snapshot and clock.
func (d Day) Refresh(sel Selection) Selection {
	return d.derive(sel.picks, sel.count)
}

// Interval gates submission and normalizes the resolved range to absolute instants.
func (d Day) Interval(sel Selection) (time.Time, time.Time, error) {
	if err := sel.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, end := NormalizeRange(d.Date(), sel.rng, d.engine.loc)
	return start, end, nil
}

func (d Day) derive(picks [2]Slot, count int) Selection {
	if count == 0 {
		return Selection{}
	}
	rng := NewRange(picks[0], picks[count-1])
	conflicts := d.occupancy.RangeConflicts(d.engine.calendar, rng)

	valid := len(conflicts) == 0
	for _, p := range picks[:count] {
		if !d.eligibility.IsPickable(p) {
			valid = false
		}
	}

	return Selection{
		picks:       picks,
		count:       count,
		rng:         rng,
		overlapping: Labels(conflicts),
		exceeds:     rng.Len() > d.engine.maxSlots,
		valid:       valid,
	}
}
