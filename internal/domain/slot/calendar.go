package slot

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCalendar = errors.New("invalid calendar bounds")
	ErrUnknownSlot     = errors.New("unknown slot")
)

const (
	DefaultOpeningHour = 8
	DefaultClosingHour = 24
	SlotMinutes        = MinutesPerHour
)

// Slot is one fixed one-hour unit of a day. The ordinal determines the label.
type Slot struct {
	ordinal int
	start   TimeOfDay
}

func (s Slot) Ordinal() int       { return s.ordinal }
func (s Slot) Start() TimeOfDay   { return s.start }
func (s Slot) End() TimeOfDay     { return s.start + SlotMinutes }
func (s Slot) Label() string      { return s.start.String() }
func (s Slot) EndLabel() string   { return s.End().String() }
func (s Slot) String() string     { return s.Label() + "-" + s.EndLabel() }
func (s Slot) Equal(o Slot) bool  { return s == o }
func (s Slot) Before(o Slot) bool { return s.ordinal < o.ordinal }

// Calendar is the fixed catalog of reservable slots of a day.
type Calendar struct {
	opening TimeOfDay
	closing TimeOfDay
}

func DefaultCalendar() Calendar {
	cal, _ := NewCalendar(DefaultOpeningHour, DefaultClosingHour)
	return cal
}

func NewCalendar(openingHour, closingHour int) (Calendar, error) {
	if openingHour < 0 || closingHour > 24 || openingHour >= closingHour {
		return Calendar{}, fmt.Errorf("%w: %02d-%02d", ErrInvalidCalendar, openingHour, closingHour)
	}
	return Calendar{
		opening: TimeOfDay(openingHour * MinutesPerHour),
		closing: TimeOfDay(closingHour * MinutesPerHour),
	}, nil
}

func (c Calendar) Opening() TimeOfDay { return c.opening }
func (c Calendar) Closing() TimeOfDay { return c.closing }

func (c Calendar) Len() int {
	return int(c.closing-c.opening) / SlotMinutes
}

// Slots returns a fresh, ordered copy of the catalog on every call.
func (c Calendar) Slots() []Slot {
	slots := make([]Slot, c.Len())
	for i := range slots {
		slots[i] = c.slotAt(i)
	}
	return slots
}

func (c Calendar) At(ordinal int) (Slot, bool) {
	if ordinal < 0 || ordinal >= c.Len() {
		return Slot{}, false
	}
	return c.slotAt(ordinal), true
}

// Lookup resolves a start label such as "10:00" to its slot.
func (c Calendar) Lookup(label string) (Slot, error) {
	t, err := ParseTimeOfDay(label)
	if err != nil {
		return Slot{}, err
	}
	offset := int(t - c.opening)
	if offset < 0 || offset%SlotMinutes != 0 {
		return Slot{}, fmt.Errorf("%w: %s", ErrUnknownSlot, label)
	}
	s, ok := c.At(offset / SlotMinutes)
	if !ok {
		return Slot{}, fmt.Errorf("%w: %s", ErrUnknownSlot, label)
	}
	return s, nil
}

// SlotsIn lists the slots covered by r in ordinal order.
func (c Calendar) SlotsIn(r Range) []Slot {
	slots := make([]Slot, 0, r.Len())
	for i := r.StartOrdinal(); i < r.EndOrdinalExclusive(); i++ {
		if s, ok := c.At(i); ok {
			slots = append(slots, s)
		}
	}
	return slots
}

func (c Calendar) slotAt(ordinal int) Slot {
	return Slot{
		ordinal: ordinal,
		start:   c.opening + TimeOfDay(ordinal*SlotMinutes),
	}
}

// Range is a contiguous run of slots, [first, last] inclusive.
type Range struct {
	first Slot
	last  Slot
}

// NewRange resolves two slots into a range regardless of their order.
func NewRange(a, b Slot) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{first: a, last: b}
}

func (r Range) First() Slot              { return r.first }
func (r Range) Last() Slot               { return r.last }
func (r Range) StartOrdinal() int        { return r.first.ordinal }
func (r Range) EndOrdinalExclusive() int { return r.last.ordinal + 1 }
func (r Range) Len() int                 { return r.EndOrdinalExclusive() - r.StartOrdinal() }
func (r Range) Start() TimeOfDay         { return r.first.Start() }
func (r Range) End() TimeOfDay           { return r.last.End() }
func (r Range) StartLabel() string       { return r.Start().String() }
func (r Range) EndLabel() string         { return r.End().String() }

func (r Range) Contains(s Slot) bool {
	return s.ordinal >= r.StartOrdinal() && s.ordinal < r.EndOrdinalExclusive()
}

func (r Range) String() string {
	return r.StartLabel() + "-" + r.EndLabel()
}
