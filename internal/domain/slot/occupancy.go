package slot

import "fmt"

// Booking is an existing reservation as seen on one day's local clock.
// End may be EndOfDay.
type Booking struct {
	Date  Date
	Start TimeOfDay
	End   TimeOfDay
}

func NewBooking(date Date, start, end TimeOfDay) (Booking, error) {
	if start < Midnight || end > EndOfDay || start >= end {
		return Booking{}, fmt.Errorf("%w: %s-%s", ErrInvalidBooking, start, end)
	}
	return Booking{Date: date, Start: start, End: end}, nil
}

// Covers is the half-open test start <= t < end.
func (b Booking) Covers(date Date, t TimeOfDay) bool {
	return b.Date == date && b.Start <= t && t < b.End
}

// IsSlotOccupied reports whether a booking on date covers the start of s.
func IsSlotOccupied(s Slot, date Date, bookings []Booking) bool {
	for _, b := range bookings {
		if b.Covers(date, s.Start()) {
			return true
		}
	}
	return false
}

// Occupancy indexes the bookings of a single day.
type Occupancy struct {
	date     Date
	bookings []Booking
}

func NewOccupancy(date Date, bookings []Booking) Occupancy {
	sameDay := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Date == date {
			sameDay = append(sameDay, b)
		}
	}
	return Occupancy{date: date, bookings: sameDay}
}

func (o Occupancy) Date() Date { return o.date }

func (o Occupancy) Bookings() []Booking {
	out := make([]Booking, len(o.bookings))
	copy(out, o.bookings)
	return out
}

func (o Occupancy) IsOccupied(s Slot) bool {
	return IsSlotOccupied(s, o.date, o.bookings)
}

// RangeConflicts returns every occupied slot inside r, in ordinal order.
func (o Occupancy) RangeConflicts(cal Calendar, r Range) []Slot {
	var conflicts []Slot
	for _, s := range cal.SlotsIn(r) {
		if o.IsOccupied(s) {
			conflicts = append(conflicts, s)
		}
	}
	return conflicts
}

func Labels(slots []Slot) []string {
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.Label()
	}
	return labels
}
