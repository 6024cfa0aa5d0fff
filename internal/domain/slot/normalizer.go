package slot

import "time"

// Normalize combines a date and a local time of day into an instant.
// 24:00 becomes 00:00 of the following day. This file is the only place
// where the end-of-day label meets calendar arithmetic.
func Normalize(date Date, t TimeOfDay, loc *time.Location) time.Time {
	if t.IsEndOfDay() {
		date = date.AddDays(1)
		t = Midnight
	}
	return time.Date(date.year, date.month, date.day, t.Hour(), t.Minute(), 0, 0, loc)
}

func NormalizeLabel(date Date, label string, loc *time.Location) (time.Time, error) {
	t, err := ParseTimeOfDay(label)
	if err != nil {
		return time.Time{}, err
	}
	return Normalize(date, t, loc), nil
}

func NormalizeRange(date Date, r Range, loc *time.Location) (time.Time, time.Time) {
	return Normalize(date, r.Start(), loc), Normalize(date, r.End(), loc)
}

// Project maps the instant interval [start, end) onto date's local clock,
// clipping at both midnights. An end at the following midnight becomes 24:00.
func Project(date Date, start, end time.Time, loc *time.Location) (Booking, bool) {
	dayStart, dayEnd := DayBounds(date, loc)
	if !start.Before(dayEnd) || !end.After(dayStart) {
		return Booking{}, false
	}

	b := Booking{Date: date, Start: Midnight, End: EndOfDay}
	if start.After(dayStart) {
		b.Start = TimeOfDayOf(start.In(loc))
	}
	if end.Before(dayEnd) {
		b.End = TimeOfDayOf(end.In(loc))
	}
	if b.Start >= b.End {
		return Booking{}, false
	}
	return b, true
}

// DayBounds returns the first and the last boundary of date as instants.
func DayBounds(date Date, loc *time.Location) (time.Time, time.Time) {
	return Normalize(date, Midnight, loc), Normalize(date, EndOfDay, loc)
}
