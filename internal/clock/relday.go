package clock

import "time"

// Day is a zone-local calendar day relative to a reference day.
type Day int

const (
	Previous Day = -1
	Today    Day = 0
	Next     Day = 1
)

func (d Day) String() string {
	switch d {
	case Previous:
		return "Previous Day"
	case Next:
		return "Next Day"
	default:
		return "Today"
	}
}

// DayComparer compares two instants already converted into the same zone.
type DayComparer func(local, reference time.Time) Day

// RelativeDay compares the day-of-month of instant and reference, both seen
// from zoneName.
func RelativeDay(instant time.Time, zoneName string, reference time.Time) (Day, error) {
	return RelativeDayBy(CompareDayOfMonth, instant, zoneName, reference)
}

// RelativeDayBy is RelativeDay with a caller-chosen comparison.
func RelativeDayBy(cmp DayComparer, instant time.Time, zoneName string, reference time.Time) (Day, error) {
	local, err := inZone(instant, zoneName)
	if err != nil {
		return Today, err
	}
	ref, err := inZone(reference, zoneName)
	if err != nil {
		return Today, err
	}
	if cmp == nil {
		cmp = CompareDayOfMonth
	}
	return cmp(local, ref), nil
}

// CompareDayOfMonth looks at the day number only. The 1st of a month reads
// as Previous against the 31st of the month before.
func CompareDayOfMonth(local, reference time.Time) Day {
	switch {
	case local.Day() < reference.Day():
		return Previous
	case local.Day() > reference.Day():
		return Next
	default:
		return Today
	}
}

// CompareCalendarDay compares full calendar dates.
func CompareCalendarDay(local, reference time.Time) Day {
	ly, lm, ld := local.Date()
	ry, rm, rd := reference.Date()
	a := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	b := time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC)
	switch {
	case a.Before(b):
		return Previous
	case a.After(b):
		return Next
	default:
		return Today
	}
}
