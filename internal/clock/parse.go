package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	layouts12 = []string{"3:04 PM", "3:04PM"}
	layouts24 = []string{"15:04"}
)

// Parse reads text as zoneName's wall clock on the zone-local calendar day of
// reference. Invalid text yields an error wrapping ErrParseInvalid; an
// unresolvable zone yields a *FormatError.
func Parse(text, zoneName string, tf TimeFormat, reference time.Time) (time.Time, error) {
	loc, err := Resolve(zoneName)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := parseWallClock(text, tf)
	if err != nil {
		return time.Time{}, err
	}
	day := reference.In(loc)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}

func parseWallClock(text string, tf TimeFormat) (hour, minute int, err error) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(text), " "))
	if normalized == "" {
		return 0, 0, fmt.Errorf("empty text: %w", ErrParseInvalid)
	}

	candidates := layouts12
	if tf == H24 {
		candidates = layouts24
	}
	for _, layout := range candidates {
		t, perr := time.Parse(layout, normalized)
		if perr != nil {
			continue
		}
		// time.Parse reads an hour of 0 as 12 in 12-hour layouts.
		if tf == H12 && !validHour12(normalized) {
			break
		}
		return t.Hour(), t.Minute(), nil
	}
	return 0, 0, fmt.Errorf("parse %q as %s-hour time: %w", text, tf, ErrParseInvalid)
}

// validHour12 reports whether the typed hour field is in 1..12.
func validHour12(text string) bool {
	field, _, ok := strings.Cut(text, ":")
	if !ok {
		return false
	}
	h, err := strconv.Atoi(field)
	return err == nil && h >= 1 && h <= 12
}
