package clock

import (
	"fmt"
	"strings"
	"time"
)

// TimeFormat selects 12-hour or 24-hour wall-clock rendering.
type TimeFormat int

const (
	H12 TimeFormat = iota
	H24
)

const (
	layout12   = "03:04 PM"
	layout24   = "15:04"
	layoutDate = "02 Jan 2006"
)

// String returns the persisted form of the format ("12" or "24").
func (f TimeFormat) String() string {
	if f == H24 {
		return "24"
	}
	return "12"
}

// Toggle returns the other format.
func (f TimeFormat) Toggle() TimeFormat {
	if f == H24 {
		return H12
	}
	return H24
}

// MarshalText implements encoding.TextMarshaler.
func (f TimeFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *TimeFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseTimeFormat accepts "12"/"24" as well as the "h12"/"h24" spellings.
func ParseTimeFormat(s string) (TimeFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "12", "h12":
		return H12, nil
	case "24", "h24":
		return H24, nil
	}
	return H12, fmt.Errorf("unknown time format %q", s)
}

// DateFormat selects whether cards show a relative day or a full date.
type DateFormat int

const (
	TimeOnly DateFormat = iota
	DateAndTime
)

func (f DateFormat) String() string {
	if f == DateAndTime {
		return "datetime"
	}
	return "time"
}

// Toggle returns the other format.
func (f DateFormat) Toggle() DateFormat {
	if f == DateAndTime {
		return TimeOnly
	}
	return DateAndTime
}

// MarshalText implements encoding.TextMarshaler.
func (f DateFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *DateFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseDateFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseDateFormat accepts "time" and "datetime".
func ParseDateFormat(s string) (DateFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "time":
		return TimeOnly, nil
	case "datetime":
		return DateAndTime, nil
	}
	return TimeOnly, fmt.Errorf("unknown date format %q", s)
}

// Format renders instant in zoneName's local wall clock.
func Format(instant time.Time, zoneName string, tf TimeFormat) (string, error) {
	local, err := inZone(instant, zoneName)
	if err != nil {
		return "", err
	}
	if tf == H24 {
		return local.Format(layout24), nil
	}
	return local.Format(layout12), nil
}

// FormatDate renders the zone-local calendar date of instant.
func FormatDate(instant time.Time, zoneName string) (string, error) {
	local, err := inZone(instant, zoneName)
	if err != nil {
		return "", err
	}
	return local.Format(layoutDate), nil
}

func inZone(instant time.Time, zoneName string) (time.Time, error) {
	if instant.IsZero() {
		return time.Time{}, &FormatError{Zone: zoneName, Err: errZeroInstant}
	}
	loc, err := Resolve(zoneName)
	if err != nil {
		return time.Time{}, err
	}
	return instant.In(loc), nil
}
