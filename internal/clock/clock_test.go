package clock

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

var (
	pattern12 = regexp.MustCompile(`^(0[1-9]|1[0-2]):[0-5][0-9] (AM|PM)$`)
	pattern24 = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("time.Parse(%q): %v", value, err)
	}
	return ts
}

func TestFormat(t *testing.T) {
	instant := mustTime(t, "2024-01-10T12:00:00Z")

	cases := []struct {
		zone string
		tf   TimeFormat
		want string
	}{
		{"America/New_York", H12, "07:00 AM"},
		{"Asia/Tokyo", H24, "21:00"},
		{"Asia/Tokyo", H12, "09:00 PM"},
		{"UTC", H12, "12:00 PM"},
		{"Asia/Kolkata", H24, "17:30"},
	}
	for _, tc := range cases {
		t.Run(tc.zone+"/"+tc.tf.String(), func(t *testing.T) {
			got, err := Format(instant, tc.zone, tc.tf)
			if err != nil {
				t.Fatalf("Format returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Format = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormat_MatchesPatternsAcrossTheDay(t *testing.T) {
	start := mustTime(t, "2024-06-01T00:00:00Z")
	zones := []string{"UTC", "America/New_York", "Asia/Kathmandu", "Pacific/Chatham"}
	for step := 0; step < 24*4; step++ {
		instant := start.Add(time.Duration(step) * 17 * time.Minute)
		for _, zone := range zones {
			h12, err := Format(instant, zone, H12)
			if err != nil {
				t.Fatalf("Format(%v, %s, H12): %v", instant, zone, err)
			}
			if !pattern12.MatchString(h12) {
				t.Fatalf("Format(%v, %s, H12) = %q, does not match hh:mm AM/PM", instant, zone, h12)
			}
			h24, err := Format(instant, zone, H24)
			if err != nil {
				t.Fatalf("Format(%v, %s, H24): %v", instant, zone, err)
			}
			if !pattern24.MatchString(h24) {
				t.Fatalf("Format(%v, %s, H24) = %q, does not match HH:mm", instant, zone, h24)
			}
		}
	}
}

func TestFormat_Errors(t *testing.T) {
	instant := mustTime(t, "2024-01-10T12:00:00Z")

	_, err := Format(instant, "Mars/Olympus_Mons", H24)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Format unknown zone error = %v, want *FormatError", err)
	}
	if fe.Zone != "Mars/Olympus_Mons" {
		t.Fatalf("FormatError.Zone = %q, want %q", fe.Zone, "Mars/Olympus_Mons")
	}

	if _, err := Format(instant, "  ", H24); !errors.As(err, &fe) {
		t.Fatalf("Format blank zone error = %v, want *FormatError", err)
	}
	if _, err := Format(time.Time{}, "UTC", H24); !errors.As(err, &fe) {
		t.Fatalf("Format zero instant error = %v, want *FormatError", err)
	}
}

func TestFormatDate(t *testing.T) {
	instant := mustTime(t, "2024-01-10T23:30:00Z")
	got, err := FormatDate(instant, "Asia/Tokyo")
	if err != nil {
		t.Fatalf("FormatDate returned error: %v", err)
	}
	if got != "11 Jan 2024" {
		t.Fatalf("FormatDate = %q, want %q", got, "11 Jan 2024")
	}
}

func TestParse(t *testing.T) {
	reference := mustTime(t, "2024-01-10T12:00:00Z")

	cases := []struct {
		name string
		text string
		zone string
		tf   TimeFormat
		want string
	}{
		{"h12 padded", "08:00 AM", "America/New_York", H12, "2024-01-10T13:00:00Z"},
		{"h12 single digit lowercase", "8:00 am", "America/New_York", H12, "2024-01-10T13:00:00Z"},
		{"h12 no space", "08:00PM", "America/New_York", H12, "2024-01-11T01:00:00Z"},
		{"h12 extra spaces", "  12:15   AM ", "UTC", H12, "2024-01-10T00:15:00Z"},
		{"h24", "22:00", "Asia/Tokyo", H24, "2024-01-10T13:00:00Z"},
		{"h24 single digit hour", "7:05", "UTC", H24, "2024-01-10T07:05:00Z"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.text, tc.zone, tc.tf, reference)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.text, err)
			}
			want := mustTime(t, tc.want)
			if !got.Equal(want) {
				t.Fatalf("Parse(%q) = %v, want %v", tc.text, got.UTC(), want)
			}
		})
	}
}

func TestParse_UsesZoneLocalDayOfReference(t *testing.T) {
	// 02:00Z on Jan 10 is still Jan 9 in New York.
	reference := mustTime(t, "2024-01-10T02:00:00Z")
	got, err := Parse("10:00 PM", "America/New_York", H12, reference)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := mustTime(t, "2024-01-10T03:00:00Z")
	if !got.Equal(want) {
		t.Fatalf("Parse = %v, want %v", got.UTC(), want)
	}
}

func TestParse_Invalid(t *testing.T) {
	reference := mustTime(t, "2024-01-10T12:00:00Z")

	cases := []struct {
		text string
		tf   TimeFormat
	}{
		{"25:99", H24},
		{"24:00", H24},
		{"12:60", H24},
		{"", H24},
		{"noon", H24},
		{"07:00 AM", H24},
		{"13:00 PM", H12},
		{"07:00", H12},
		{"7:0 AM", H12},
		{"07:00 XM", H12},
		{"00:30 AM", H12},
		{"0:30 PM", H12},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			_, err := Parse(tc.text, "UTC", tc.tf, reference)
			if !errors.Is(err, ErrParseInvalid) {
				t.Fatalf("Parse(%q, %s) error = %v, want ErrParseInvalid", tc.text, tc.tf, err)
			}
		})
	}
}

func TestParse_UnknownZone(t *testing.T) {
	_, err := Parse("07:00", "Nowhere/Special", H24, time.Now())
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Parse unknown zone error = %v, want *FormatError", err)
	}
	if errors.Is(err, ErrParseInvalid) {
		t.Fatalf("unknown zone should not be reported as ErrParseInvalid")
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	instant := mustTime(t, "2024-08-15T18:42:00Z")
	for _, zone := range []string{"America/Los_Angeles", "Europe/Berlin", "Australia/Adelaide"} {
		for _, tf := range []TimeFormat{H12, H24} {
			text, err := Format(instant, zone, tf)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			back, err := Parse(text, zone, tf, instant)
			if err != nil {
				t.Fatalf("Parse(%q): %v", text, err)
			}
			if !back.Equal(instant) {
				t.Fatalf("%s/%s round trip = %v, want %v", zone, tf, back.UTC(), instant)
			}
		}
	}
}

func TestRelativeDay(t *testing.T) {
	reference := mustTime(t, "2024-01-10T12:00:00Z")

	cases := []struct {
		name    string
		instant string
		zone    string
		want    Day
	}{
		{"same day", "2024-01-10T13:00:00Z", "Asia/Tokyo", Today},
		{"next day", "2024-01-10T23:30:00Z", "Asia/Tokyo", Next},
		{"previous day", "2024-01-10T03:00:00Z", "America/Los_Angeles", Previous},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RelativeDay(mustTime(t, tc.instant), tc.zone, reference)
			if err != nil {
				t.Fatalf("RelativeDay returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("RelativeDay = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRelativeDay_MonthBoundary(t *testing.T) {
	instant := mustTime(t, "2024-02-01T10:00:00Z")
	reference := mustTime(t, "2024-01-31T10:00:00Z")

	got, err := RelativeDay(instant, "UTC", reference)
	if err != nil {
		t.Fatalf("RelativeDay returned error: %v", err)
	}
	if got != Previous {
		t.Fatalf("day-of-month comparison = %v, want %v", got, Previous)
	}

	got, err = RelativeDayBy(CompareCalendarDay, instant, "UTC", reference)
	if err != nil {
		t.Fatalf("RelativeDayBy returned error: %v", err)
	}
	if got != Next {
		t.Fatalf("calendar comparison = %v, want %v", got, Next)
	}
}

func TestDayString(t *testing.T) {
	if Previous.String() != "Previous Day" || Today.String() != "Today" || Next.String() != "Next Day" {
		t.Fatalf("unexpected Day labels: %q %q %q", Previous, Today, Next)
	}
}

func TestFormatText(t *testing.T) {
	var tf TimeFormat
	if err := tf.UnmarshalText([]byte("24")); err != nil || tf != H24 {
		t.Fatalf("UnmarshalText(24) = %v, %v", tf, err)
	}
	if err := tf.UnmarshalText([]byte("36")); err == nil {
		t.Fatalf("UnmarshalText(36) returned nil error")
	}
	if H12.Toggle() != H24 || H24.Toggle() != H12 {
		t.Fatalf("TimeFormat.Toggle does not alternate")
	}

	var df DateFormat
	if err := df.UnmarshalText([]byte("datetime")); err != nil || df != DateAndTime {
		t.Fatalf("UnmarshalText(datetime) = %v, %v", df, err)
	}
	if _, err := ParseDateFormat("weekly"); err == nil {
		t.Fatalf("ParseDateFormat(weekly) returned nil error")
	}
	if TimeOnly.String() != "time" || DateAndTime.String() != "datetime" {
		t.Fatalf("DateFormat strings = %q %q", TimeOnly, DateAndTime)
	}
}
