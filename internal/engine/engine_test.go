package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/five82/tzboard/internal/clock"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("time.Parse(%q): %v", value, err)
	}
	return ts
}

func render(t *testing.T, instant time.Time, zone string, tf clock.TimeFormat) string {
	t.Helper()
	text, err := clock.Format(instant, zone, tf)
	if err != nil {
		t.Fatalf("Format(%s): %v", zone, err)
	}
	return text
}

func TestApplyEdit_RetimesOtherZones(t *testing.T) {
	e := New(mustTime(t, "2024-01-10T12:00:00Z"))

	if got := render(t, e.Canonical(), "America/New_York", clock.H12); got != "07:00 AM" {
		t.Fatalf("New York before edit = %q, want 07:00 AM", got)
	}
	if got := render(t, e.Canonical(), "Asia/Tokyo", clock.H24); got != "21:00" {
		t.Fatalf("Tokyo before edit = %q, want 21:00", got)
	}

	got, err := e.ApplyEdit("America/New_York", clock.H12, "08:00 AM")
	if err != nil {
		t.Fatalf("ApplyEdit returned error: %v", err)
	}
	want := mustTime(t, "2024-01-10T13:00:00Z")
	if !got.Equal(want) || !e.Canonical().Equal(want) {
		t.Fatalf("canonical = %v, want %v", e.Canonical(), want)
	}
	if got := render(t, e.Canonical(), "Asia/Tokyo", clock.H24); got != "22:00" {
		t.Fatalf("Tokyo after edit = %q, want 22:00", got)
	}
}

func TestApplyEdit_InvalidLeavesCanonicalUnchanged(t *testing.T) {
	start := mustTime(t, "2024-01-10T12:00:00Z")
	e := New(start)

	_, err := e.ApplyEdit("UTC", clock.H24, "25:99")
	if !errors.Is(err, clock.ErrParseInvalid) {
		t.Fatalf("ApplyEdit error = %v, want ErrParseInvalid", err)
	}
	if !e.Canonical().Equal(start) {
		t.Fatalf("canonical = %v, want unchanged %v", e.Canonical(), start)
	}

	_, err = e.ApplyEdit("Not/AZone", clock.H24, "10:00")
	var fe *clock.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("ApplyEdit unknown zone error = %v, want *FormatError", err)
	}
	if !e.Canonical().Equal(start) {
		t.Fatalf("canonical = %v, want unchanged %v", e.Canonical(), start)
	}
}

func TestApplyEdit_Idempotent(t *testing.T) {
	e := New(mustTime(t, "2024-05-20T09:17:45Z"))

	first, err := e.ApplyEdit("Europe/Berlin", clock.H24, "23:40")
	if err != nil {
		t.Fatalf("first ApplyEdit: %v", err)
	}
	second, err := e.ApplyEdit("Europe/Berlin", clock.H24, "23:40")
	if err != nil {
		t.Fatalf("second ApplyEdit: %v", err)
	}
	if !first.Equal(second) {
		t.Fatalf("ApplyEdit not idempotent: %v then %v", first, second)
	}
}

func TestApplyEdit_PreservesDate(t *testing.T) {
	cases := []struct {
		name  string
		start string
		zone  string
		tf    clock.TimeFormat
		text  string
		want  string
	}{
		// 23:40 Berlin (CEST) on May 20 is 21:40Z on May 20.
		{"same day", "2024-05-20T09:17:45Z", "Europe/Berlin", clock.H24, "23:40", "2024-05-20T21:40:45Z"},
		// 08:00 Tokyo on Jan 11 is 23:00Z on Jan 10; the canonical date stays Jan 10.
		{"zone ahead of utc", "2024-01-10T23:30:00Z", "Asia/Tokyo", clock.H24, "08:00", "2024-01-10T23:00:00Z"},
		// 11:00 PM Los Angeles on Jan 9 is 07:00Z on Jan 10; the date stays Jan 10.
		{"zone behind utc", "2024-01-10T05:00:00Z", "America/Los_Angeles", clock.H12, "11:00 PM", "2024-01-10T07:00:00Z"},
		// 09:00 Tokyo on Jan 10 is 00:00Z on Jan 10, but the canonical date is Jan 9.
		{"edit crosses utc midnight", "2024-01-09T22:00:00Z", "Asia/Tokyo", clock.H24, "09:00", "2024-01-09T00:00:00Z"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := mustTime(t, tc.start)
			e := New(start)
			got, err := e.ApplyEdit(tc.zone, tc.tf, tc.text)
			if err != nil {
				t.Fatalf("ApplyEdit returned error: %v", err)
			}
			if got.Year() != start.Year() || got.Month() != start.Month() || got.Day() != start.Day() {
				t.Fatalf("date changed: %v -> %v", start, got)
			}
			if want := mustTime(t, tc.want); !got.Equal(want) {
				t.Fatalf("canonical = %v, want %v", got, want)
			}
		})
	}
}

func TestCrossZoneConsistency(t *testing.T) {
	e := New(mustTime(t, "2024-07-04T16:25:00Z"))
	if _, err := e.ApplyEdit("Asia/Kolkata", clock.H12, "11:05 PM"); err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}

	canonical := e.Canonical()
	zones := []string{"America/Sao_Paulo", "Asia/Kathmandu", "Pacific/Auckland"}
	for _, zone := range zones {
		text := render(t, canonical, zone, clock.H24)
		back, err := clock.Parse(text, zone, clock.H24, canonical)
		if err != nil {
			t.Fatalf("Parse(%q, %s): %v", text, zone, err)
		}
		if !back.Equal(canonical.Truncate(time.Minute)) {
			t.Fatalf("%s renders %q which reads back as %v, want %v", zone, text, back.UTC(), canonical)
		}
	}
}

func TestTick_Overwrites(t *testing.T) {
	e := New(mustTime(t, "2024-01-10T12:00:00Z"))
	if _, err := e.ApplyEdit("UTC", clock.H24, "18:30"); err != nil {
		t.Fatalf("ApplyEdit: %v", err)
	}

	now := time.Date(2025, 3, 1, 4, 5, 6, 0, time.FixedZone("X", 3600))
	e.Tick(now)
	if !e.Canonical().Equal(now) {
		t.Fatalf("canonical = %v, want %v", e.Canonical(), now)
	}
	if e.Canonical().Location() != time.UTC {
		t.Fatalf("canonical location = %v, want UTC", e.Canonical().Location())
	}
}

func TestRetimeKeepingDate(t *testing.T) {
	in := time.Date(2024, 2, 29, 23, 59, 58, 7, time.UTC)
	got := RetimeKeepingDate(in, 0, 1)
	want := time.Date(2024, 2, 29, 0, 1, 58, 7, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("RetimeKeepingDate = %v, want %v", got, want)
	}
}
