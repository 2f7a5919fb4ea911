package state

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/five82/tzboard/internal/clock"
	appLog "github.com/five82/tzboard/internal/log"
	"github.com/five82/tzboard/internal/snapshot"
	"github.com/five82/tzboard/internal/zone"
)

func TestBoard_RelativeDays(t *testing.T) {
	s, _ := newTestStore(t, snapshot.Snapshot{
		Source: fixedNow,
		Entries: []zone.Entry{
			{ID: 1, Title: "LA", Zone: "America/Los_Angeles"},
			{ID: 2, Title: "Tokyo", Zone: "Asia/Tokyo", TimeFormat: clock.H24},
		},
	})

	// 23:30Z is still Jan 10 in Los Angeles and already Jan 11 in Tokyo.
	s.OnPeriodicTick(time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC))

	board := s.Board()
	if len(board.Views) != 2 {
		t.Fatalf("views = %d, want 2", len(board.Views))
	}
	if got := board.Views[0]; got.Text != "03:30 PM" || got.RelativeDay != clock.Today {
		t.Fatalf("LA view = %q %v, want 03:30 PM Today", got.Text, got.RelativeDay)
	}
	if got := board.Views[1]; got.Text != "08:30" || got.RelativeDay != clock.Next {
		t.Fatalf("Tokyo view = %q %v, want 08:30 Next", got.Text, got.RelativeDay)
	}
	if board.Views[0].Date != "" {
		t.Fatalf("Date = %q, want empty in TimeOnly mode", board.Views[0].Date)
	}
}

func TestBoard_DateAndTime(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, snapshot.Snapshot{
		Source:  time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC),
		Entries: []zone.Entry{{ID: 1, Title: "Tokyo", Zone: "Asia/Tokyo"}},
	})
	s.SetGlobalDateFormat(ctx, clock.DateAndTime)

	v := s.Board().Views[0]
	if v.Date != "11 Jan 2024" {
		t.Fatalf("Date = %q, want 11 Jan 2024", v.Date)
	}
}

func TestBoard_UnresolvableZoneRendersBlank(t *testing.T) {
	s, _ := newTestStore(t, snapshot.Snapshot{
		Source: fixedNow,
		Entries: []zone.Entry{
			{ID: 1, Title: "bad", Zone: "Atlantis/Capital"},
			{ID: 2, Title: "good", Zone: "UTC", TimeFormat: clock.H24},
		},
	})

	board := s.Board()
	if board.Views[0].Err == nil || board.Views[0].Text != "" {
		t.Fatalf("bad view = %#v, want blank with error", board.Views[0])
	}
	if board.Views[1].Err != nil || board.Views[1].Text != "12:00" {
		t.Fatalf("good view = %#v, want 12:00", board.Views[1])
	}
}

func TestBoard_RenderFailureLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	appLog.SetOutput(&buf)
	t.Cleanup(func() { appLog.SetOutput(os.Stderr) })

	s, _ := newTestStore(t, snapshot.Snapshot{
		Source:  fixedNow,
		Entries: []zone.Entry{{ID: 1, Title: "bad", Zone: "Atlantis/Capital"}},
	})
	for i := 0; i < 3; i++ {
		s.Board()
	}

	if got := strings.Count(buf.String(), "render zone failed"); got != 1 {
		t.Fatalf("render failure logged %d times, want 1:\n%s", got, buf.String())
	}
}

func TestBoard_HeaderAndColors(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, snapshot.Snapshot{Source: fixedNow})
	s.AddZone(ctx)
	s.SetGlobalTimeFormat(ctx, clock.H24)

	board := s.Board()
	if board.UTCTime != "12:00" {
		t.Fatalf("UTCTime = %q, want 12:00", board.UTCTime)
	}
	if board.LocalTime == "" {
		t.Fatalf("LocalTime is empty")
	}
	if board.Views[0].ColorSlot != 3 {
		t.Fatalf("ColorSlot = %d, want 3 from picker", board.Views[0].ColorSlot)
	}
	if board.Prefs.TimeFormat != clock.H24 {
		t.Fatalf("Prefs.TimeFormat = %v, want H24", board.Prefs.TimeFormat)
	}
}

func TestBoard_CalendarComparer(t *testing.T) {
	s := New(snapshot.Snapshot{
		Source:  time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		Entries: []zone.Entry{{ID: 1, Zone: "UTC"}},
	}, Options{
		Picker:  zone.FixedPicker{},
		Now:     func() time.Time { return time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC) },
		Compare: clock.CompareCalendarDay,
	})
	if got := s.Board().Views[0].RelativeDay; got != clock.Next {
		t.Fatalf("RelativeDay = %v, want Next with calendar comparison", got)
	}
}
