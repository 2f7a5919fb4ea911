package state

import (
	"time"

	"github.com/five82/tzboard/internal/clock"
	appLog "github.com/five82/tzboard/internal/log"
	"github.com/five82/tzboard/internal/zone"
)

// View is the rendered form of one entry. It is derived on demand and never
// stored.
type View struct {
	EntryID    int
	Title      string
	Zone       string
	TimeFormat clock.TimeFormat
	ColorSlot  int

	// Text is the wall-clock time in the entry's zone, empty when Err is set.
	Text        string
	RelativeDay clock.Day
	// Date is the zone-local date, filled only for clock.DateAndTime.
	Date string
	Err  error
}

// Board is the read model handed to the renderer.
type Board struct {
	Views     []View
	Prefs     Prefs
	Canonical time.Time

	// LocalTime and UTCTime show the real wall clock in the global format.
	LocalTime string
	UTCTime   string

	LastSaveError error
}

// Board renders every entry against the canonical instant.
func (s *Store) Board() Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	canonical := s.engine.Canonical()
	now := s.now()

	b := Board{
		Prefs:         s.prefs,
		Canonical:     canonical,
		LastSaveError: s.lastSaveErr,
	}
	b.LocalTime, _ = clock.Format(now, "Local", s.prefs.TimeFormat)
	b.UTCTime, _ = clock.Format(now, "UTC", s.prefs.TimeFormat)

	for _, e := range s.registry.Entries() {
		b.Views = append(b.Views, s.view(e, canonical, now))
	}
	return b
}

func (s *Store) view(e zone.Entry, canonical, now time.Time) View {
	v := View{
		EntryID:    e.ID,
		Title:      e.Title,
		Zone:       e.Zone,
		TimeFormat: e.TimeFormat,
		ColorSlot:  s.colorSlot(e.ID),
	}

	text, err := clock.Format(canonical, e.Zone, e.TimeFormat)
	if err != nil {
		if s.renderFailed[e.ID] != e.Zone {
			appLog.Error("render zone failed", err, "id", e.ID, "tz", e.Zone)
			s.renderFailed[e.ID] = e.Zone
		}
		v.Err = err
		return v
	}
	delete(s.renderFailed, e.ID)
	v.Text = text

	if s.prefs.DateFormat == clock.DateAndTime {
		v.Date, _ = clock.FormatDate(canonical, e.Zone)
		return v
	}
	v.RelativeDay, _ = clock.RelativeDayBy(s.compare, canonical, e.Zone, now)
	return v
}

// colorSlot returns the entry's display color, picking one on first use.
// Colors are not persisted.
func (s *Store) colorSlot(id int) int {
	if slot, ok := s.colors[id]; ok {
		return slot
	}
	slot := s.picker.PickColorSlot()
	s.colors[id] = slot
	return slot
}
