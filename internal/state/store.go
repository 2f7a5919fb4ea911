package state

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/five82/tzboard/internal/clock"
	"github.com/five82/tzboard/internal/engine"
	appLog "github.com/five82/tzboard/internal/log"
	"github.com/five82/tzboard/internal/snapshot"
	"github.com/five82/tzboard/internal/zone"
)

// ErrNotFound is returned by edits addressed to an unknown entry id.
var ErrNotFound = errors.New("zone entry not found")

// Prefs are the board-wide format preferences.
type Prefs struct {
	DateFormat clock.DateFormat
	TimeFormat clock.TimeFormat
}

// Options configure a Store. Nil fields get defaults: no persistence, a
// random picker over the known zones, time.Now and the day-of-month
// relative-day comparison.
type Options struct {
	Saver   snapshot.Saver
	Picker  zone.Picker
	Now     func() time.Time
	Compare clock.DayComparer
}

// Store is the single owner of the canonical instant, the registry and the
// preferences. Every method runs to completion under one lock, so mutations
// apply in call order and never interleave.
type Store struct {
	mu       sync.Mutex
	engine   *engine.Engine
	registry *zone.Registry
	prefs    Prefs
	colors   map[int]int
	// renderFailed is the zone each failing entry was last logged for.
	renderFailed map[int]string

	saver   snapshot.Saver
	picker  zone.Picker
	now     func() time.Time
	compare clock.DayComparer

	lastSaveErr error
}

// New builds a store from snap.
func New(snap snapshot.Snapshot, opts Options) *Store {
	if opts.Picker == nil {
		opts.Picker = zone.NewRandomPicker(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Compare == nil {
		opts.Compare = clock.CompareDayOfMonth
	}
	source := snap.Source
	if source.IsZero() {
		source = opts.Now()
	}
	return &Store{
		engine:       engine.New(source),
		registry:     zone.NewRegistry(snap.Entries...),
		prefs:        Prefs{DateFormat: snap.DateFormat, TimeFormat: snap.TimeFormat},
		colors:       make(map[int]int),
		renderFailed: make(map[int]string),
		saver:        opts.Saver,
		picker:       opts.Picker,
		now:          opts.Now,
		compare:      opts.Compare,
	}
}

// Restore loads the saved snapshot once. A missing or corrupt snapshot falls
// back to an empty board at the current time; only a failing loader read is
// logged as an error.
func Restore(ctx context.Context, loader snapshot.Loader, opts Options) *Store {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	fallback := snapshot.Snapshot{Source: now()}

	if loader == nil {
		return New(fallback, opts)
	}
	snap, ok, err := loader.Load(ctx)
	switch {
	case err != nil && errors.Is(err, snapshot.ErrCorrupt):
		appLog.Error("saved board is corrupt, starting empty", err)
		return New(fallback, opts)
	case err != nil:
		appLog.Error("load saved board failed, starting empty", err)
		return New(fallback, opts)
	case !ok:
		appLog.Info("no saved board, starting empty")
		return New(fallback, opts)
	}
	appLog.Info("restored board", "zones", len(snap.Entries), "source", snap.Source.Format(time.RFC3339))
	return New(snap, opts)
}

// AddZone appends a new entry and persists the board.
func (s *Store) AddZone(ctx context.Context) zone.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.registry.Add(s.picker)
	s.colors[e.ID] = s.picker.PickColorSlot()
	appLog.Info("zone added", "id", e.ID, "tz", e.Zone)
	s.save(ctx)
	return e
}

// RemoveZone deletes the entry with id. Removing an unknown id is not an
// error; the board is persisted either way.
func (s *Store) RemoveZone(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.registry.Remove(id)
	if removed {
		delete(s.colors, id)
		appLog.Info("zone removed", "id", id)
	}
	s.save(ctx)
	return removed
}

// EditZoneTitle sets the entry's title.
func (s *Store) EditZoneTitle(ctx context.Context, id int, title string) error {
	return s.update(ctx, id, func(e *zone.Entry) error {
		e.Title = title
		return nil
	})
}

// EditZoneFormat sets the entry's 12/24-hour format.
func (s *Store) EditZoneFormat(ctx context.Context, id int, tf clock.TimeFormat) error {
	return s.update(ctx, id, func(e *zone.Entry) error {
		e.TimeFormat = tf
		return nil
	})
}

// EditZoneTimezone points the entry at another zone. Unresolvable names are
// rejected and leave the entry unchanged.
func (s *Store) EditZoneTimezone(ctx context.Context, id int, name string) error {
	name = strings.TrimSpace(name)
	if known, ok := zone.Lookup(name); ok {
		name = known
	}
	if _, err := clock.Resolve(name); err != nil {
		return err
	}
	return s.update(ctx, id, func(e *zone.Entry) error {
		e.Zone = name
		return nil
	})
}

// EditZoneClockText retimes the canonical instant from text typed into the
// entry's card. Text that does not parse is dropped: the canonical instant is
// unchanged and the error wraps clock.ErrParseInvalid.
func (s *Store) EditZoneClockText(ctx context.Context, id int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.registry.Find(id)
	if !ok {
		return fmt.Errorf("edit clock of zone %d: %w", id, ErrNotFound)
	}
	canonical, err := s.engine.ApplyEdit(e.Zone, e.TimeFormat, text)
	if err != nil {
		appLog.Debug("clock edit dropped", "id", id, "text", text, "reason", err)
		return err
	}
	appLog.Info("canonical instant retimed", "id", id, "text", text, "source", canonical.Format(time.RFC3339))
	s.save(ctx)
	return nil
}

// SetGlobalDateFormat switches between relative day and full date display.
func (s *Store) SetGlobalDateFormat(ctx context.Context, f clock.DateFormat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.DateFormat = f
	s.save(ctx)
}

// SetGlobalTimeFormat sets the format used by the header clocks.
func (s *Store) SetGlobalTimeFormat(ctx context.Context, f clock.TimeFormat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.TimeFormat = f
	s.save(ctx)
}

// OnPeriodicTick moves the canonical instant to now. Ticks are not
// persisted.
func (s *Store) OnPeriodicTick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Tick(now)
}

// Canonical returns the canonical instant.
func (s *Store) Canonical() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Canonical()
}

// Entries returns a copy of the entries in display order.
func (s *Store) Entries() []zone.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Entries()
}

// Prefs returns the current preferences.
func (s *Store) Prefs() Prefs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// Snapshot returns the persistable state.
func (s *Store) Snapshot() snapshot.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) update(ctx context.Context, id int, fn func(*zone.Entry) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fnErr error
	found := s.registry.Update(id, func(e *zone.Entry) {
		edited := *e
		if fnErr = fn(&edited); fnErr == nil {
			*e = edited
		}
	})
	if !found {
		return fmt.Errorf("edit zone %d: %w", id, ErrNotFound)
	}
	if fnErr != nil {
		return fnErr
	}
	s.save(ctx)
	return nil
}

func (s *Store) snapshotLocked() snapshot.Snapshot {
	return snapshot.Snapshot{
		Entries:    s.registry.Entries(),
		Source:     s.engine.Canonical(),
		DateFormat: s.prefs.DateFormat,
		TimeFormat: s.prefs.TimeFormat,
	}
}

// save persists the board. Failures are logged and kept for the read model.
func (s *Store) save(ctx context.Context) {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(ctx, s.snapshotLocked()); err != nil {
		s.lastSaveErr = err
		appLog.Error("save board failed", err)
		return
	}
	s.lastSaveErr = nil
}
