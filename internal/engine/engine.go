// Package engine owns the canonical instant every zone card is rendered from.
//
// The canonical instant moves in two ways only: Tick overwrites it with the
// current wall clock, and ApplyEdit retimes it from text typed into one
// zone's card. An edit only ever changes the hour and minute of the canonical
// instant; its calendar date is kept (see RetimeKeepingDate).
//
// Engine is not safe for concurrent use. Its owner serializes calls.
package engine

import (
	"time"

	"github.com/five82/tzboard/internal/clock"
)

// Engine holds the canonical instant, always in UTC.
type Engine struct {
	canonical time.Time
}

// New returns an engine whose canonical instant is initial.
func New(initial time.Time) *Engine {
	return &Engine{canonical: initial.UTC()}
}

// Canonical returns the current canonical instant.
func (e *Engine) Canonical() time.Time {
	return e.canonical
}

// Tick replaces the canonical instant with now. Pending edits are not
// reconciled; the last tick wins.
func (e *Engine) Tick(now time.Time) {
	e.canonical = now.UTC()
}

// ApplyEdit parses text as zoneName's wall clock and moves the canonical
// instant to the resulting UTC hour and minute. When the text does not parse
// the canonical instant is left unchanged and the parse error is returned.
func (e *Engine) ApplyEdit(zoneName string, tf clock.TimeFormat, text string) (time.Time, error) {
	parsed, err := clock.Parse(text, zoneName, tf, e.canonical)
	if err != nil {
		return e.canonical, err
	}
	utc := parsed.UTC()
	e.canonical = RetimeKeepingDate(e.canonical, utc.Hour(), utc.Minute())
	return e.canonical, nil
}

// RetimeKeepingDate returns t with its UTC hour and minute replaced. Year,
// month, day, seconds and nanoseconds are kept, so an edit never moves the
// canonical date even when the edited zone is on a different calendar day.
func RetimeKeepingDate(t time.Time, hour, minute int) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), hour, minute, u.Second(), u.Nanosecond(), time.UTC)
}
