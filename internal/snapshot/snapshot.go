// Package snapshot defines the persisted form of the board: the tracked
// entries, the canonical instant and the global format preferences.
//
// The board is stored as a flat record of four string keys so that any
// key-value store can hold it:
//
//	timezones   JSON array of {id, title, tz, timeformat}
//	source      canonical instant, RFC 3339 in UTC
//	dateformat  "time" or "datetime"
//	timeformat  "12" or "24"
//
// Where the record lives is up to the Saver/Loader implementation.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/five82/tzboard/internal/clock"
	"github.com/five82/tzboard/internal/zone"
)

// Record keys.
const (
	KeyTimezones  = "timezones"
	KeySource     = "source"
	KeyDateFormat = "dateformat"
	KeyTimeFormat = "timeformat"
)

// Keys lists every record key in write order.
var Keys = []string{KeyTimezones, KeySource, KeyDateFormat, KeyTimeFormat}

// ErrCorrupt reports a stored record with missing or malformed fields.
var ErrCorrupt = errors.New("snapshot corrupt")

// Snapshot is everything needed to rebuild the board at startup.
type Snapshot struct {
	Entries    []zone.Entry
	Source     time.Time
	DateFormat clock.DateFormat
	TimeFormat clock.TimeFormat
}

// Record is the flat key-value form of a Snapshot.
type Record map[string]string

// Saver persists a snapshot.
type Saver interface {
	Save(ctx context.Context, s Snapshot) error
}

// Loader reads the last saved snapshot. ok is false when nothing was saved.
type Loader interface {
	Load(ctx context.Context) (s Snapshot, ok bool, err error)
}

// Encode flattens s into a Record.
func Encode(s Snapshot) (Record, error) {
	entries := s.Entries
	if entries == nil {
		entries = []zone.Entry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("marshal timezones: %w", err)
	}
	return Record{
		KeyTimezones:  string(raw),
		KeySource:     s.Source.UTC().Format(time.RFC3339Nano),
		KeyDateFormat: s.DateFormat.String(),
		KeyTimeFormat: s.TimeFormat.String(),
	}, nil
}

// Decode rebuilds a Snapshot from r. The timezones and source keys are
// required; empty format keys fall back to TimeOnly and H12. Every failure
// wraps ErrCorrupt.
func Decode(r Record) (Snapshot, error) {
	var s Snapshot

	rawZones, ok := r[KeyTimezones]
	if !ok || strings.TrimSpace(rawZones) == "" {
		return Snapshot{}, fmt.Errorf("%w: missing %s", ErrCorrupt, KeyTimezones)
	}
	if err := json.Unmarshal([]byte(rawZones), &s.Entries); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, KeyTimezones, err)
	}

	rawSource := strings.TrimSpace(r[KeySource])
	if rawSource == "" {
		return Snapshot{}, fmt.Errorf("%w: missing %s", ErrCorrupt, KeySource)
	}
	source, err := time.Parse(time.RFC3339Nano, rawSource)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, KeySource, err)
	}
	s.Source = source.UTC()

	if v := strings.TrimSpace(r[KeyDateFormat]); v != "" {
		if s.DateFormat, err = clock.ParseDateFormat(v); err != nil {
			return Snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}
	if v := strings.TrimSpace(r[KeyTimeFormat]); v != "" {
		if s.TimeFormat, err = clock.ParseTimeFormat(v); err != nil {
			return Snapshot{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}
	return s, nil
}
