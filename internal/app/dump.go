package app

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/five82/tzboard/internal/clock"
	"github.com/five82/tzboard/internal/state"
)

type dumpCard struct {
	ID         int    `yaml:"id"`
	Title      string `yaml:"title"`
	Zone       string `yaml:"tz"`
	TimeFormat string `yaml:"timeformat"`
	Time       string `yaml:"time"`
	Day        string `yaml:"day,omitempty"`
	Date       string `yaml:"date,omitempty"`
	Error      string `yaml:"error,omitempty"`
}

type dumpBoard struct {
	Source     string     `yaml:"source"`
	DateFormat string     `yaml:"dateformat"`
	TimeFormat string     `yaml:"timeformat"`
	Cards      []dumpCard `yaml:"cards"`
}

// Dump writes the board as YAML.
func Dump(w io.Writer, b state.Board) error {
	out := dumpBoard{
		Source:     b.Canonical.UTC().Format(time.RFC3339),
		DateFormat: b.Prefs.DateFormat.String(),
		TimeFormat: b.Prefs.TimeFormat.String(),
		Cards:      make([]dumpCard, 0, len(b.Views)),
	}
	for _, v := range b.Views {
		card := dumpCard{
			ID:         v.EntryID,
			Title:      v.Title,
			Zone:       v.Zone,
			TimeFormat: v.TimeFormat.String(),
			Time:       v.Text,
			Date:       v.Date,
		}
		switch {
		case v.Err != nil:
			card.Error = v.Err.Error()
		case b.Prefs.DateFormat == clock.TimeOnly:
			card.Day = v.RelativeDay.String()
		}
		out.Cards = append(out.Cards, card)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	return enc.Close()
}
