// Package state owns the board: the canonical instant, the ordered zone
// entries and the global format preferences.
//
// # Overview
//
// Store is the one place the board is mutated. The UI routes every user
// action to a Store method, and the periodic tick source delivers ticks as
// messages that the UI loop hands to OnPeriodicTick. All methods take the
// same lock, so each operation completes before the next begins and the
// last tick or edit wins.
//
//	user input ──┐
//	             ├──> Store (mutex) ──> snapshot.Saver
//	tick message ┘          │
//	                        └──> Board() ──> renderer
//
// # Inbound Operations
//
//   - AddZone, RemoveZone
//   - EditZoneTitle, EditZoneFormat, EditZoneTimezone
//   - EditZoneClockText (routes to engine.ApplyEdit)
//   - SetGlobalDateFormat, SetGlobalTimeFormat
//   - OnPeriodicTick
//
// Every operation except OnPeriodicTick persists the board through the
// configured snapshot.Saver after it succeeds. A failing save is logged and
// exposed as Board.LastSaveError; it never undoes the operation.
//
// # Read Model
//
// Board derives one View per entry from the canonical instant. A zone that
// cannot be rendered produces a View with Err set and blank text rather than
// failing the whole board. In TimeOnly mode each View carries a relative
// day computed against the real wall clock; in DateAndTime mode it carries
// the zone-local date instead.
//
// # Startup
//
// Restore reads the saved snapshot once. Nothing saved, a corrupt record and
// a failing read all fall back to an empty board whose canonical instant is
// the current time.
//
// # Testing Considerations
//
// Inject Options.Now and a zone.FixedPicker to make boards deterministic, and
// use snapshot.MemoryStore to observe saves.
package state
