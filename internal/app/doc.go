// Package app is the composition root for tzboard.
//
// Run wires configuration, logging, persistence, the state store, the tick
// source and the UI:
//
//  1. Load ~/.config/tzboard/config.toml (defaults when missing)
//  2. Send log lines to the configured file
//  3. Open the bbolt board store, or an in-memory one for ephemeral runs
//  4. Restore the saved board; a missing or corrupt record starts empty
//  5. Start the cron tick source, which sends ui.TickMsg into the program
//  6. Run the Bubble Tea program until the user quits or ctx is cancelled
//
// # Components
//
//   - app.go: Run and startup wiring
//   - ticker.go: cron-driven tick source
//   - dump.go: YAML rendering of the board for the -dump flag
//
// # Data Flow
//
//	┌──────────────┐  TickMsg   ┌──────────────┐
//	│ StartTicker  │ ─────────> │  ui.Model    │
//	└──────────────┘            └──────┬───────┘
//	                                   │ edits, ticks
//	                                   v
//	                            ┌──────────────┐  Save   ┌──────────────┐
//	                            │ state.Store  │ ──────> │  boltstore   │
//	                            └──────────────┘         └──────────────┘
//
// The tick goroutine never touches the store directly; every mutation runs
// on the program's update loop.
package app
