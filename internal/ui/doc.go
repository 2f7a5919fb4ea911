// Package ui renders the clock board with Bubble Tea.
//
// The model never owns board state. Every key press is translated into a
// call on state.Store, and the board is re-read from Store.Board after each
// call, so the screen always shows what the store holds.
//
// # Files
//
//   - app.go: Model, messages and the program constructor
//   - keys.go: key handling and the text-input edit modes
//   - cards.go: header, card grid, status line and command bar
//   - help.go: help overlay
//   - theme.go: color palettes and Lipgloss styles
//
// # Ticks
//
// The periodic tick arrives as a TickMsg sent into the running program. It
// is applied in the Update loop, after any edit already queued, which keeps
// the store the single writer of the canonical instant. A separate one
// second refresh only redraws the header clocks.
//
// # Key Bindings
//
//   - a: add a card
//   - x: remove the selected card
//   - enter or e: edit the clock time
//   - r: rename
//   - z: change timezone (tab completes)
//   - f: toggle the card's 12/24 hour format
//   - F: toggle the header's 12/24 hour format
//   - d: toggle relative day and full date
//   - T: cycle theme
//   - arrows or h/j/k/l: move, g/G: first/last
//   - ?: help
//   - q or Ctrl+C: quit
package ui
