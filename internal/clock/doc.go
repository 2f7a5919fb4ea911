// Package clock converts between a canonical instant and the wall-clock text
// shown on a zone card.
//
// # Overview
//
// Every card on the board renders the same instant in its own zone. This
// package is the pure formatting layer underneath that: it never stores
// state, it only converts.
//
//   - Format renders an instant as "03:04 PM" (H12) or "15:04" (H24)
//   - FormatDate renders the zone-local calendar date as "02 Jan 2006"
//   - Parse reads typed wall-clock text back into an instant on the
//     zone-local day of a reference instant
//   - RelativeDay reports whether a zone's local day is before, equal to or
//     after a reference day
//
// # Zone Resolution
//
// Zone names are IANA identifiers resolved with time.LoadLocation. The
// tzdata database is embedded so resolution does not depend on the host.
// Resolved locations are cached for the life of the process.
//
// # Errors
//
// Formatting failures are reported as *FormatError and are expected to be
// handled at the call site by rendering a blank card. Parse failures wrap
// ErrParseInvalid; callers check with errors.Is and drop the edit.
//
// # Relative Day
//
// RelativeDay compares day-of-month numbers only. Across a month boundary
// (31st vs 1st) the result is inverted. CompareCalendarDay is the
// calendar-correct comparison and can be passed to RelativeDayBy where that
// matters.
package clock
