// Package dataset loads the launch-records CSV into an immutable in-memory
// Table.
//
// Required columns (any order, extra columns ignored):
//   - "Launch Site"              site name
//   - "Payload Mass (kg)"        non-negative real
//   - "Booster Version Category" booster family, used for colouring
//   - "class"                    launch outcome, 1 = success, 0 = failure
//
// Load(path) and Parse(r) fail on a missing column, an unparsable cell, or a
// file with no data rows. Row-level failures are reported as *ParseError so
// callers can report the offending line.
//
// A Table is never mutated after Parse returns. All accessors hand out copies
// so it can be shared by concurrent readers without locking.
package dataset
