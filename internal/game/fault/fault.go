// Package fault defines the two error categories surfaced to users of the
// salvage and loot tools.
package fault

import "errors"

// ErrStorage is wrapped by every error caused by the table store: driver
// failures, unreachable databases, and lookups that matched no row.
var ErrStorage = errors.New("storage error")

// ErrDataFormat is wrapped by every error caused by malformed table data or
// input: unparseable dice expressions, numeric fields out of range, and
// invalid item levels.
var ErrDataFormat = errors.New("data format error")

// Category returns the human-readable category for err.
//
// Postcondition: Returns "Database Error" for ErrStorage, "Data Format Error"
// for ErrDataFormat, and "Error" for anything else.
func Category(err error) string {
	switch {
	case errors.Is(err, ErrStorage):
		return "Database Error"
	case errors.Is(err, ErrDataFormat):
		return "Data Format Error"
	default:
		return "Error"
	}
}
