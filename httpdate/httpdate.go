// Package httpdate converts between Unix timestamps and the textual
// date formats used in HTTP header fields (RFC 9110 section 5.6.7).
//
// Formatting always produces the preferred IMF-fixdate form, e.g.
// "Sun, 06 Nov 1994 08:49:37 GMT". Parsing additionally accepts the
// obsolete RFC 850 and asctime forms. All conversions are pure
// functions over caller-owned buffers: they never allocate, never
// panic on malformed input, and hold no state between calls.
package httpdate

import "errors"

var (
	// ErrDateTooFar is returned by Format when the timestamp falls at or
	// past year 10000, which IMF-fixdate's four-digit year cannot represent.
	ErrDateTooFar = errors.New("httpdate: date too far in the future")

	// ErrInvalidDate is returned by Parse for any input that is not a
	// well-formed date in one of the three supported formats.
	ErrInvalidDate = errors.New("httpdate: invalid date")
)
