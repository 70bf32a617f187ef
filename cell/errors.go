// SPDX-License-Identifier: MIT
// Package cell: sentinel error set. All public operations return these
// sentinels and callers match them via errors.Is; the zero Index
// doubles as the null value alongside every error return.
package cell

import "errors"

var (
	// ErrResolutionDomain is returned when a resolution lies outside
	// [0..15].
	ErrResolutionDomain = errors.New("cell: resolution out of range")

	// ErrLatLngDomain is returned when a latitude or longitude is NaN or
	// infinite.
	ErrLatLngDomain = errors.New("cell: latitude or longitude not finite")

	// ErrCellInvalid is returned when an index fails validation: wrong
	// mode, nonzero reserved bits, base cell or digits out of range, or
	// a pentagon index with a leading K digit.
	ErrCellInvalid = errors.New("cell: invalid cell index")

	// ErrParse is returned for a malformed index literal.
	ErrParse = errors.New("cell: malformed index literal")
)
