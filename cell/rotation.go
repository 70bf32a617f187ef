// SPDX-License-Identifier: MIT
// Package cell: index-level rotations, expressed as digit permutations.
package cell

import "github.com/katalvlaran/hexsphere/ijk"

// Rotate60CCW rotates the index 60° counter-clockwise by substituting
// every digit; the tail 7s are untouched because Invalid rotates to
// itself.
func (c Index) Rotate60CCW() Index {
	res := c.Resolution()
	for r := 1; r <= res; r++ {
		c = c.setDigit(r, c.digit(r).RotateCCW())
	}

	return c
}

// Rotate60CW rotates the index 60° clockwise.
func (c Index) Rotate60CW() Index {
	res := c.Resolution()
	for r := 1; r <= res; r++ {
		c = c.setDigit(r, c.digit(r).RotateCW())
	}

	return c
}

// RotatePent60CCW rotates a pentagon-anchored index 60° ccw. When the
// rotation turns the leading non-zero digit into K — the pentagon's
// deleted direction — an extra ccw rotation moves the whole tail off
// the missing subsequence.
func (c Index) RotatePent60CCW() Index {
	foundFirstNonZero := false
	res := c.Resolution()
	for r := 1; r <= res; r++ {
		c = c.setDigit(r, c.digit(r).RotateCCW())

		if !foundFirstNonZero && c.digit(r) != ijk.Center {
			foundFirstNonZero = true
			if c.leadingNonZeroDigit() == ijk.K {
				c = c.Rotate60CCW()
			}
		}
	}

	return c
}

// RotatePent60CW is the clockwise counterpart of RotatePent60CCW.
func (c Index) RotatePent60CW() Index {
	foundFirstNonZero := false
	res := c.Resolution()
	for r := 1; r <= res; r++ {
		c = c.setDigit(r, c.digit(r).RotateCW())

		if !foundFirstNonZero && c.digit(r) != ijk.Center {
			foundFirstNonZero = true
			if c.leadingNonZeroDigit() == ijk.K {
				c = c.Rotate60CW()
			}
		}
	}

	return c
}
