package cell

import "github.com/katalvlaran/hexsphere/ijk"

// ChildForTest builds the direct child of c with the given digit at the
// next resolution; used by the parent/child invariant tests.
func (c Index) ChildForTest(res, digit int) Index {
	return c.setResolution(res).setDigit(res, ijk.Direction(digit))
}
