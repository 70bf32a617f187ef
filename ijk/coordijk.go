// SPDX-License-Identifier: MIT
package ijk

// Add returns the component-wise sum c + o.
// Complexity: O(1).
func (c CoordIJK) Add(o CoordIJK) CoordIJK {
	return CoordIJK{c.I + o.I, c.J + o.J, c.K + o.K}
}

// Sub returns the component-wise difference c - o.
// Complexity: O(1).
func (c CoordIJK) Sub(o CoordIJK) CoordIJK {
	return CoordIJK{c.I - o.I, c.J - o.J, c.K - o.K}
}

// Scale returns c with every component multiplied by factor.
// Complexity: O(1).
func (c CoordIJK) Scale(factor int) CoordIJK {
	return CoordIJK{c.I * factor, c.J * factor, c.K * factor}
}

// Normalize reduces c to the canonical representative of its lattice
// position: all components non-negative with at least one zero.
// Idempotent.
// Complexity: O(1).
func (c CoordIJK) Normalize() CoordIJK {
	// remove any negative components by shifting along the redundant axis
	if c.I < 0 {
		c.J -= c.I
		c.K -= c.I
		c.I = 0
	}
	if c.J < 0 {
		c.I -= c.J
		c.K -= c.J
		c.J = 0
	}
	if c.K < 0 {
		c.I -= c.K
		c.J -= c.K
		c.K = 0
	}

	// remove the common minimum
	min := c.I
	if c.J < min {
		min = c.J
	}
	if c.K < min {
		min = c.K
	}
	if min > 0 {
		c.I -= min
		c.J -= min
		c.K -= min
	}

	return c
}

// Direction returns the digit matching a normalized unit coordinate,
// or Invalid when c is not a unit coordinate.
// Complexity: O(1).
func (c CoordIJK) Direction() Direction {
	n := c.Normalize()
	for d := Center; d < Invalid; d++ {
		if unitVecs[d] == n {
			return d
		}
	}

	return Invalid
}

// Neighbor returns the coordinate displaced one cell in the given
// digit direction, normalized. Center and Invalid leave c unchanged.
// Complexity: O(1).
func (c CoordIJK) Neighbor(d Direction) CoordIJK {
	if d <= Center || d >= Invalid {
		return c
	}

	return c.Add(unitVecs[d]).Normalize()
}

// Rotate60CCW rotates the coordinate 60° counter-clockwise in the hex
// plane. Six applications are the identity.
// Complexity: O(1).
func (c CoordIJK) Rotate60CCW() CoordIJK {
	// unit vector rotations: i → ij, j → jk, k → ik
	iVec := CoordIJK{1, 1, 0}.Scale(c.I)
	jVec := CoordIJK{0, 1, 1}.Scale(c.J)
	kVec := CoordIJK{1, 0, 1}.Scale(c.K)

	return iVec.Add(jVec).Add(kVec).Normalize()
}

// Rotate60CW rotates the coordinate 60° clockwise in the hex plane.
// Complexity: O(1).
func (c CoordIJK) Rotate60CW() CoordIJK {
	// unit vector rotations: i → ik, j → ij, k → jk
	iVec := CoordIJK{1, 0, 1}.Scale(c.I)
	jVec := CoordIJK{1, 1, 0}.Scale(c.J)
	kVec := CoordIJK{0, 1, 1}.Scale(c.K)

	return iVec.Add(jVec).Add(kVec).Normalize()
}

// Distance returns the lattice distance between two coordinates: the
// number of unit steps separating them.
// Complexity: O(1).
func (c CoordIJK) Distance(o CoordIJK) int {
	diff := c.Sub(o).Normalize()

	max := diff.I
	if diff.J > max {
		max = diff.J
	}
	if diff.K > max {
		max = diff.K
	}

	return max
}

// RotateCCW returns the digit rotated 60° counter-clockwise. Center and
// Invalid rotate to themselves.
func (d Direction) RotateCCW() Direction {
	switch d {
	case K:
		return IK
	case IK:
		return I
	case I:
		return IJ
	case IJ:
		return J
	case J:
		return JK
	case JK:
		return K
	default:
		return d
	}
}

// RotateCW returns the digit rotated 60° clockwise. Center and Invalid
// rotate to themselves.
func (d Direction) RotateCW() Direction {
	switch d {
	case K:
		return JK
	case JK:
		return J
	case J:
		return IJ
	case IJ:
		return I
	case I:
		return IK
	case IK:
		return K
	default:
		return d
	}
}
