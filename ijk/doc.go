// Package ijk implements coordinates on a two-dimensional triangular
// lattice using three axes at 120°, the substrate every hexsphere cell
// address is built on.
//
// What:
//
//   - CoordIJK is a signed integer (i,j,k) triple with one redundant
//     axis; Normalize reduces any triple to the unique representative
//     with min(i,j,k) == 0.
//   - Direction is one of the seven cell digits: the center plus the
//     six unit directions K, J, JK, I, IK, IJ.
//   - Rotate60CCW / Rotate60CW rotate a coordinate in the hex plane.
//   - DownAp7 / DownAp7R / UpAp7 / UpAp7R move between adjacent
//     resolutions of the aperture-7 hierarchy (seven children per cell,
//     axes alternating ±asin(√(3/28)) between even and odd levels).
//   - DownAp3 / DownAp3R refine onto the ×3 "substrate" grid that
//     carries cell vertices as integer lattice points.
//   - Hex2d / FromHex2d convert between lattice coordinates and
//     real-valued face-plane coordinates.
//
// Why:
//
//   - Indexing: a cell address is the digit sequence recovered by
//     walking UpAp7/UpAp7R from the target resolution to resolution 0.
//   - Boundaries: cell vertices are lattice points of the substrate
//     grid, so vertex math stays exact until the final projection.
//
// Complexity:
//
//   - Every operation: O(1) time, O(1) memory; all values are immutable.
//
// Errors:
//
//   - None. Direction() returns Invalid for a non-unit input; all other
//     operations are total.
package ijk
