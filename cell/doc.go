// Package cell is the public surface of the hexsphere grid: the 64-bit
// packed cell index and the conversions between indexes, points on the
// sphere, and cell outlines.
//
// What:
//
//   - Index packs mode, resolution [0..15], base cell [0..121] and up
//     to fifteen three-bit digits into one uint64; the zero Index is
//     the null index.
//   - LatLngToCell indexes a point at a resolution.
//   - CellToLatLng recovers the cell center; CellToBoundary the cell
//     outline (five or six vertices plus synthetic face-crossing
//     points, at most ten in total).
//   - Index.Resolution, Index.BaseCell, Index.IsPentagon and
//     Index.IsValid read an index without converting it.
//   - Index.String and ParseIndex implement the canonical fifteen-digit
//     lowercase hexadecimal text form.
//
// Why:
//
//   - The index is the persisted, comparable, hashable identity of a
//     cell; everything else in hexsphere exists to compute it and to
//     invert it.
//
// Complexity:
//
//   - All conversions: O(res) digit walks plus O(1) projection.
//
// Errors:
//
//   - ErrResolutionDomain: resolution outside [0..15].
//   - ErrLatLngDomain: non-finite latitude or longitude.
//   - ErrCellInvalid: an index that fails validation.
//   - ErrParse: malformed index literal.
package cell
