// Package faceijk places lattice coordinates onto the twenty triangular
// faces of an icosahedron inscribed in the unit sphere, and carries the
// machinery that keeps cell addresses on the correct face.
//
// What:
//
//   - FaceIJK pairs a face number [0..19] with an ijk.CoordIJK in that
//     face's local coordinate system.
//   - AdjustOverageClassII reconciles coordinates that fall outside
//     their home face onto the correct neighboring face, applying the
//     neighbor's rotation and translation; AdjustPentVertOverage
//     iterates it for pentagon vertices that hop more than one face.
//   - FromLatLng / ToLatLng run the gnomonic projection between a
//     point on the sphere and face-plane coordinates at a resolution.
//   - Boundary / PentBoundary trace the cell outline, inserting a
//     synthetic vertex wherever a cell edge crosses an icosahedron
//     face edge (every Class III edge between faces does).
//
// Why:
//
//   - Each face is its own projection plane. Indexing, center-point
//     recovery and boundary tracing all hinge on knowing which face a
//     coordinate actually belongs to.
//
// Complexity:
//
//   - Projection and overage: O(1). Boundary: O(v) for v ≤ 6 vertices
//     plus at most one synthetic vertex per edge.
//
// Errors:
//
//   - None returned. A missing adjacent-face relation during boundary
//     tracing means a corrupt static table and panics.
package faceijk
