// Package basecell describes the 122 resolution-0 cells of the
// hexsphere grid: 110 hexagons and 12 pentagons, one pentagon centered
// on each icosahedron vertex.
//
// What:
//
//   - Home(cell) is the canonical face and lattice coordinate of a
//     resolution-0 cell; every cell has exactly one home even when it
//     overlaps several faces.
//   - FromFaceIJK / CCWRot60FromFaceIJK look a cell up from any face
//     that sees it, with the rotation between that face's system and
//     the cell's home orientation.
//   - IsPentagon / IsPolarPentagon / IsCwOffset expose the pentagon
//     flags that drive the deleted-K-subsequence handling.
//   - Neighbor / NeighborRot60CCW walk the resolution-0 adjacency
//     graph; a pentagon has no neighbor in the K direction.
//
// Why:
//
//   - Indexing terminates here: the digit walk of a cell address
//     bottoms out at a base cell, and the rotation returned by the
//     lookup canonicalizes the digits.
//
// The face lookup and the neighbor graph are expanded once at process
// start from the home records and the icosahedron face orientations;
// both are read-only afterwards.
//
// Complexity:
//
//   - All lookups: O(1).
//
// Errors:
//
//   - None. Out-of-range directions return InvalidBaseCell.
package basecell
