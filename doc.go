// Package hexsphere tiles the Earth with a hierarchy of hexagonal cells —
// an icosahedral, aperture-7 discrete global grid with sixteen resolutions
// and a 64-bit packed cell index.
//
// 🚀 What is hexsphere?
//
//	A deterministic, pure-compute geospatial indexing library that brings together:
//		• Spherical primitives: lat/lng in radians, azimuths, great-circle stepping
//		• Lattice coordinates: (i,j,k) hex coordinates with aperture-7/3 refinement
//		• Icosahedron faces: gnomonic projection, overage adjustment, boundary tracing
//		• Base cells: the 122 resolution-0 cells, twelve of them pentagons
//		• Cell index: a 64-bit bit-packed identifier with 15 three-bit digits
//
// ✨ Why choose hexsphere?
//
//   - Referentially transparent – every operation is a total function of its inputs
//   - No shared state – all lookup tables are read-only; safe from any goroutine
//   - Pure Go – no cgo, no I/O, no hidden caches
//   - Ecosystem-friendly – converts to and from golang/geo s2 types
//
// Under the hood, everything is organized under five subpackages:
//
//	geo/      — LatLng, azimuth & distance math, planar intersection
//	ijk/      — triangular-lattice integer coordinates & aperture transforms
//	faceijk/  — icosahedron face tables, projection, overage, cell boundaries
//	basecell/ — resolution-0 cell records, pentagon flags, face lookup
//	cell/     — the 64-bit index and the public latlng↔cell↔boundary API
//
// Quick ASCII example:
//
//	    lat,lng ──▶ face plane ──▶ (i,j,k) ──▶ 8075fffffffffff
//	                    ▲                            │
//	                    └────────── boundary ◀───────┘
//
//	a point indexes to a cell; a cell projects back to its center and outline.
//
// Dive into README-style package docs (each subpackage's doc.go) for the
// coordinate pipeline, the pentagon special cases, and worked examples.
//
//	go get github.com/katalvlaran/hexsphere/cell
package hexsphere
