// Package geo provides the spherical and planar primitives underneath the
// hexsphere grid: latitude/longitude pairs in radians, azimuth and
// great-circle math on the unit sphere, and the planar segment
// intersection used when a cell edge crosses an icosahedron face edge.
//
// What:
//
//   - LatLng is a (lat, lng) pair in radians on the unit sphere.
//   - AzimuthRads / AzDistanceRads walk great circles from an origin.
//   - DistanceRads is the haversine great-circle distance.
//   - Vec3dFromLatLng lifts a LatLng onto the unit sphere as an r3.Vector.
//   - Intersect computes the crossing point of two planar segments.
//   - S2 / LatLngFromS2 bridge to github.com/golang/geo/s2.
//
// Why:
//
//   - Projection: the gnomonic face projection needs polar (r, θ)
//     decompositions around face centers.
//   - Face search: the closest icosahedron face is found by squared
//     chord distance between unit vectors.
//   - Boundary tracing: synthetic vertices sit at planar segment
//     intersections on a face plane.
//
// Complexity:
//
//   - All operations: O(1) time, O(1) memory.
//
// Errors:
//
//   - None. Every function is total on its documented domain; geometric
//     degeneracy (parallel segments in Intersect) is unreachable for
//     the table-driven callers in faceijk and panics if it occurs.
package geo
