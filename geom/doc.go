// Package geom provides the homogeneous 2D primitives shared by every shape
// kind of a construction: coordinates, lines in coefficient form and the
// free functions that join, project and measure them.
//
// What:
//
//   - Coords: a homogeneous triple (X, Y, Z). Finite points have Z ≠ 0,
//     directions (vectors, points at infinity) have Z = 0.
//   - Line: the coefficient triple of X·x + Y·y + Z = 0.
//   - Join, Meet, Direction, Project, Distance, ParameterAlong: free
//     functions instead of per-shape methods, so rays, segments and full
//     lines all share one implementation.
//
// Conventions:
//
//   - The direction of a line is (Y, -X). For Join(A, B) of two affine
//     points this equals B - A, which makes "start + t·direction" reach B
//     at t = 1.
//   - Undefined geometry is represented by NaN components; IsDefined
//     reports it.
//
// Complexity:
//
//   - Every function is O(1).
package geom
