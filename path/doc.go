// Package path implements the Path capability: a parametrization of the
// points lying on a shape together with the legal parameter range.
//
// What:
//
//   - Path: PointOnPath(t), PathParameter(P), MinParameter, MaxParameter and
//     CarrierDistance (distance to the unbounded carrier geometry).
//   - Line:    t ∈ (-∞, +∞)
//   - Ray:     t ∈ [0, +∞)
//   - Segment: t ∈ [0, 1]
//   - PointChanged: raw position → projected, clamped parameter and position.
//   - PathChanged:  kept parameter → clamped parameter and position on the
//     (possibly moved) path.
//   - IsOnPath: two-stage incidence test (carrier first, bounds second).
//
// Clamping policy:
//
//	A parameter below MinParameter is clamped to exactly MinParameter and
//	the position snaps to PointOnPath(MinParameter), i.e. the start point of
//	a ray or segment. The symmetric rule applies at MaxParameter.
//
// Errors:
//
//	ErrUndefinedPath - the path geometry is degenerate (e.g. a ray through
//	                   two coincident points); callers treat the constrained
//	                   point as undefined.
//
// Complexity:
//
//   - Every operation is O(1).
package path
