// Package algos provides the concrete algorithm kinds a construction computes
// with, and a Registry that resolves them by name.
//
// Every kind implements kernel.Computer: OutputKinds validates the input
// kinds at creation time, Compute derives the outputs from the current input
// values and returns kernel.ErrUndefined for degenerate geometry (coincident
// points, parallel lines, points at infinity).
//
// Kinds:
//
//	– Add, Subtract, Multiply       arithmetic on numbers, vectors and points.
//	– JoinPointsLine / Ray / Segment paths through two points.
//	– RayPointVector                 ray from a point along a vector.
//	– Midpoint, Translate            point constructions.
//	– Direction                      direction vector of a path.
//	– Intersect                      intersection of two paths, honouring
//	                                 outlying-intersection flags of rays.
//	– Expression                     equation built from number inputs.
//	– Solve                          joint solve command over equations.
package algos
