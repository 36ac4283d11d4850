// Package kernel implements the construction dependency engine: a set of
// geometric and algebraic nodes, the algorithms that compute some nodes from
// others, and the bookkeeping that keeps every derived node consistent when
// an input changes.
//
// Model:
//
//	– Element   a node holding one Value of a fixed Kind, an optional label,
//	            the algorithm that produces it (NoAlgo for free nodes) and the
//	            set of algorithms that consume it.
//	– Algorithm an ordered list of input nodes, an ordered list of output nodes
//	            and a Computer that derives output values from input values.
//	– Construction
//	            the arena owning every element and algorithm, addressed by
//	            NodeID / AlgoID handles, plus one global order that is always a
//	            valid topological order of the dependency DAG.
//
// Propagation:
//
//	A mutation marks nodes dirty and walks the stored order once, starting at
//	the earliest dirty position. An algorithm is recomputed when any of its
//	inputs is dirty, at most once per pass, so diamond fan-in and multi-output
//	algorithms never compute twice. A degenerate computation leaves its outputs
//	in the undefined state, which flows on to dependents and heals on the next
//	well-defined input.
//
// Structural edits:
//
//	CreateAlgorithm, Redefine and Remove validate first and mutate second.
//	Edits that would close a cycle fail with ErrCyclicDependency and leave the
//	construction untouched. Redefine re-threads the affected suffix of the order
//	with a stable topological sort so the node lands right after its latest
//	input and unrelated nodes keep their creation order.
//
// Paths:
//
//	Lines, rays and segments implement the path.Path capability. A point created
//	with CreatePointOnPath is owned by an internal on-path algorithm: moving it
//	(PointChanged) projects and clamps the raw position, and changes of the path
//	geometry (PathChanged, or ordinary propagation) keep its parameter and clamp
//	it into range.
//
// Complexity:
//
//	– Propagation: O(N + E) per pass over N ordered nodes and E dependency edges.
//	– Cycle pre-check: O(N + E) reachability.
//	– Redefine re-thread: O(K log K) over the K nodes after the redefined one.
//	– Remove: O(N + E) descendant BFS plus order compaction.
//
// Errors (sentinel):
//
//	– ErrNodeNotFound             unknown or removed NodeID.
//	– ErrCyclicDependency         structural edit would create a cycle.
//	– ErrNodeIsDependent          direct mutation of an algorithm output.
//	– ErrIncompatibleRedefinition redefinition refused by the active rule.
//	– ErrKindMismatch             value variant differs from the node kind.
//	– ErrNotAPath / ErrNotOnPath  path capability misuse.
//	– ErrLabelTaken / ErrInvalidLabel
//	                              label bookkeeping.
//	– ErrArity                    wrong number of inputs or outputs.
//
// Concurrency:
//
//	A Construction is safe for concurrent use; every edit and its propagation
//	pass run under one exclusive lock, readers never observe a partial order.
package kernel
