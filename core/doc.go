// Package core provides the dependency index of a construction: a directed
// multigraph over integer vertex handles.
//
// A vertex is a node handle issued by the owning construction arena; an
// edge u→v records that v is computed (directly) from u. Parallel edges are
// counted, because one algorithm may read the same input twice (e.g. the
// midpoint of A and A), and removing one use must not erase the other.
//
// Why a separate index?
//
//   - The construction stores nodes and algorithms in arenas; the index only
//     answers topology questions (successors, predecessors, reachability).
//   - Traversals in bfs and dfs depend on this package alone, so they can be
//     tested without any geometric values.
//   - Deterministic iteration: Vertices(), Successors() and Predecessors()
//     return ascending handles.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v int) error          // O(1), idempotent
//	HasVertex(v int) bool           // O(1)
//	RemoveVertex(v int) error       // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to int) error     // O(1), multiplicity +1
//	RemoveEdge(from, to int) error  // O(1), multiplicity -1
//	HasEdge(from, to int) bool      // O(1)
//
//	// Query
//	Successors(v int) []int         // O(d·log d)
//	Predecessors(v int) []int       // O(d·log d)
//	Vertices() []int                // O(V·log V)
//	VertexCount(), EdgeCount() int  // O(1)
//
// Concurrency:
//
//	Graph is not synchronized. The owning construction serializes all
//	access under its own lock.
//
// Errors:
//
//	ErrBadVertex       – negative vertex handle
//	ErrVertexNotFound  – missing vertex
//	ErrEdgeNotFound    – missing edge
//	ErrLoopNotAllowed  – from == to
package core
