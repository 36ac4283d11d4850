// Package bfs collects the transitive dependents of a set of nodes in a
// core.Graph by breadth-first search.
//
// The construction uses it to collect the cascade of a removal.
//
// What:
//
//   - Walk(g, roots, opts...) visits roots at depth 0, then their
//     successors at depth 1, and so on; each vertex is visited once even
//     when it is reachable along several paths (diamonds).
//   - Hook: OnVisit, called once per vertex; an error aborts the walk.
//
// Determinism:
//
//	Roots are visited in the order given; successors are enqueued in
//	ascending handle order.
//
// Complexity:
//
//   - Time O(V + E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil            graph pointer is nil
//   - ErrStartVertexNotFound a root is not in the graph
//   - hook errors            propagated from OnVisit
package bfs
