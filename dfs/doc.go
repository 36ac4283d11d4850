// Package dfs implements the ordering queries of a construction's
// dependency index: reachability (the cycle pre-check of every structural
// edit), cycle detection, and a stable topological sort used to re-thread
// the construction order after a redefinition.
//
// What:
//
//   - Reachable(g, from, targets...): depth-first search from a vertex,
//     reporting the first target found. An edit that makes u an input of v
//     closes a cycle exactly when u is reachable from v (or u == v).
//   - DetectCycle(g): White/Gray/Black colouring over every vertex; returns
//     one cycle when the index is not a DAG.
//   - TopologicalSort(g, order): reorders a slice of vertices so that every
//     edge between two of them points forward. Among vertices whose inputs
//     are placed, the one that came first in order is emitted first, so a
//     vertex moves only as far as its latest input forces it to and
//     otherwise keeps its relative position.
//
// Why:
//
//   - Reject cyclic edits before any mutation.
//   - Keep creation order as the tie-break between independent nodes.
//
// Complexity:
//
//   - Reachable:       Time O(V+E), Memory O(V)
//   - DetectCycle:     Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O((V+E)·log V), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrVertexNotFound  a start vertex is not in the graph
//   - ErrCycleDetected   the vertices cannot be ordered
package dfs
