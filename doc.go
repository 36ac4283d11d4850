// Package geokernel is a dependency engine for interactive geometric
// constructions: free values, algorithms computed from them, and the
// incremental updates that keep every derived value current while the user
// drags, redefines and deletes.
//
// What is inside?
//
//	• Construction store: typed nodes, algorithms, one global order
//	• Propagation: one pass per edit, each algorithm computed at most once
//	• Redefinition: swap a node's definition, re-thread the order, reject cycles
//	• Removal: cascade through everything computed from a node
//	• Paths: points bound to lines, rays and segments by a parameter
//	• Widgets: reload-time slider repositioning
//	• Suggestions: joint Solve commands for adjacent equations
//
// Packages:
//
//	geom/       homogeneous 2D coordinates, joins, meets and projections
//	path/       the path capability and point-on-path resolution
//	core/       directed dependency graph with edge multiplicity
//	bfs/        breadth-first descendants for cascading removal
//	dfs/        reachability, cycle detection, stable topological order
//	kernel/     the construction engine itself
//	algos/      built-in algorithm kinds and their registry
//	adjust/     slider geometry correction
//	suggest/    symbolic solve suggestions
//	config/     YAML configuration, environment overrides, logger setup
//	scenario/   declarative YAML scripts driving a construction
//
// Quick ASCII example:
//
//	A ─┐
//	   ├─ JoinPointsRay ─→ r ─ PointOnPath ─→ P
//	B ─┘
//
// Moving B turns r; P keeps its parameter along r and follows.
//
//	go run ./cmd/geokernel run scenario/testdata/ray.yaml
package geokernel
