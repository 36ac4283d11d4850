// Package scenario drives a kernel.Construction from declarative YAML
// scripts. A script declares free nodes, then a list of steps: create
// algorithms, place points on paths, set and move values, redefine, remove,
// adjust sliders, query solve suggestions and check expectations.
//
// Example:
//
//	name: ray
//	nodes:
//	  - {label: A, kind: point, value: [0, 0]}
//	  - {label: B, kind: point, value: [1, 0]}
//	steps:
//	  - algorithm: {kind: JoinPointsRay, inputs: [A, B], outputs: [r]}
//	  - on_path: {label: P, path: r, at: [-3, 0]}
//	  - expect: {P: [0, 0]}
//	    expect_param: {P: 0}
//	  - set: {label: B, value: [0, 1]}
//	  - path_changed: P
//	  - expect: {P: [0, 0]}
//
// Runner.Run executes a script step by step inside OpenTelemetry spans and
// stops at the first failing step. Expectation failures wrap ErrExpectation;
// every error names the step index.
package scenario
