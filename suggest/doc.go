// Package suggest derives joint solve suggestions from a construction.
//
// Given an equation node, Solve walks the construction backwards from it and
// collects up to Limit (default 4) equations that can be solved together:
// each predecessor must be an algebraic equation (free, or produced by an
// Expression), use only variables of the triggering equation, and not
// already feed a Solve algorithm. The walk stops at the first predecessor
// that fails these checks.
//
// The query is read-only. Apply labels the involved nodes, latest first, and
// returns the command text for an external algebra system.
package suggest
