package kernel

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors returned by Construction methods.
var (
	// ErrNodeNotFound indicates an unknown or already removed node handle.
	ErrNodeNotFound = errors.New("kernel: node not found")

	// ErrAlgorithmNotFound indicates an unknown or detached algorithm handle.
	ErrAlgorithmNotFound = errors.New("kernel: algorithm not found")

	// ErrCyclicDependency indicates a structural edit that would make a node
	// depend on itself. The construction is left unchanged.
	ErrCyclicDependency = errors.New("kernel: cyclic dependency")

	// ErrNodeIsDependent indicates an attempt to set the value of a node that
	// is produced by an algorithm.
	ErrNodeIsDependent = errors.New("kernel: node is dependent")

	// ErrIncompatibleRedefinition indicates a redefinition refused by the
	// supplied RedefinitionRule.
	ErrIncompatibleRedefinition = errors.New("kernel: incompatible redefinition")

	// ErrKindMismatch indicates a value or input of the wrong kind.
	ErrKindMismatch = errors.New("kernel: kind mismatch")

	// ErrNotAPath indicates a node whose kind has no path capability.
	ErrNotAPath = errors.New("kernel: node is not a path")

	// ErrNotOnPath indicates a node that is not constrained to a path.
	ErrNotOnPath = errors.New("kernel: node is not on a path")

	// ErrLabelTaken indicates a label already used by another node.
	ErrLabelTaken = errors.New("kernel: label already taken")

	// ErrInvalidLabel indicates a syntactically invalid label.
	ErrInvalidLabel = errors.New("kernel: invalid label")

	// ErrArity indicates a wrong number of inputs or outputs.
	ErrArity = errors.New("kernel: wrong number of arguments")

	// ErrInvariant indicates a construction whose internal bookkeeping is
	// inconsistent; reported by Validate.
	ErrInvariant = errors.New("kernel: construction invariant violated")

	// ErrUndefined is returned by Computer.Compute for a degenerate result.
	// The construction turns it into the undefined node state; it is never
	// returned to callers of Construction methods.
	ErrUndefined = errors.New("kernel: undefined result")
)

// NodeID is a handle into the element arena of one Construction.
type NodeID int

// AlgoID is a handle into the algorithm arena of one Construction.
type AlgoID int

const (
	// NoNode marks an empty output slot.
	NoNode NodeID = -1
	// NoAlgo is the parent of a free node.
	NoAlgo AlgoID = -1
)

// Feature names an optional engine behaviour enabled through Config.
type Feature string

const (
	// FeatureAdjustWidgets enables reload-time slider repositioning.
	FeatureAdjustWidgets Feature = "adjust_widgets"
	// FeatureSymbolicSolve enables joint solve suggestions.
	FeatureSymbolicSolve Feature = "symbolic_solve"
)

// DefaultEpsilon is the incidence tolerance used when Config.Epsilon is zero.
const DefaultEpsilon = 1e-8

// Config is the explicit engine configuration passed to New.
type Config struct {
	// Epsilon is the tolerance for path incidence tests.
	Epsilon float64
	// PruneUnchanged stops propagation through outputs whose value and
	// definedness did not change.
	PruneUnchanged bool
	// SuggestionLimit caps the number of equations a solve suggestion joins.
	SuggestionLimit int
	// Features lists enabled optional behaviours.
	Features map[Feature]bool
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		Epsilon:         DefaultEpsilon,
		SuggestionLimit: 4,
		Features: map[Feature]bool{
			FeatureAdjustWidgets: true,
			FeatureSymbolicSolve: true,
		},
	}
}

// Enabled reports whether f is switched on.
func (c Config) Enabled(f Feature) bool { return c.Features[f] }

// PassStats summarises one propagation pass.
type PassStats struct {
	Dirty     int // nodes marked dirty, seeds included
	Computed  int // algorithms recomputed
	Undefined int // outputs left undefined
}

// Labeler proposes a fresh label for a node of the given kind. taken reports
// whether a candidate is already in use.
type Labeler func(kind Kind, taken func(string) bool) string

// Option configures a Construction.
type Option func(*Construction)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(c *Construction) {
		if cfg.Epsilon <= 0 {
			cfg.Epsilon = DefaultEpsilon
		}
		if cfg.SuggestionLimit <= 0 {
			cfg.SuggestionLimit = 4
		}
		if cfg.Features == nil {
			cfg.Features = map[Feature]bool{}
		}
		c.cfg = cfg
	}
}

// WithLogger sets the structured logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Construction) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(c *Construction) { c.metrics = m }
}

// WithLabeler replaces DefaultLabeler.
func WithLabeler(l Labeler) Option {
	return func(c *Construction) {
		if l != nil {
			c.labeler = l
		}
	}
}
