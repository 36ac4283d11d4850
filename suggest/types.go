package suggest

import (
	"errors"

	"github.com/katalvlaran/geokernel/kernel"
)

// ErrDisabled indicates that FeatureSymbolicSolve is switched off.
var ErrDisabled = errors.New("suggest: symbolic solve disabled")

// Algorithm names recognised by the walk.
const (
	ExpressionAlgo = "Expression"
	SolveAlgo      = "Solve"
)

// Options configures Solve.
type Options struct {
	Limit int
}

// Option mutates Options.
type Option func(*Options)

// WithLimit caps the number of joined equations; values below 1 are ignored.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Limit = n
		}
	}
}

// Suggestion is a proposed joint solve. Nodes starts with the triggering
// equation followed by its predecessors, latest first.
type Suggestion struct {
	Nodes []kernel.NodeID
	Vars  []string
}
