package suggest

import (
	"slices"

	"github.com/katalvlaran/geokernel/algos"
	"github.com/katalvlaran/geokernel/kernel"
)

// Solve returns a solve suggestion for node id, or nil when none applies:
// id is not an algebraic equation, or it is a lone equation in two variables.
func Solve(c *kernel.Construction, id kernel.NodeID, opts ...Option) (*Suggestion, error) {
	if !c.Config().Enabled(kernel.FeatureSymbolicSolve) {
		return nil, ErrDisabled
	}
	o := Options{Limit: c.Config().SuggestionLimit}
	for _, opt := range opts {
		opt(&o)
	}
	trigger, err := c.Element(id)
	if err != nil {
		return nil, err
	}
	if !isAlgebraEquation(c, trigger) {
		return nil, nil
	}
	vars := equationVars(trigger)
	if len(vars) == 1 {
		return &Suggestion{Nodes: []kernel.NodeID{id}}, nil
	}

	nodes := []kernel.NodeID{id}
	err = c.Previous(id, func(e kernel.Element) bool {
		if len(nodes) >= o.Limit || !compatible(c, e, vars) {
			return false
		}
		nodes = append(nodes, e.ID)
		return true
	})
	if err != nil {
		return nil, err
	}
	if len(nodes) == 1 && len(vars) == 2 {
		return nil, nil
	}

	return &Suggestion{Nodes: nodes, Vars: vars}, nil
}

// Command renders the solve command with the current node labels.
func (s *Suggestion) Command(c *kernel.Construction) string {
	items := make([]string, len(s.Nodes))
	for i, id := range s.Nodes {
		items[i] = c.Label(id)
	}

	return algos.FormatSolve(items, s.Vars)
}

// Apply labels every unlabeled node, latest first, using the construction's
// labeler, and returns the command text.
func (s *Suggestion) Apply(c *kernel.Construction) (string, error) {
	for i := len(s.Nodes) - 1; i >= 0; i-- {
		if _, err := c.EnsureLabel(s.Nodes[i]); err != nil {
			return "", err
		}
	}

	return s.Command(c), nil
}

// isAlgebraEquation accepts free equations and equations produced by an
// Expression algorithm.
func isAlgebraEquation(c *kernel.Construction, e kernel.Element) bool {
	if e.Kind != kernel.KindEquation || !e.Defined {
		return false
	}
	if e.IsFree() {
		return true
	}
	a, err := c.Algorithm(e.Parent)

	return err == nil && a.Name == ExpressionAlgo
}

// compatible reports whether e may join a solve over vars.
func compatible(c *kernel.Construction, e kernel.Element, vars []string) bool {
	if !isAlgebraEquation(c, e) {
		return false
	}
	for _, v := range equationVars(e) {
		if !slices.Contains(vars, v) {
			return false
		}
	}

	return !feedsSolve(c, e)
}

// feedsSolve reports whether a Solve algorithm already consumes e.
func feedsSolve(c *kernel.Construction, e kernel.Element) bool {
	for _, aid := range e.Children {
		if a, err := c.Algorithm(aid); err == nil && a.Name == SolveAlgo {
			return true
		}
	}

	return false
}

func equationVars(e kernel.Element) []string {
	eq, ok := e.Value.(kernel.Equation)
	if !ok {
		return nil
	}
	var vars []string
	for _, v := range eq.Vars {
		if !slices.Contains(vars, v) {
			vars = append(vars, v)
		}
	}

	return vars
}
