package kernel

import "slices"

// Computer derives output values from input values for one algorithm kind.
// Implementations must be pure: the same inputs yield the same outputs.
type Computer interface {
	// Name identifies the algorithm kind in logs, metrics and scripts.
	Name() string
	// OutputKinds validates the input kinds and returns the output kinds.
	// Errors should wrap ErrArity or ErrKindMismatch.
	OutputKinds(in []Kind) ([]Kind, error)
	// Compute returns one value per output kind. Returning ErrUndefined, or
	// any other error, leaves every output undefined.
	Compute(in []Value) ([]Value, error)
}

// UndefinedTolerant is implemented by computers that accept undefined
// inputs. Undefined inputs are passed as nil.
type UndefinedTolerant interface {
	Computer
	ToleratesUndefined() bool
}

// algorithm is the arena record of one algorithm.
type algorithm struct {
	id       AlgoID
	computer Computer
	inputs   []NodeID
	outputs  []NodeID // NoNode for removed or redefined slots
}

// Algorithm is a read-only snapshot of an algorithm.
type Algorithm struct {
	ID       AlgoID
	Name     string
	Computer Computer
	Inputs   []NodeID
	Outputs  []NodeID
}

func (a *algorithm) snapshot() Algorithm {
	return Algorithm{
		ID:       a.id,
		Name:     a.computer.Name(),
		Computer: a.computer,
		Inputs:   slices.Clone(a.inputs),
		Outputs:  slices.Clone(a.outputs),
	}
}

// liveOutputs returns the non-empty output slots.
func (a *algorithm) liveOutputs() []NodeID {
	out := make([]NodeID, 0, len(a.outputs))
	for _, o := range a.outputs {
		if o != NoNode {
			out = append(out, o)
		}
	}

	return out
}

func (a *algorithm) tolerant() bool {
	t, ok := a.computer.(UndefinedTolerant)
	return ok && t.ToleratesUndefined()
}

// AlgoOption configures CreateAlgorithm.
type AlgoOption func(*algoOptions)

type algoOptions struct {
	into   []NodeID
	labels []string
}

// IntoNodes makes the new algorithm adopt existing free nodes as its outputs,
// one per output kind, instead of creating fresh nodes.
func IntoNodes(ids ...NodeID) AlgoOption {
	return func(o *algoOptions) { o.into = ids }
}

// WithLabels labels the created output nodes in order; empty strings skip.
func WithLabels(labels ...string) AlgoOption {
	return func(o *algoOptions) { o.labels = labels }
}
