package algos

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/geokernel/kernel"
)

// Sentinel errors returned by the Registry.
var (
	// ErrUnknownAlgorithm indicates a name with no registered computer.
	ErrUnknownAlgorithm = errors.New("algos: unknown algorithm")

	// ErrDuplicateAlgorithm indicates a second registration under one name.
	ErrDuplicateAlgorithm = errors.New("algos: algorithm already registered")
)

// Registry maps algorithm names to computers.
type Registry struct {
	m map[string]kernel.Computer
}

// NewRegistry returns a registry holding every stateless kind of this package.
func NewRegistry() *Registry {
	r := &Registry{m: make(map[string]kernel.Computer)}
	for _, c := range []kernel.Computer{
		Add{}, Subtract{}, Multiply{},
		JoinPointsLine{}, JoinPointsRay{}, JoinPointsSegment{},
		RayPointVector{}, Midpoint{}, Translate{}, Direction{}, Intersect{},
		Solve{},
	} {
		r.m[c.Name()] = c
	}

	return r
}

// Register adds c under c.Name().
func (r *Registry) Register(c kernel.Computer) error {
	if _, ok := r.m[c.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAlgorithm, c.Name())
	}
	r.m[c.Name()] = c

	return nil
}

// Lookup returns the computer registered under name.
func (r *Registry) Lookup(name string) (kernel.Computer, error) {
	c, ok := r.m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}

	return c, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.m))
	for n := range r.m {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// arity checks the number of inputs.
func arity(name string, in []kernel.Kind, n int) error {
	if len(in) != n {
		return fmt.Errorf("%w: %s takes %d inputs, got %d", kernel.ErrArity, name, n, len(in))
	}

	return nil
}

// expect checks in against want position by position.
func expect(name string, in []kernel.Kind, want ...kernel.Kind) error {
	if err := arity(name, in, len(want)); err != nil {
		return err
	}
	if !slices.Equal(in, want) {
		return mismatch(name, in)
	}

	return nil
}

func mismatch(name string, in []kernel.Kind) error {
	return fmt.Errorf("%w: %s cannot take %v", kernel.ErrKindMismatch, name, in)
}

func one(k kernel.Kind) []kernel.Kind { return []kernel.Kind{k} }
