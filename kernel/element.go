package kernel

import (
	"maps"
	"slices"

	"github.com/katalvlaran/geokernel/adjust"
)

// PathConstraint binds a point to a path node at parameter T.
type PathConstraint struct {
	Path NodeID
	T    float64
}

// element is the arena record of one node.
type element struct {
	id         NodeID
	label      string
	kind       Kind
	value      Value
	defined    bool
	parent     AlgoID
	children   map[AlgoID]int // consumer algorithm → number of input slots
	constraint *PathConstraint
	slider     *adjust.Slider
}

// Element is a read-only snapshot of a node.
type Element struct {
	ID         NodeID
	Label      string
	Kind       Kind
	Value      Value // last computed value; meaningful only when Defined
	Defined    bool
	Parent     AlgoID
	Children   []AlgoID // sorted ascending
	Constraint *PathConstraint
}

// IsFree reports whether the node has no parent algorithm.
func (e Element) IsFree() bool { return e.Parent == NoAlgo }

// IsLabeled reports whether the node carries a label.
func (e Element) IsLabeled() bool { return e.Label != "" }

func (el *element) snapshot() Element {
	s := Element{
		ID:       el.id,
		Label:    el.label,
		Kind:     el.kind,
		Value:    el.value,
		Defined:  el.defined,
		Parent:   el.parent,
		Children: slices.Sorted(maps.Keys(el.children)),
	}
	if el.constraint != nil {
		pc := *el.constraint
		s.Constraint = &pc
	}

	return s
}

// setValue stores v and reports whether value or definedness changed.
func (el *element) setValue(v Value) bool {
	def := v.valid()
	changed := def != el.defined || el.value == nil || !el.value.Equal(v)
	el.value, el.defined = v, def

	return changed
}

// setUndefined keeps the last value and clears definedness.
func (el *element) setUndefined() bool {
	changed := el.defined
	el.defined = false

	return changed
}
