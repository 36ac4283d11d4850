package algos

import (
	"github.com/katalvlaran/geokernel/geom"
	"github.com/katalvlaran/geokernel/kernel"
)

// Add sums two numbers or vectors, or offsets a point.
type Add struct{}

func (Add) Name() string { return "Add" }

func (a Add) OutputKinds(in []kernel.Kind) ([]kernel.Kind, error) {
	if err := arity(a.Name(), in, 2); err != nil {
		return nil, err
	}
	switch [2]kernel.Kind{in[0], in[1]} {
	case [2]kernel.Kind{kernel.KindNumber, kernel.KindNumber}:
		return one(kernel.KindNumber), nil
	case [2]kernel.Kind{kernel.KindVector, kernel.KindVector}:
		return one(kernel.KindVector), nil
	case [2]kernel.Kind{kernel.KindPoint, kernel.KindPoint},
		[2]kernel.Kind{kernel.KindPoint, kernel.KindVector},
		[2]kernel.Kind{kernel.KindVector, kernel.KindPoint}:
		return one(kernel.KindPoint), nil
	}

	return nil, mismatch(a.Name(), in)
}

func (Add) Compute(in []kernel.Value) ([]kernel.Value, error) {
	if n, m, ok := numbers(in); ok {
		return []kernel.Value{kernel.Number(n + m)}, nil
	}
	v, w, err := planar(in)
	if err != nil {
		return nil, err
	}
	if _, isVec := in[0].(kernel.Vector); isVec {
		if _, isVec = in[1].(kernel.Vector); isVec {
			return []kernel.Value{vector(v.Add(w))}, nil
		}
	}

	return []kernel.Value{kernel.Point{Coords: v.Add(w).Point()}}, nil
}

// Subtract is the difference of two numbers, vectors or points, or a point
// moved against a vector.
type Subtract struct{}

func (Subtract) Name() string { return "Subtract" }

func (s Subtract) OutputKinds(in []kernel.Kind) ([]kernel.Kind, error) {
	if err := arity(s.Name(), in, 2); err != nil {
		return nil, err
	}
	switch [2]kernel.Kind{in[0], in[1]} {
	case [2]kernel.Kind{kernel.KindNumber, kernel.KindNumber}:
		return one(kernel.KindNumber), nil
	case [2]kernel.Kind{kernel.KindVector, kernel.KindVector}:
		return one(kernel.KindVector), nil
	case [2]kernel.Kind{kernel.KindPoint, kernel.KindPoint},
		[2]kernel.Kind{kernel.KindPoint, kernel.KindVector}:
		return one(kernel.KindPoint), nil
	}

	return nil, mismatch(s.Name(), in)
}

func (Subtract) Compute(in []kernel.Value) ([]kernel.Value, error) {
	if n, m, ok := numbers(in); ok {
		return []kernel.Value{kernel.Number(n - m)}, nil
	}
	v, w, err := planar(in)
	if err != nil {
		return nil, err
	}
	if _, isVec := in[0].(kernel.Vector); isVec {
		return []kernel.Value{vector(v.Sub(w))}, nil
	}

	return []kernel.Value{kernel.Point{Coords: v.Sub(w).Point()}}, nil
}

// Multiply is the product of two numbers, the scaling of a vector or the dot
// product of two vectors.
type Multiply struct{}

func (Multiply) Name() string { return "Multiply" }

func (m Multiply) OutputKinds(in []kernel.Kind) ([]kernel.Kind, error) {
	if err := arity(m.Name(), in, 2); err != nil {
		return nil, err
	}
	switch [2]kernel.Kind{in[0], in[1]} {
	case [2]kernel.Kind{kernel.KindNumber, kernel.KindNumber},
		[2]kernel.Kind{kernel.KindVector, kernel.KindVector}:
		return one(kernel.KindNumber), nil
	case [2]kernel.Kind{kernel.KindNumber, kernel.KindVector},
		[2]kernel.Kind{kernel.KindVector, kernel.KindNumber}:
		return one(kernel.KindVector), nil
	}

	return nil, mismatch(m.Name(), in)
}

func (Multiply) Compute(in []kernel.Value) ([]kernel.Value, error) {
	if n, m, ok := numbers(in); ok {
		return []kernel.Value{kernel.Number(n * m)}, nil
	}
	switch a := in[0].(type) {
	case kernel.Number:
		v := in[1].(kernel.Vector)
		return []kernel.Value{vector(geom.Vec{X: v.X, Y: v.Y}.Scale(float64(a)))}, nil
	case kernel.Vector:
		if s, ok := in[1].(kernel.Number); ok {
			return []kernel.Value{vector(geom.Vec{X: a.X, Y: a.Y}.Scale(float64(s)))}, nil
		}
		w := in[1].(kernel.Vector)
		return []kernel.Value{kernel.Number(geom.Dot(geom.Vec{X: a.X, Y: a.Y}, geom.Vec{X: w.X, Y: w.Y}))}, nil
	}

	return nil, kernel.ErrUndefined
}

func numbers(in []kernel.Value) (float64, float64, bool) {
	n, ok1 := in[0].(kernel.Number)
	m, ok2 := in[1].(kernel.Number)

	return float64(n), float64(m), ok1 && ok2
}

// planar returns the inhomogeneous coordinates of two points or vectors.
func planar(in []kernel.Value) (geom.Vec, geom.Vec, error) {
	v, err := vec(in[0])
	if err != nil {
		return geom.Vec{}, geom.Vec{}, err
	}
	w, err := vec(in[1])
	if err != nil {
		return geom.Vec{}, geom.Vec{}, err
	}

	return v, w, nil
}

func vec(v kernel.Value) (geom.Vec, error) {
	switch x := v.(type) {
	case kernel.Vector:
		return geom.Vec{X: x.X, Y: x.Y}, nil
	case kernel.Point:
		if !x.IsFinite() {
			return geom.Vec{}, kernel.ErrUndefined
		}
		return x.Inhom(), nil
	}

	return geom.Vec{}, kernel.ErrUndefined
}

func vector(v geom.Vec) kernel.Vector { return kernel.Vector{X: v.X, Y: v.Y} }
