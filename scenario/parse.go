package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geokernel/geom"
	"github.com/katalvlaran/geokernel/kernel"
)

// kernelErrors maps expect_error names to kernel sentinels.
var kernelErrors = map[string]error{
	"node_not_found":            kernel.ErrNodeNotFound,
	"cyclic_dependency":         kernel.ErrCyclicDependency,
	"node_is_dependent":         kernel.ErrNodeIsDependent,
	"incompatible_redefinition": kernel.ErrIncompatibleRedefinition,
	"kind_mismatch":             kernel.ErrKindMismatch,
	"not_a_path":                kernel.ErrNotAPath,
	"not_on_path":               kernel.ErrNotOnPath,
	"label_taken":               kernel.ErrLabelTaken,
	"invalid_label":             kernel.ErrInvalidLabel,
	"arity":                     kernel.ErrArity,
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadFile reads and parses the script at path.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data)
}

// Validate checks the static shape of the script: known kinds, one action
// per step and known error names. Label references are resolved at run time.
func (s *Script) Validate() error {
	var errs []error
	for i, n := range s.Nodes {
		if n.Label == "" {
			errs = append(errs, fmt.Errorf("node %d: missing label", i))
		}
		k, err := kernel.ParseKind(n.Kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("node %q: %v", n.Label, err))
			continue
		}
		if _, err := decodeValue(k, &n.Value); err != nil {
			errs = append(errs, fmt.Errorf("node %q: %v", n.Label, err))
		}
		if n.Slider != nil && k != kernel.KindNumber {
			errs = append(errs, fmt.Errorf("node %q: slider on %s", n.Label, k))
		}
	}
	for i, st := range s.Steps {
		if n := st.actions(); n > 1 {
			errs = append(errs, fmt.Errorf("step %d: %d actions, want at most one", i, n))
		}
		if st.ExpectError != "" {
			if _, ok := kernelErrors[st.ExpectError]; !ok {
				errs = append(errs, fmt.Errorf("step %d: unknown error %q", i, st.ExpectError))
			}
		}
		if st.Redefine != nil {
			if _, err := parseRule(st.Redefine.Rule); err != nil {
				errs = append(errs, fmt.Errorf("step %d: %v", i, err))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScript, errors.Join(errs...))
	}

	return nil
}

// actions counts the actions set on the step.
func (st *Step) actions() int {
	n := 0
	for _, set := range []bool{
		st.Algorithm != nil, st.OnPath != nil, st.Set != nil, st.Move != nil,
		st.PathChanged != "", st.Redefine != nil, st.Remove != "",
		st.Adjust != nil, st.Suggest != nil,
	} {
		if set {
			n++
		}
	}

	return n
}

// action names the step's action for logs and spans.
func (st *Step) action() string {
	switch {
	case st.Algorithm != nil:
		return "algorithm"
	case st.OnPath != nil:
		return "on_path"
	case st.Set != nil:
		return "set"
	case st.Move != nil:
		return "move"
	case st.PathChanged != "":
		return "path_changed"
	case st.Redefine != nil:
		return "redefine"
	case st.Remove != "":
		return "remove"
	case st.Adjust != nil:
		return "adjust"
	case st.Suggest != nil:
		return "suggest"
	default:
		return "check"
	}
}

// parseRule maps a rule name to a redefinition rule.
func parseRule(name string) (kernel.RedefinitionRule, error) {
	switch name {
	case "", "default":
		return kernel.DefaultRule(), nil
	case "same_class":
		return kernel.SameClass(), nil
	case "reject":
		return kernel.Reject(), nil
	case "any":
		return kernel.RuleFunc(func(kernel.Kind, kernel.Kind) bool { return true }), nil
	}
	if pair, ok := strings.CutPrefix(name, "one_way:"); ok {
		from, to, _ := strings.Cut(pair, ":")
		f, err1 := kernel.ParseKind(from)
		t, err2 := kernel.ParseKind(to)
		if err1 == nil && err2 == nil {
			return kernel.OneWay(f, t), nil
		}
	}

	return nil, fmt.Errorf("unknown rule %q", name)
}

// decodeValue reads a value of kind k. Points and vectors are flow
// sequences, paths are two points, equations are {text, vars} maps.
func decodeValue(k kernel.Kind, n *yaml.Node) (kernel.Value, error) {
	if n.Kind == 0 {
		return nil, errors.New("missing value")
	}
	switch k {
	case kernel.KindNumber:
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return kernel.Number(f), nil
	case kernel.KindPoint, kernel.KindVector:
		xs, err := floats(n, 2)
		if err != nil {
			return nil, err
		}
		if k == kernel.KindPoint {
			return kernel.NewPoint(xs[0], xs[1]), nil
		}
		return kernel.Vector{X: xs[0], Y: xs[1]}, nil
	case kernel.KindPoint3D, kernel.KindVector3D:
		xs, err := floats(n, 3)
		if err != nil {
			return nil, err
		}
		if k == kernel.KindPoint3D {
			return kernel.Point3D{X: xs[0], Y: xs[1], Z: xs[2]}, nil
		}
		return kernel.Vector3D{X: xs[0], Y: xs[1], Z: xs[2]}, nil
	case kernel.KindLine, kernel.KindRay, kernel.KindSegment:
		var pts [][]float64
		if err := n.Decode(&pts); err != nil {
			return nil, err
		}
		if len(pts) != 2 || len(pts[0]) != 2 || len(pts[1]) != 2 {
			return nil, fmt.Errorf("%s wants two points", k)
		}
		a, b := geom.Point(pts[0][0], pts[0][1]), geom.Point(pts[1][0], pts[1][1])
		switch k {
		case kernel.KindLine:
			return kernel.Line{Carrier: geom.Join(a, b), Start: a}, nil
		case kernel.KindRay:
			return kernel.Ray{Carrier: geom.Join(a, b), Start: a}, nil
		default:
			return kernel.Segment{Start: a, End: b}, nil
		}
	case kernel.KindEquation:
		var e struct {
			Text string   `yaml:"text"`
			Vars []string `yaml:"vars"`
		}
		if err := n.Decode(&e); err != nil {
			return nil, err
		}
		return kernel.Equation{Text: e.Text, Vars: e.Vars}, nil
	case kernel.KindText:
		var s string
		if err := n.Decode(&s); err != nil {
			return nil, err
		}
		return kernel.Text(s), nil
	}

	return nil, fmt.Errorf("unsupported kind %s", k)
}

func floats(n *yaml.Node, want int) ([]float64, error) {
	var xs []float64
	if err := n.Decode(&xs); err != nil {
		return nil, err
	}
	if len(xs) != want {
		return nil, fmt.Errorf("want %d coordinates, got %d", want, len(xs))
	}

	return xs, nil
}
