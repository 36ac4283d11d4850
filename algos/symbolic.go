package algos

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/geokernel/kernel"
)

// Expression builds an equation from a template over number inputs. The
// placeholders {0}, {1}, … are replaced with the input values.
type Expression struct {
	Template string
	Vars     []string
}

func (Expression) Name() string { return "Expression" }

func (e Expression) OutputKinds(in []kernel.Kind) ([]kernel.Kind, error) {
	for _, k := range in {
		if k != kernel.KindNumber {
			return nil, mismatch(e.Name(), in)
		}
	}

	return one(kernel.KindEquation), nil
}

func (e Expression) Compute(in []kernel.Value) ([]kernel.Value, error) {
	pairs := make([]string, 0, 2*len(in))
	for i, v := range in {
		n := float64(v.(kernel.Number))
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", strconv.FormatFloat(n, 'g', -1, 64))
	}
	text := strings.NewReplacer(pairs...).Replace(e.Template)

	return []kernel.Value{kernel.Equation{Text: text, Vars: e.Vars}}, nil
}

// Solve is a joint solve request over one or more equations. Solving is
// delegated to an external algebra system; the output holds the command.
type Solve struct{}

func (Solve) Name() string { return "Solve" }

func (s Solve) OutputKinds(in []kernel.Kind) ([]kernel.Kind, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: %s needs at least one equation", kernel.ErrArity, s.Name())
	}
	for _, k := range in {
		if k != kernel.KindEquation {
			return nil, mismatch(s.Name(), in)
		}
	}

	return one(kernel.KindText), nil
}

func (Solve) Compute(in []kernel.Value) ([]kernel.Value, error) {
	items := make([]string, len(in))
	var vars []string
	seen := make(map[string]bool)
	for i, v := range in {
		eq := v.(kernel.Equation)
		items[i] = eq.Text
		for _, x := range eq.Vars {
			if !seen[x] {
				seen[x] = true
				vars = append(vars, x)
			}
		}
	}
	if len(items) == 1 {
		vars = nil
	}

	return []kernel.Value{kernel.Text(FormatSolve(items, vars))}, nil
}

// FormatSolve renders Solve[{e1, e2}, {x, y}]. A single variable is written
// without braces and an empty variable list is omitted.
func FormatSolve(items, vars []string) string {
	var sb strings.Builder
	sb.WriteString("Solve[{")
	sb.WriteString(strings.Join(items, ", "))
	sb.WriteString("}")
	switch len(vars) {
	case 0:
	case 1:
		sb.WriteString(", ")
		sb.WriteString(vars[0])
	default:
		sb.WriteString(", {")
		sb.WriteString(strings.Join(vars, ", "))
		sb.WriteString("}")
	}
	sb.WriteString("]")

	return sb.String()
}
