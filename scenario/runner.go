package scenario

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geokernel/algos"
	"github.com/katalvlaran/geokernel/geom"
	"github.com/katalvlaran/geokernel/kernel"
	"github.com/katalvlaran/geokernel/suggest"
)

const tracerName = "geokernel.scenario"

// Runner executes scripts. The zero value is not usable; call NewRunner.
type Runner struct {
	registry *algos.Registry
	log      *zap.Logger
	tracer   trace.Tracer
	kopts    []kernel.Option
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRegistry sets the algorithm registry.
func WithRegistry(r *algos.Registry) RunnerOption {
	return func(rn *Runner) {
		if r != nil {
			rn.registry = r
		}
	}
}

// WithLogger sets the run logger; it is also handed to each construction.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(rn *Runner) {
		if l != nil {
			rn.log = l
		}
	}
}

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) RunnerOption {
	return func(rn *Runner) {
		if tp != nil {
			rn.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithKernelOptions passes options to every construction the runner creates.
func WithKernelOptions(opts ...kernel.Option) RunnerOption {
	return func(rn *Runner) { rn.kopts = append(rn.kopts, opts...) }
}

// NewRunner returns a runner with the default registry, a no-op logger and
// the global tracer provider.
func NewRunner(opts ...RunnerOption) *Runner {
	rn := &Runner{
		registry: algos.NewRegistry(),
		log:      zap.NewNop(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(rn)
	}

	return rn
}

// Run builds a fresh construction and executes s against it. The
// construction is returned even on failure so callers can inspect the state
// reached. Cancellation is checked between steps.
func (rn *Runner) Run(ctx context.Context, s *Script) (*kernel.Construction, *Result, error) {
	ctx, span := rn.tracer.Start(ctx, "scenario.Run", trace.WithAttributes(
		attribute.String("scenario.name", s.Name),
		attribute.Int("scenario.nodes", len(s.Nodes)),
		attribute.Int("scenario.steps", len(s.Steps)),
	))
	defer span.End()

	kopts := append([]kernel.Option{kernel.WithLogger(rn.log)}, rn.kopts...)
	c := kernel.New(kopts...)
	ex := &execution{
		runner: rn,
		c:      c,
		tol:    s.Tolerance,
		res:    &Result{},
	}
	if ex.tol <= 0 {
		ex.tol = DefaultTolerance
	}
	log := rn.log.With(zap.String("scenario", s.Name), zap.String("construction", c.ID().String()))

	fail := func(err error) (*kernel.Construction, *Result, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("scenario failed", zap.Error(err))
		return c, ex.res, err
	}

	if err := ex.declare(s.Nodes); err != nil {
		return fail(err)
	}
	for i := range s.Steps {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		if err := ex.step(ctx, i, &s.Steps[i]); err != nil {
			return fail(err)
		}
		ex.res.Steps++
	}
	span.SetAttributes(attribute.Int("scenario.final_nodes", c.Len()))
	span.SetStatus(codes.Ok, "")
	log.Info("scenario passed", zap.Int("steps", ex.res.Steps), zap.Int("nodes", c.Len()))

	return c, ex.res, nil
}

// execution is the state of one run.
type execution struct {
	runner  *Runner
	c       *kernel.Construction
	tol     float64
	res     *Result
	removed map[string]bool
}

func (ex *execution) declare(nodes []NodeSpec) error {
	for _, n := range nodes {
		k, err := kernel.ParseKind(n.Kind)
		if err != nil {
			return fmt.Errorf("node %q: %w", n.Label, err)
		}
		v, err := decodeValue(k, &n.Value)
		if err != nil {
			return fmt.Errorf("%w: node %q: %v", ErrInvalidScript, n.Label, err)
		}
		id, err := ex.c.CreateFreeNode(v)
		if err != nil {
			return fmt.Errorf("node %q: %w", n.Label, err)
		}
		if err := ex.c.SetLabel(id, n.Label); err != nil {
			return fmt.Errorf("node %q: %w", n.Label, err)
		}
		if n.Slider != nil {
			if err := ex.c.SetSliderLayout(id, *n.Slider); err != nil {
				return fmt.Errorf("node %q: %w", n.Label, err)
			}
		}
	}

	return nil
}

// step runs one step in its own span.
func (ex *execution) step(ctx context.Context, i int, st *Step) error {
	_, span := ex.runner.tracer.Start(ctx, "scenario.step", trace.WithAttributes(
		attribute.Int("step.index", i),
		attribute.String("step.action", st.action()),
	))
	defer span.End()

	err := ex.act(st)
	switch {
	case st.ExpectError != "":
		want := kernelErrors[st.ExpectError]
		if !errors.Is(err, want) {
			err = fmt.Errorf("step %d: %w: want error %s, got %v", i, ErrExpectation, st.ExpectError, err)
		} else {
			span.AddEvent("expected error", trace.WithAttributes(attribute.String("error", err.Error())))
			err = nil
		}
	case err != nil:
		err = fmt.Errorf("step %d (%s): %w", i, st.action(), err)
	}
	if err == nil {
		err = ex.check(i, st)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (ex *execution) act(st *Step) error {
	switch {
	case st.Algorithm != nil:
		return ex.algorithm(st.Algorithm)
	case st.OnPath != nil:
		p, err := ex.lookup(st.OnPath.Path)
		if err != nil {
			return err
		}
		id, err := ex.c.CreatePointOnPath(p, geom.Point(st.OnPath.At[0], st.OnPath.At[1]))
		if err != nil {
			return err
		}
		return ex.c.SetLabel(id, st.OnPath.Label)
	case st.Set != nil:
		id, err := ex.lookup(st.Set.Label)
		if err != nil {
			return err
		}
		el, err := ex.c.Element(id)
		if err != nil {
			return err
		}
		v, err := decodeValue(el.Kind, &st.Set.Value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidScript, err)
		}
		return ex.c.SetValue(id, v)
	case st.Move != nil:
		id, err := ex.lookup(st.Move.Label)
		if err != nil {
			return err
		}
		return ex.c.PointChanged(id, geom.Point(st.Move.To[0], st.Move.To[1]))
	case st.PathChanged != "":
		id, err := ex.lookup(st.PathChanged)
		if err != nil {
			return err
		}
		return ex.c.PathChanged(id)
	case st.Redefine != nil:
		return ex.redefine(st.Redefine)
	case st.Remove != "":
		id, err := ex.lookup(st.Remove)
		if err != nil {
			return err
		}
		labels, err := ex.c.Remove(id)
		if err != nil {
			return err
		}
		if ex.removed == nil {
			ex.removed = make(map[string]bool)
		}
		for _, l := range labels {
			ex.removed[l] = true
		}
		ex.res.Removed = append(ex.res.Removed, labels...)
		return nil
	case st.Adjust != nil:
		n := ex.c.AdjustSliders(st.Adjust.From, st.Adjust.To)
		ex.res.Adjusted += n
		if st.Adjust.Moved != nil && *st.Adjust.Moved != n {
			return fmt.Errorf("%w: moved %d sliders, want %d", ErrExpectation, n, *st.Adjust.Moved)
		}
		return nil
	case st.Suggest != nil:
		return ex.suggest(st.Suggest)
	}

	return nil
}

func (ex *execution) computer(kind, template string, vars []string) (kernel.Computer, error) {
	if kind == suggest.ExpressionAlgo {
		return algos.Expression{Template: template, Vars: vars}, nil
	}

	return ex.runner.registry.Lookup(kind)
}

func (ex *execution) algorithm(a *AlgorithmStep) error {
	comp, err := ex.computer(a.Kind, a.Template, a.Vars)
	if err != nil {
		return err
	}
	inputs, err := ex.lookupAll(a.Inputs)
	if err != nil {
		return err
	}
	var opts []kernel.AlgoOption
	if len(a.Into) > 0 {
		into, err := ex.lookupAll(a.Into)
		if err != nil {
			return err
		}
		opts = append(opts, kernel.IntoNodes(into...))
	}
	if len(a.Outputs) > 0 {
		opts = append(opts, kernel.WithLabels(a.Outputs...))
	}
	_, _, err = ex.c.CreateAlgorithm(comp, inputs, opts...)

	return err
}

func (ex *execution) redefine(r *RedefineStep) error {
	id, err := ex.lookup(r.Label)
	if err != nil {
		return err
	}
	rule, err := parseRule(r.Rule)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	comp, err := ex.computer(r.Kind, r.Template, r.Vars)
	if err != nil {
		return err
	}
	inputs, err := ex.lookupAll(r.Inputs)
	if err != nil {
		return err
	}

	return ex.c.Redefine(id, comp, inputs, rule)
}

func (ex *execution) suggest(s *SuggestStep) error {
	id, err := ex.lookup(s.Label)
	if err != nil {
		return err
	}
	sg, err := suggest.Solve(ex.c, id)
	if err != nil {
		return err
	}
	got := ""
	if sg != nil {
		if s.Apply {
			got, err = sg.Apply(ex.c)
			if err != nil {
				return err
			}
		} else {
			got = sg.Command(ex.c)
		}
		ex.res.Commands = append(ex.res.Commands, got)
	}
	if got != s.Want {
		return fmt.Errorf("%w: suggestion %q, want %q", ErrExpectation, got, s.Want)
	}

	return nil
}

// check evaluates the step's expectations in label order.
func (ex *execution) check(i int, st *Step) error {
	labels := make([]string, 0, len(st.Expect))
	for l := range st.Expect {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		n := st.Expect[l]
		if err := ex.expect(l, &n); err != nil {
			return fmt.Errorf("step %d: %w: %s: %v", i, ErrExpectation, l, err)
		}
	}

	params := make([]string, 0, len(st.ExpectParam))
	for l := range st.ExpectParam {
		params = append(params, l)
	}
	sort.Strings(params)
	for _, l := range params {
		id, err := ex.lookup(l)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		got, err := ex.c.Parameter(id)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if want := st.ExpectParam[l]; math.Abs(got-want) > ex.tol {
			return fmt.Errorf("step %d: %w: %s: parameter %g, want %g", i, ErrExpectation, l, got, want)
		}
	}

	if st.ExpectOrder != nil {
		var got []string
		for _, id := range ex.c.Order() {
			if l := ex.c.Label(id); l != "" {
				got = append(got, l)
			}
		}
		if !slices.Equal(got, st.ExpectOrder) {
			return fmt.Errorf("step %d: %w: order %v, want %v", i, ErrExpectation, got, st.ExpectOrder)
		}
	}

	return nil
}

// expect compares one node against a scalar keyword (undefined, removed) or
// a value of the node's kind.
func (ex *execution) expect(label string, n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode && n.Value == "removed" {
		if _, ok := ex.c.Lookup(label); ok {
			return errors.New("still present")
		}
		if !ex.removed[label] {
			return errors.New("never removed")
		}
		return nil
	}
	id, err := ex.lookup(label)
	if err != nil {
		return err
	}
	el, err := ex.c.Element(id)
	if err != nil {
		return err
	}
	if n.Kind == yaml.ScalarNode && n.Value == "undefined" {
		if el.Defined {
			return fmt.Errorf("defined as %v", el.Value)
		}
		return nil
	}
	if !el.Defined {
		return errors.New("undefined")
	}
	want, err := decodeValue(el.Kind, n)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if !approxEqual(el.Value, want, ex.tol) {
		return fmt.Errorf("got %v, want %v", el.Value, want)
	}

	return nil
}

func (ex *execution) lookup(label string) (kernel.NodeID, error) {
	id, ok := ex.c.Lookup(label)
	if !ok {
		return kernel.NoNode, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}

	return id, nil
}

func (ex *execution) lookupAll(labels []string) ([]kernel.NodeID, error) {
	ids := make([]kernel.NodeID, len(labels))
	for i, l := range labels {
		id, err := ex.lookup(l)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	return ids, nil
}
