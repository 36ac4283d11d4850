package scenario

import (
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geokernel/adjust"
)

// Sentinel errors returned by this package.
var (
	// ErrInvalidScript indicates a malformed script.
	ErrInvalidScript = errors.New("scenario: invalid script")

	// ErrUnknownLabel indicates a reference to a label no node carries.
	ErrUnknownLabel = errors.New("scenario: unknown label")

	// ErrExpectation indicates a failed expect, expect_param, expect_error
	// or suggestion check.
	ErrExpectation = errors.New("scenario: expectation failed")
)

// DefaultTolerance is the comparison tolerance of expectations.
const DefaultTolerance = 1e-9

// Script is one scenario document.
type Script struct {
	Name      string     `yaml:"name"`
	Tolerance float64    `yaml:"tolerance,omitempty"`
	Nodes     []NodeSpec `yaml:"nodes"`
	Steps     []Step     `yaml:"steps"`
}

// NodeSpec declares a free node.
type NodeSpec struct {
	Label  string         `yaml:"label"`
	Kind   string         `yaml:"kind"`
	Value  yaml.Node      `yaml:"value"`
	Slider *adjust.Slider `yaml:"slider,omitempty"`
}

// Step holds exactly one action and optional checks. Checks run after the
// action; a step may consist of checks only.
type Step struct {
	Algorithm   *AlgorithmStep `yaml:"algorithm,omitempty"`
	OnPath      *OnPathStep    `yaml:"on_path,omitempty"`
	Set         *SetStep       `yaml:"set,omitempty"`
	Move        *MoveStep      `yaml:"move,omitempty"`
	PathChanged string         `yaml:"path_changed,omitempty"`
	Redefine    *RedefineStep  `yaml:"redefine,omitempty"`
	Remove      string         `yaml:"remove,omitempty"`
	Adjust      *AdjustStep    `yaml:"adjust,omitempty"`
	Suggest     *SuggestStep   `yaml:"suggest,omitempty"`

	// ExpectError names the kernel error the action must fail with, e.g.
	// cyclic_dependency.
	ExpectError string               `yaml:"expect_error,omitempty"`
	Expect      map[string]yaml.Node `yaml:"expect,omitempty"`
	ExpectParam map[string]float64   `yaml:"expect_param,omitempty"`
	ExpectOrder []string             `yaml:"expect_order,omitempty"`
}

// AlgorithmStep creates an algorithm. Template and Vars configure an
// Expression. Into adopts existing free nodes as outputs.
type AlgorithmStep struct {
	Kind     string   `yaml:"kind"`
	Inputs   []string `yaml:"inputs"`
	Outputs  []string `yaml:"outputs,omitempty"`
	Into     []string `yaml:"into,omitempty"`
	Template string   `yaml:"template,omitempty"`
	Vars     []string `yaml:"vars,omitempty"`
}

// OnPathStep creates a point on a path near At.
type OnPathStep struct {
	Label string     `yaml:"label"`
	Path  string     `yaml:"path"`
	At    [2]float64 `yaml:"at"`
}

// SetStep replaces the value of a free node.
type SetStep struct {
	Label string    `yaml:"label"`
	Value yaml.Node `yaml:"value"`
}

// MoveStep drags a point to To.
type MoveStep struct {
	Label string     `yaml:"label"`
	To    [2]float64 `yaml:"to"`
}

// RedefineStep redefines a node. Rule is one of default, same_class,
// reject, any or one_way:<from>:<to>.
type RedefineStep struct {
	Label    string   `yaml:"label"`
	Kind     string   `yaml:"kind"`
	Inputs   []string `yaml:"inputs"`
	Rule     string   `yaml:"rule,omitempty"`
	Template string   `yaml:"template,omitempty"`
	Vars     []string `yaml:"vars,omitempty"`
}

// AdjustStep runs the reload-time slider correction. Moved, when set, is the
// expected number of moved sliders.
type AdjustStep struct {
	From  adjust.Viewport `yaml:"from"`
	To    adjust.Viewport `yaml:"to"`
	Moved *int            `yaml:"moved,omitempty"`
}

// SuggestStep asks for a solve suggestion for Label. Want is the expected
// command text, empty for no suggestion. Apply labels the involved nodes.
type SuggestStep struct {
	Label string `yaml:"label"`
	Apply bool   `yaml:"apply,omitempty"`
	Want  string `yaml:"want"`
}

// Result summarises a finished run.
type Result struct {
	Steps    int
	Removed  []string
	Commands []string
	Adjusted int
}
