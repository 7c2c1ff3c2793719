package registry

import (
	"fmt"

	"github.com/aretw0/sxm/pkg/ports"
)

// Kind selects one of the three generator families.
type Kind string

const (
	KindLogic      Kind = "logic"
	KindRobustness Kind = "robustness"
	KindCoverage   Kind = "coverage"
)

// Kinds lists the generator families in canonical order.
func Kinds() []Kind {
	return []Kind{KindLogic, KindRobustness, KindCoverage}
}

// Case is a type-erased test case: every symbol rendered as a string.
type Case struct {
	Name           string   `json:"name" yaml:"name"`
	Setup          []string `json:"setup_sequence" yaml:"setup_sequence"`
	Input          string   `json:"test_input" yaml:"test_input"`
	ExpectedOutput *string  `json:"expected_output,omitempty" yaml:"expected_output,omitempty"`
	Verification   []string `json:"verification_sequence" yaml:"verification_sequence"`
}

// Suite is a generated, ordered collection of cases plus the obligations
// the guard-aware search could not cover.
type Suite struct {
	Model     string   `json:"model" yaml:"model"`
	Kind      Kind     `json:"kind" yaml:"kind"`
	Cases     []Case   `json:"cases" yaml:"cases"`
	Uncovered []string `json:"uncovered,omitempty" yaml:"uncovered,omitempty"`
}

// Edge is one arc of the transition topology.
type Edge struct {
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Label string `json:"label" yaml:"label"`
}

// Topology is the type-erased shape of a machine, sufficient for
// rendering.
type Topology struct {
	Name    string   `json:"name" yaml:"name"`
	States  []string `json:"states" yaml:"states"`
	Initial []string `json:"initial" yaml:"initial"`
	Final   []string `json:"final" yaml:"final"`
	Inputs  []string `json:"inputs" yaml:"inputs"`
	Phis    []string `json:"phis" yaml:"phis"`
	Edges   []Edge   `json:"edges" yaml:"edges"`
}

// Session is a type-erased interactive machine session.
type Session interface {
	// State returns the current control state, rendered.
	State() string

	// Step parses the raw input and dispatches it with the ordered-trial
	// policy.
	Step(rawInput string) (output string, emitted bool, err error)

	// Snapshot serializes the session for a ports.SessionStore.
	Snapshot() (*ports.Snapshot, error)

	// Restore loads a snapshot produced by Snapshot.
	Restore(snap *ports.Snapshot) error
}

// Model is a registered machine.
type Model interface {
	// Name is the unique catalogue key.
	Name() string

	// Topology describes the machine's shape for rendering.
	Topology() Topology

	// Generate produces the suite for one generator family. depthBound
	// only affects KindCoverage; zero means the default bound.
	Generate(kind Kind, depthBound int) (*Suite, error)

	// NewSession starts a fresh interactive session.
	NewSession() Session
}

// Registry is an ordered catalogue of models.
type Registry struct {
	models map[string]Model
	order  []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{models: make(map[string]Model)}
}

// Add registers a model. Re-registering a name replaces the model but
// keeps its position.
func (r *Registry) Add(m Model) {
	if _, exists := r.models[m.Name()]; !exists {
		r.order = append(r.order, m.Name())
	}
	r.models[m.Name()] = m
}

// Get looks a model up by name.
func (r *Registry) Get(name string) (Model, bool) {
	m, ok := r.models[name]
	return m, ok
}

// Names returns the registered names in insertion order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ErrUnknownKind reports an unrecognized generator family.
type ErrUnknownKind struct {
	Kind Kind
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown test kind %q (want logic, robustness or coverage)", string(e.Kind))
}
