package runner

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/sxm/pkg/machine"
	"github.com/aretw0/sxm/pkg/ports"
)

// ErrNoTransition is returned by Step when no available processing
// function accepts the input: the machine rejects the symbol and neither
// state nor memory changes.
var ErrNoTransition = errors.New("no valid transition found for input")

// Session holds the live configuration of one machine instance: its
// control state and its memory.
type Session[I, O, S, P comparable, M machine.Memory[M]] struct {
	machine machine.Machine[I, O, S, P, M]
	state   S
	mem     M
	steps   int
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	logger *slog.Logger
}

// WithLogger sets the structured logger for dispatch tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// New creates a session at the machine's first initial state with fresh
// memory.
func New[I, O, S, P comparable, M machine.Memory[M]](m machine.Machine[I, O, S, P, M], opts ...Option) *Session[I, O, S, P, M] {
	cfg := sessionConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Session[I, O, S, P, M]{
		machine: m,
		state:   m.InitialStates()[0],
		mem:     m.InitialMemory(),
		logger:  cfg.logger,
	}
}

// State returns the current control state.
func (s *Session[I, O, S, P, M]) State() S {
	return s.state
}

// Memory returns the live memory. Callers must not mutate it outside
// Step; use Clone for inspection copies.
func (s *Session[I, O, S, P, M]) Memory() M {
	return s.mem
}

// Steps returns how many inputs have been accepted since the last reset.
func (s *Session[I, O, S, P, M]) Steps() int {
	return s.steps
}

// Reset returns the session to the initial configuration.
func (s *Session[I, O, S, P, M]) Reset() {
	s.state = s.machine.InitialStates()[0]
	s.mem = s.machine.InitialMemory()
	s.steps = 0
}

// Step dispatches one input with the ordered-trial policy. Guard failures
// are silent retries against the next candidate; when every candidate
// declines, ErrNoTransition is returned and the configuration is
// unchanged.
func (s *Session[I, O, S, P, M]) Step(input I) (O, bool, error) {
	for _, phi := range s.machine.AvailablePhis(s.state) {
		out, emitted, err := s.machine.ExecutePhi(phi, s.mem, input)
		if err != nil {
			continue
		}
		next, ok := s.machine.Transition(s.state, phi)
		if ok {
			s.state = next
		} else {
			// Topology disagreement: the arc executed but has no
			// destination. Stay put rather than crash.
			s.logger.Warn("transition undefined for executed phi", "state", fmt.Sprint(s.state), "phi", fmt.Sprint(phi))
		}
		s.steps++
		s.logger.Debug("step", "phi", fmt.Sprint(phi), "state", fmt.Sprint(s.state), "emitted", emitted)
		return out, emitted, nil
	}
	var zero O
	return zero, false, ErrNoTransition
}

// Replay feeds a sequence of inputs through Step, stopping at the first
// rejection.
func (s *Session[I, O, S, P, M]) Replay(inputs []I) error {
	for i, input := range inputs {
		if _, _, err := s.Step(input); err != nil {
			return fmt.Errorf("replay rejected at symbol %d (%v): %w", i, input, err)
		}
	}
	return nil
}

// Snapshot serializes the session for persistence. The control state is
// rendered as a string; memory must be JSON-marshalable.
func (s *Session[I, O, S, P, M]) Snapshot(model string) (*ports.Snapshot, error) {
	mem, err := json.Marshal(s.mem)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal memory: %w", err)
	}
	return &ports.Snapshot{
		Model:  model,
		State:  fmt.Sprint(s.state),
		Memory: mem,
		Steps:  s.steps,
	}, nil
}

// Restore loads a snapshot into the session. The snapshot state must
// match one of the machine's enumerated states.
func (s *Session[I, O, S, P, M]) Restore(snap *ports.Snapshot) error {
	var found bool
	for _, st := range s.machine.AllStates() {
		if fmt.Sprint(st) == snap.State {
			s.state = st
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("snapshot references unknown state %q", snap.State)
	}

	mem := s.machine.InitialMemory()
	if err := json.Unmarshal(snap.Memory, mem); err != nil {
		return fmt.Errorf("failed to unmarshal memory: %w", err)
	}
	s.mem = mem
	s.steps = snap.Steps
	return nil
}
