package machine

// TestCase is one generated test vector for the downstream execution
// harness. The harness replays SetupSequence from a fresh configuration,
// applies TestInput, compares the observed output against ExpectedOutput,
// then replays VerificationSequence to distinguish the resulting state.
type TestCase[I, O comparable] struct {
	// Name is a human-readable identifier for the scenario.
	Name string `json:"name" yaml:"name"`

	// SetupSequence drives the machine to the state under test.
	SetupSequence []I `json:"setup_sequence" yaml:"setup_sequence"`

	// TestInput is the symbol applied to trigger the transition under test.
	TestInput I `json:"test_input" yaml:"test_input"`

	// ExpectedOutput is the output the trigger should produce; nil means
	// no observable output is expected.
	ExpectedOutput *O `json:"expected_output,omitempty" yaml:"expected_output,omitempty"`

	// VerificationSequence is the W-set suffix distinguishing the
	// resulting state from all others.
	VerificationSequence []I `json:"verification_sequence" yaml:"verification_sequence"`
}
