/*
Package sxm is a model-based test-generation engine for stream X-machines:
finite-state machines whose transitions are guarded partial functions over
an explicit memory store.

Given a model implementing the machine contract (pkg/machine), the engine
synthesizes three suites of test vectors sufficient to detect deviations
between an implementation and its specification:

  - Logic: W-method conformance tests over the reachable control states.
  - Robustness: input-completeness tests proving undefined inputs are
    safely ignored.
  - Coverage: data-path tests discovered by a guard-aware search that
    replays the real processing functions over cloned memory, so
    transitions only reachable under specific accumulated data are
    exercised with accurate expectations.

# Usage

Implement machine.Machine for your model, supply a characterization
(W) set, and call the generators:

	var keypad models.DigicodeMachine = models.NewDigicode()
	logic := testgen.Logic(keypad, models.DistinguishDigicode)
	tests, uncovered := testgen.Coverage(keypad, models.DistinguishDigicode)

The collaborators around the core (the ordered-trial execution runner in
pkg/runner, two-machine composition in pkg/compose, topology rendering
and the CLI/HTTP surfaces) all consume the same contract and never feed
back into generation.
*/
package sxm
