package machine

// Memory is the constraint every machine memory type must satisfy.
// Clone returns an independent copy sharing no mutable data with the
// receiver. Search branches execute speculatively against clones; a
// rejected branch must never leak mutations into the accepted frontier,
// so Clone stands in for transactional rollback.
type Memory[M any] interface {
	Clone() M
}

// Machine is the contract a model author implements.
//
// Type parameters map to the formal tuple: I is the input alphabet (Sigma),
// O the output alphabet (Gamma), S the state set (Q), P the processing
// function set (Phi) and M the memory store. All alphabets are finite and
// the enumerations must be exhaustive and stable: omissions silently cause
// undercoverage, they are not detected.
//
// Two dispatch strategies are exposed and must not be conflated:
//
//   - Routed: RoutedPhi selects at most one candidate processing function
//     per (state, input). All test generators assume this strategy.
//   - Ordered trial: AvailablePhis lists the arcs leaving a state in
//     priority order; the execution runner tries them one by one until a
//     guard passes. Generators never use it.
type Machine[I, O, S, P comparable, M Memory[M]] interface {
	// InitialStates returns the seed states for every search. Must be
	// non-empty.
	InitialStates() []S

	// FinalStates returns the nominal final-state set. No generator or
	// search consults it; it exists for topology rendering.
	FinalStates() []S

	// AllStates enumerates Q. Order is significant: it fixes generator
	// output order and search tie-breaking.
	AllStates() []S

	// AllInputs enumerates Sigma, in tie-breaking order.
	AllInputs() []I

	// AllOutputs enumerates Gamma.
	AllOutputs() []O

	// AllPhis enumerates Phi.
	AllPhis() []P

	// InitialMemory returns a fresh m0. Every call must return an
	// independent instance.
	InitialMemory() M

	// Transition is the next-state function F: memory-independent and
	// pure. It answers "is this arc defined", not "will its guard pass".
	Transition(state S, phi P) (S, bool)

	// AvailablePhis returns the processing functions leaving state, in
	// trial order. Ordered-trial dispatch only.
	AvailablePhis(state S) []P

	// RoutedPhi returns the single candidate processing function for
	// (state, input), if any. Routed dispatch; must agree with
	// Transition: a routed phi whose destination is undefined degrades
	// generated coverage. The engine does not check this.
	RoutedPhi(state S, input I) (P, bool)

	// ExecutePhi attempts phi against mem and input. On success it
	// mutates mem in place and reports the produced output, if any. On
	// failure it returns an error (conventionally wrapping
	// ErrGuardRejected) and must leave mem exactly as it was: a
	// non-atomic failure makes every downstream search result unsound.
	//
	// This is the only operation that mutates memory.
	ExecutePhi(phi P, mem M, input I) (output O, emitted bool, err error)
}
