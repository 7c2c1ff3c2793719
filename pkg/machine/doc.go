// Package machine defines the stream X-machine contract: finite alphabets,
// a guarded transition topology over an explicit memory store, and the
// TestCase record every generator emits.
//
// A stream X-machine is M = (Sigma, Gamma, Q, Mem, Phi, F, q0, m0): a finite
// automaton whose arcs are processing functions (Phi) guarded by the current
// memory, not raw input symbols. Model authors implement the Machine
// interface; everything else in this module is a pure function of it.
package machine
