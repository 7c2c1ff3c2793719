package testgen

import "github.com/aretw0/sxm/internal/search"

// Distinguisher supplies the characterization (W) set: for a state, the
// input suffix whose outputs distinguish it from every other state. The
// engine does not derive or validate it; soundness is the model author's
// responsibility.
type Distinguisher[S, I comparable] func(state S) []I

// Option configures a generator.
type Option func(*options)

type options struct {
	depthBound int
}

func newOptions(opts []Option) options {
	o := options{depthBound: search.DefaultDepthBound}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDepthBound caps the guard-aware search used by Coverage. Sequences
// longer than n are not explored; obligations only satisfiable beyond the
// bound are reported as uncovered.
func WithDepthBound(n int) Option {
	return func(o *options) {
		o.depthBound = n
	}
}
