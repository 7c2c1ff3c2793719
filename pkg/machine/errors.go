package machine

import (
	"errors"
	"fmt"
)

// ErrGuardRejected is returned by ExecutePhi when a processing function
// declines a (memory, input) pair. It is recoverable: the runner tries the
// next candidate and the searches prune the branch.
var ErrGuardRejected = errors.New("guard rejected")

// SearchExhaustedError reports that the guard-aware search found no witness
// within the depth bound. It marks a coverage gap, never a fatal condition.
type SearchExhaustedError struct {
	Depth int
}

func (e *SearchExhaustedError) Error() string {
	return fmt.Sprintf("no witness found within depth bound %d", e.Depth)
}

// IsSearchExhausted reports whether err is a SearchExhaustedError.
func IsSearchExhausted(err error) bool {
	var target *SearchExhaustedError
	return errors.As(err, &target)
}
