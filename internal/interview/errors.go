package interview

import "errors"

// ErrPreconditionNotMet reports that an operation was invoked before
// its inputs existed (no declared tech stack, or no transcript to
// analyze). Callers surface it as a warning; no state is mutated.
var ErrPreconditionNotMet = errors.New("precondition not met")
