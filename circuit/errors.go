package circuit

import "errors"

// Error kinds returned by circuit operations. Every failure wraps exactly
// one of these sentinels, so callers can dispatch with errors.Is.
var (
	// ErrArityMismatch reports a qubit, clbit, parameter or matrix-dimension
	// count that disagrees with the operation's fixed metadata.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrIndexOutOfRange reports a bit or instruction index beyond the
	// circuit's current bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrExpectedUnitary reports a matrix that failed the unitarity check.
	ErrExpectedUnitary = errors.New("expected unitary matrix")

	// ErrCapacityExceeded reports register growth that would overflow the
	// bit-index representation.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrRuntime reports an internal invariant violation, such as a
	// malformed delay unit or duplicate bit arguments.
	ErrRuntime = errors.New("runtime error")
)
