package chunker

import "errors"

var (
	// ErrInvalidConfig is returned before any chunking work begins when a
	// size budget or overlap parameter is out of range.
	ErrInvalidConfig = errors.New("invalid chunking configuration")
	// ErrUnknownMethod is returned by the registry for method names outside
	// the supported set.
	ErrUnknownMethod = errors.New("unknown chunking method")
	// ErrNilAlgorithm is returned when registering a nil or unnamed
	// algorithm.
	ErrNilAlgorithm = errors.New("invalid algorithm registration")
	// ErrDuplicateMethod is returned when registering a method name that is
	// already taken.
	ErrDuplicateMethod = errors.New("chunking method already registered")
)
