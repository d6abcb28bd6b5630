package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors for parser operations.
var (
	ErrNilSource = errors.New("markdown source is nil")
	ErrRead      = errors.New("failed to read markdown source")
	ErrInvariant = errors.New("parser invariant violated")
)

// InvariantError reports a defect in the parser itself, such as a block
// reader that did not advance the cursor. It is raised with panic and is
// never caused by input content alone.
type InvariantError struct {
	Line     int // 1-based line where the cursor stalled
	Consumed int // lines reported by the block reader
	Reason   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v at line %d: %s (consumed %d)", ErrInvariant, e.Line, e.Reason, e.Consumed)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}
