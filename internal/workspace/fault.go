package workspace

import (
	"errors"
	"fmt"

	"github.com/seitarof/gen-builder/internal/classmodel"
)

// FaultKind classifies a command failure for dialog and propagation
// behavior.
type FaultKind int

const (
	// FaultUnknown covers unexpected faults. Logged, surfaced as an
	// error and re-raised so the caller's top-level handler sees it.
	FaultUnknown FaultKind = iota
	// FaultStructural marks rejected declarations from the node
	// factory. Not recoverable; propagates.
	FaultStructural
	// FaultTooling marks known host-side faults. Logged, surfaced as
	// a warning and the command is abandoned without retry.
	FaultTooling
)

func (k FaultKind) String() string {
	switch k {
	case FaultStructural:
		return "structural"
	case FaultTooling:
		return "tooling"
	default:
		return "unknown"
	}
}

// ToolingError wraps a recoverable host-side fault such as a failed
// write or formatting pass.
type ToolingError struct {
	Op  string
	Err error
}

func (e *ToolingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ToolingError) Unwrap() error {
	return e.Err
}

// Classify maps an error to its fault kind.
func Classify(err error) FaultKind {
	var te *ToolingError
	if errors.As(err, &te) {
		return FaultTooling
	}
	if errors.Is(err, classmodel.ErrInvalidDeclaration) {
		return FaultStructural
	}
	return FaultUnknown
}
