package reconcile

import (
	"errors"

	"artifact-planner/core/artifact"

	"go.uber.org/zap"
)

// ErrInvariantViolation is wrapped by every error Reconstruct returns. It
// signals a defect in the recommendation or in the reconstruction, never a
// condition worth retrying.
var ErrInvariantViolation = errors.New("invariant violation")

// InvariantError describes which consistency check failed.
type InvariantError struct {
	// Op is the reconstruction step that failed.
	Op string

	// Detail describes the inconsistency.
	Detail string
}

func (e *InvariantError) Error() string {
	return ErrInvariantViolation.Error() + ": " + e.Op + ": " + e.Detail
}

// Unwrap exposes ErrInvariantViolation to errors.Is.
func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}

// IsInvariantViolation reports whether err marks a consistency defect.
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrInvariantViolation)
}

// violation logs the constructed state and returns the matching error.
func violation(op, detail string, constructed []artifact.Artifact) error {
	zap.L().Error("artifact set reconstruction failed",
		zap.String("op", op),
		zap.String("detail", detail),
		zap.Stringer("constructed", artifact.Set{Artifacts: constructed}),
	)
	return &InvariantError{Op: op, Detail: detail}
}
