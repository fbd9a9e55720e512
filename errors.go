package riskengine

import (
	"errors"
	"fmt"
)

// Sentinel errors for common engine error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrFrameworkNotFound indicates the requested compliance framework is not
	// in the builtin catalog.
	ErrFrameworkNotFound = errors.New("framework not found")

	// ErrNilResolver indicates a scoring operation was invoked without an
	// asset resolver.
	ErrNilResolver = errors.New("asset resolver is nil")

	// ErrInvalidConfig indicates the provided engine configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error kinds categorize errors by their type.
const (
	// KindNotFound represents errors where a resource was not found.
	KindNotFound = "not_found"

	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindAnalysis represents errors that occur during scoring or gap analysis.
	KindAnalysis = "analysis"

	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"

	// KindInternal represents internal engine errors.
	KindInternal = "internal"
)

// EngineError is a structured error type that wraps underlying errors with
// the operation that failed and the category of error.
//
// EngineError implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
type EngineError struct {
	// Op is the operation that failed (e.g., "Engine.ScoreFindings").
	Op string

	// Kind categorizes the error (e.g., KindNotFound, KindValidation).
	Kind string

	// Err is the underlying error that caused this error.
	Err error
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *EngineError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("riskengine: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("riskengine: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *EngineError) Unwrap() error {
	return e.Err
}

// Is implements error matching for EngineError, allowing comparison based on
// the underlying error or on Op and Kind of another EngineError.
func (e *EngineError) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*EngineError); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
		return false
	}

	return errors.Is(e.Err, target)
}

// newError constructs an EngineError for the given operation.
func newError(op, kind string, err error) *EngineError {
	return &EngineError{Op: op, Kind: kind, Err: err}
}
