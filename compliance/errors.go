package compliance

import "fmt"

// InvalidFrameworkError indicates a gap analysis was requested for a
// framework that is structurally unusable: unknown identifier, zero
// controls, or a malformed control catalog. The error is fatal to that
// single gap-analysis call.
type InvalidFrameworkError struct {
	// FrameworkID is the framework the request named.
	FrameworkID string

	// Reason describes why the framework is unusable.
	Reason string
}

// Error implements the error interface.
func (e *InvalidFrameworkError) Error() string {
	return fmt.Sprintf("invalid framework %q: %s", e.FrameworkID, e.Reason)
}
