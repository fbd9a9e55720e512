package compliance

import "fmt"

// ControlPriority represents the assessed priority of a compliance control.
type ControlPriority string

const (
	// PriorityCritical marks controls whose failure blocks certification.
	PriorityCritical ControlPriority = "critical"

	// PriorityHigh marks controls central to the framework's intent.
	PriorityHigh ControlPriority = "high"

	// PriorityMedium marks supporting controls.
	PriorityMedium ControlPriority = "medium"

	// PriorityLow marks hardening or documentation controls.
	PriorityLow ControlPriority = "low"
)

// IsValid returns true if the control priority is valid.
func (p ControlPriority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the control priority.
func (p ControlPriority) String() string {
	return string(p)
}

// ControlStatus represents the compliance status of a single control after
// gap analysis.
type ControlStatus string

const (
	// StatusCompliant indicates no in-scope findings map to the control.
	StatusCompliant ControlStatus = "compliant"

	// StatusPartial indicates findings map to the control but none are
	// critical or high severity.
	StatusPartial ControlStatus = "partial"

	// StatusNonCompliant indicates at least one critical or high severity
	// finding maps to the control.
	StatusNonCompliant ControlStatus = "non_compliant"
)

// IsValid returns true if the control status is valid.
func (s ControlStatus) IsValid() bool {
	switch s {
	case StatusCompliant, StatusPartial, StatusNonCompliant:
		return true
	default:
		return false
	}
}

// String returns the string representation of the control status.
func (s ControlStatus) String() string {
	return string(s)
}

// Control is a discrete requirement within a compliance framework,
// e.g. NIST 800-53 AC-2.
type Control struct {
	// ID is the control identifier, unique within its framework.
	ID string `json:"control_id" yaml:"control_id"`

	// Title is the control's short name.
	Title string `json:"title" yaml:"title"`

	// Family groups related controls (e.g. "Access Control").
	Family string `json:"family" yaml:"family"`

	// Priority is the assessed priority of the control.
	Priority ControlPriority `json:"priority" yaml:"priority"`
}

// Validate checks that the control has all required fields and valid values.
func (c *Control) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("control ID is required")
	}
	if c.Title == "" {
		return fmt.Errorf("control %s: title is required", c.ID)
	}
	if !c.Priority.IsValid() {
		return fmt.Errorf("control %s: invalid priority: %s", c.ID, c.Priority)
	}
	return nil
}

// Framework is a compliance framework's control catalog. Frameworks are
// static reference data supplied whole by the caller; the engine never
// mutates them.
type Framework struct {
	// ID is the framework identifier (e.g. "nist_800_53").
	ID string `json:"id" yaml:"id"`

	// Name is the framework's display name.
	Name string `json:"name" yaml:"name"`

	// Controls is the framework's control catalog.
	Controls []Control `json:"controls" yaml:"controls"`
}

// Validate checks the framework's structure: a non-empty identifier, at
// least one control, unique control identifiers, and valid controls.
// A framework with zero controls is a configuration error, not an empty
// result; gap analysis over it would be meaningless.
func (fw *Framework) Validate() error {
	if fw.ID == "" {
		return fmt.Errorf("framework ID is required")
	}
	if len(fw.Controls) == 0 {
		return &InvalidFrameworkError{FrameworkID: fw.ID, Reason: "framework has no controls"}
	}
	seen := make(map[string]bool, len(fw.Controls))
	for i := range fw.Controls {
		c := &fw.Controls[i]
		if err := c.Validate(); err != nil {
			return &InvalidFrameworkError{FrameworkID: fw.ID, Reason: err.Error()}
		}
		if seen[c.ID] {
			return &InvalidFrameworkError{
				FrameworkID: fw.ID,
				Reason:      fmt.Sprintf("duplicate control ID: %s", c.ID),
			}
		}
		seen[c.ID] = true
	}
	return nil
}

// Control returns the control with the given identifier, or false if the
// framework has no such control.
func (fw *Framework) Control(id string) (Control, bool) {
	for i := range fw.Controls {
		if fw.Controls[i].ID == id {
			return fw.Controls[i], true
		}
	}
	return Control{}, false
}
