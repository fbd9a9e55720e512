package finding

import "fmt"

// Severity represents the declared severity level of a security finding.
type Severity string

const (
	// SeverityCritical indicates a finding requiring immediate remediation.
	// Examples: actively exploited CVEs, unauthenticated remote code execution
	SeverityCritical Severity = "critical"

	// SeverityHigh indicates a high-impact finding.
	// Examples: privilege escalation on a production host, exposed credentials
	SeverityHigh Severity = "high"

	// SeverityMedium indicates a moderate finding.
	// Examples: weak cipher configuration, patchable CVEs with no known exploit
	SeverityMedium Severity = "medium"

	// SeverityLow indicates a minor finding.
	// Examples: version disclosure, hardening gaps on low-value assets
	SeverityLow Severity = "low"

	// SeverityInfo indicates an informational finding with no direct risk.
	// Examples: inventory observations, policy recommendations
	SeverityInfo Severity = "info"
)

// severityWeights maps severity levels to numeric weights used for ordering
// and tie-breaking. Higher weights indicate more severe findings.
var severityWeights = map[Severity]float64{
	SeverityCritical: 10.0,
	SeverityHigh:     7.5,
	SeverityMedium:   5.0,
	SeverityLow:      2.5,
	SeverityInfo:     1.0,
}

// IsValid returns true if the severity level is valid.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow, SeverityInfo:
		return true
	default:
		return false
	}
}

// Weight returns the numeric weight associated with the severity level.
// Returns 0.0 for invalid severity levels.
func (s Severity) Weight() float64 {
	if weight, ok := severityWeights[s]; ok {
		return weight
	}
	return 0.0
}

// IsActionable returns true if the severity is critical or high.
// Actionable findings drive a control into non-compliant status during
// gap analysis.
func (s Severity) IsActionable() bool {
	return s == SeverityCritical || s == SeverityHigh
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// ParseSeverity parses a string into a Severity value.
// Returns an error if the string is not a valid severity level.
func ParseSeverity(s string) (Severity, error) {
	severity := Severity(s)
	if !severity.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}
	return severity, nil
}

// SeverityFromCVSS derives a severity level from a CVSS base score using
// the standard CVSS v3 qualitative rating bands.
// Scores at or above 9.0 map to critical, 7.0 to high, 4.0 to medium,
// and anything below to low.
func SeverityFromCVSS(score float64) Severity {
	switch {
	case score >= 9.0:
		return SeverityCritical
	case score >= 7.0:
		return SeverityHigh
	case score >= 4.0:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// CompareSeverity compares two severity levels.
// Returns:
//   - negative if s1 < s2
//   - zero if s1 == s2
//   - positive if s1 > s2
func CompareSeverity(s1, s2 Severity) int {
	w1 := s1.Weight()
	w2 := s2.Weight()
	if w1 < w2 {
		return -1
	}
	if w1 > w2 {
		return 1
	}
	return 0
}

// AllSeverities returns all valid severity levels in order from critical to info.
func AllSeverities() []Severity {
	return []Severity{
		SeverityCritical,
		SeverityHigh,
		SeverityMedium,
		SeverityLow,
		SeverityInfo,
	}
}
