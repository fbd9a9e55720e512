package finding

import "fmt"

// Type represents the kind of security finding.
type Type string

const (
	// TypeVulnerability indicates a software vulnerability, typically with
	// associated CVE identifiers and CVSS/EPSS scoring.
	// Examples: Unpatched OpenSSL, vulnerable web server version
	TypeVulnerability Type = "vulnerability"

	// TypeMisconfiguration indicates an insecure system or service configuration.
	// Examples: Weak TLS ciphers, anonymous FTP enabled, default credentials
	TypeMisconfiguration Type = "misconfiguration"

	// TypeCompliance indicates a direct violation of a compliance requirement.
	// Examples: Missing audit logging, unencrypted data at rest
	TypeCompliance Type = "compliance"

	// TypePolicyViolation indicates a breach of internal security policy.
	// Examples: Unauthorized software, expired certificates, shadow accounts
	TypePolicyViolation Type = "policy_violation"
)

// IsValid returns true if the finding type is valid.
func (t Type) IsValid() bool {
	switch t {
	case TypeVulnerability,
		TypeMisconfiguration,
		TypeCompliance,
		TypePolicyViolation:
		return true
	default:
		return false
	}
}

// String returns the string representation of the finding type.
func (t Type) String() string {
	return string(t)
}

// DisplayName returns a human-readable display name for the finding type.
func (t Type) DisplayName() string {
	switch t {
	case TypeVulnerability:
		return "Vulnerability"
	case TypeMisconfiguration:
		return "Misconfiguration"
	case TypeCompliance:
		return "Compliance"
	case TypePolicyViolation:
		return "Policy Violation"
	default:
		return string(t)
	}
}

// ParseType parses a string into a finding Type value.
// Returns an error if the string is not a valid finding type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid finding type: %s", s)
	}
	return t, nil
}

// AllTypes returns all valid finding types.
func AllTypes() []Type {
	return []Type{
		TypeVulnerability,
		TypeMisconfiguration,
		TypeCompliance,
		TypePolicyViolation,
	}
}
