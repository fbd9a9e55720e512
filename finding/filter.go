package finding

// Filter describes criteria for selecting a subset of findings.
// Zero-value fields match everything.
type Filter struct {
	// Types restricts matches to the given finding types.
	Types []Type

	// Severities restricts matches to the given severity levels.
	Severities []Severity

	// AssetIDs restricts matches to findings on the given assets.
	AssetIDs []string

	// MinCVSS restricts matches to findings with a CVSS score at or above
	// the threshold.
	MinCVSS float64

	// KEVOnly restricts matches to KEV-listed findings.
	KEVOnly bool

	// CrossHostOnly restricts matches to findings affecting more than one host.
	CrossHostOnly bool
}

// Matches returns true if the finding satisfies every criterion of the filter.
func (fl *Filter) Matches(f *Finding) bool {
	if len(fl.Types) > 0 && !containsType(fl.Types, f.Type) {
		return false
	}
	if len(fl.Severities) > 0 && !containsSeverity(fl.Severities, f.Severity) {
		return false
	}
	if len(fl.AssetIDs) > 0 && !containsString(fl.AssetIDs, f.AssetID) {
		return false
	}
	if f.CVSSScore < fl.MinCVSS {
		return false
	}
	if fl.KEVOnly && !f.KEVListed {
		return false
	}
	if fl.CrossHostOnly && !f.CrossHost() {
		return false
	}
	return true
}

// Apply returns the findings that satisfy the filter, preserving input order.
func (fl *Filter) Apply(findings []Finding) []Finding {
	var matched []Finding
	for i := range findings {
		if fl.Matches(&findings[i]) {
			matched = append(matched, findings[i])
		}
	}
	return matched
}

func containsType(types []Type, t Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

func containsSeverity(severities []Severity, s Severity) bool {
	for _, candidate := range severities {
		if candidate == s {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
