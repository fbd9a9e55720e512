// Package compliance maps security findings onto the controls of a
// regulatory framework and aggregates them into a gap-analysis report.
//
// # Mapping
//
// A finding is associated with zero or more controls by a mapping table of
// rules. Each rule matches one finding type and may carry a CEL predicate
// over the finding's attributes, e.g.
//
//	finding_type: misconfiguration
//	control_id:   A.12.6
//	expression:   '"family=encryption" in tags'
//
// Rules are validated and compiled once (NewRuleSet, NewMapper), so a bad
// expression fails at load time rather than mid-analysis.
//
// # Aggregation
//
// Per-control status is determined purely by the mapped findings:
//   - no findings: compliant
//   - findings, none critical/high: partial
//   - at least one critical/high finding: non_compliant
//
// The statuses partition the catalog exactly, and the framework score is
// round(100 * (compliant + 0.5*partial) / total). A framework with zero
// controls fails fast with InvalidFrameworkError.
//
// # Recommendations
//
// One remediation statement is generated per control that is not compliant,
// ordered non-compliant first, then by descending critical findings, then by
// control ID.
//
// Malformed findings are excluded and reported, never silently dropped;
// unmapped findings are listed separately and do not affect the score.
package compliance
