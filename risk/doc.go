// Package risk computes deterministic, weighted composite risk scores for
// security findings and ranks them into a stable remediation order.
//
// # Scoring Model
//
// Five weighted factors contribute to the score, each normalized to [0, 1]
// before weighting:
//   - CVSS base score (0.25)
//   - EPSS exploit probability (0.20)
//   - Asset criticality (0.20)
//   - CISA KEV catalog membership (0.15)
//   - Business impact (0.10)
//
// Any compensating control in place subtracts a flat 0.10. The sum is
// clamped to [0, 1]; the clamp keeps the deduction from driving a near-zero
// score negative.
//
// # Priority Tiers
//
// Scores classify into four tiers with inclusive lower bounds: critical
// (>= 0.80, immediate SLA), high (>= 0.60, 7 days), medium (>= 0.40, 30
// days), and low (90 days).
//
// # Ranking
//
// Batch output is a total order: descending score, with ties broken by
// declared severity, then CVE count, then lexicographic finding ID. Scoring
// the same snapshot twice yields bit-identical scores and the same ranks.
//
// # Partial Failure
//
// Batch scoring never aborts on a bad finding. Findings whose asset cannot
// be resolved (UnresolvedAssetError) or that fail validation
// (MalformedFindingError) are excluded and reported alongside the ranked
// scores, so a dashboard can still show a ranked list when some inventory
// records are stale.
package risk
