// Package finding provides the shared data model for security findings and
// the assets they are detected on.
//
// The package includes the Finding input type consumed by the risk and
// compliance engines, the Asset reference record resolved by the caller's
// inventory, and the enumerations both engines agree on.
//
// # Core Types
//
// Finding represents a detected security issue with full scoring context:
//   - Finding type and declared severity
//   - CVE identifiers with CVSS/EPSS/KEV intelligence attributes
//   - Affected hosts and implicated compliance frameworks
//   - Compensating controls already in place
//
// Asset carries the two attributes that matter for risk scoring: the inverse
// criticality ordinal (1 = most critical, 5 = least) and the business impact
// classification.
//
// # Severity Levels
//
// Severity is ranked from Critical to Info with associated weights for
// ordering and prioritization. SeverityFromCVSS derives a level from a CVSS
// base score using the standard qualitative bands.
//
// # Filtering
//
// Filter selects subsets of findings by type, severity, asset, CVSS floor,
// KEV membership, or cross-host spread.
//
// Example usage:
//
//	f := finding.New(
//		"asset-web-01",
//		"OpenSSL Heartbleed Vulnerability",
//		finding.TypeVulnerability,
//		finding.SeverityCritical,
//	)
//	f.CVEIDs = []string{"CVE-2014-0160"}
//	f.CVSSScore = 7.5
//
//	if err := f.Validate(); err != nil {
//		log.Fatal(err)
//	}
package finding
