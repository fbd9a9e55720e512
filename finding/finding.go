package finding

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Finding represents a detected security issue on an asset.
//
// Findings are immutable inputs to the scoring and compliance engines;
// they are created and updated by the scan-ingestion pipeline.
type Finding struct {
	// ID is a unique identifier for the finding.
	ID string `json:"id" yaml:"id"`

	// Type classifies the kind of issue that was detected.
	Type Type `json:"finding_type" yaml:"finding_type"`

	// Title is a brief summary of the finding.
	Title string `json:"title" yaml:"title"`

	// Description provides detailed information about the finding.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Severity indicates the declared severity level of the finding.
	Severity Severity `json:"severity" yaml:"severity"`

	// AssetID identifies the asset the finding was detected on. Required.
	AssetID string `json:"asset_id" yaml:"asset_id"`

	// CVEIDs lists the CVE identifiers associated with the finding, in the
	// order reported by the scanner. May be empty.
	CVEIDs []string `json:"cve_ids,omitempty" yaml:"cve_ids,omitempty"`

	// CVSSScore is the CVSS base score (0.0 to 10.0). Zero when no score
	// has been published.
	CVSSScore float64 `json:"cvss_score,omitempty" yaml:"cvss_score,omitempty"`

	// EPSSScore is the EPSS exploit probability (0.0 to 1.0). Zero when no
	// score has been published.
	EPSSScore float64 `json:"epss_score,omitempty" yaml:"epss_score,omitempty"`

	// KEVListed reports whether the finding appears in the CISA Known
	// Exploited Vulnerabilities catalog.
	KEVListed bool `json:"kev_listed" yaml:"kev_listed"`

	// AffectedHosts lists the host identifiers the finding was observed on.
	// More than one host marks the finding as cross-host.
	AffectedHosts []string `json:"affected_hosts,omitempty" yaml:"affected_hosts,omitempty"`

	// ComplianceFrameworks lists framework identifiers the finding is
	// already known to implicate.
	ComplianceFrameworks []string `json:"compliance_frameworks,omitempty" yaml:"compliance_frameworks,omitempty"`

	// CompensatingControls counts the mitigations already in place for the
	// finding.
	CompensatingControls int `json:"compensating_controls" yaml:"compensating_controls"`

	// Tags are arbitrary labels attached by the ingestion pipeline, used by
	// control-mapping rule predicates (e.g. "family=encryption").
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// FirstSeen is the timestamp when the finding was first detected.
	FirstSeen time.Time `json:"first_seen" yaml:"first_seen"`
}

// New creates a new Finding with required fields and a generated identifier.
func New(assetID, title string, typ Type, severity Severity) *Finding {
	return &Finding{
		ID:        uuid.New().String(),
		Type:      typ,
		Title:     title,
		Severity:  severity,
		AssetID:   assetID,
		FirstSeen: time.Now(),
	}
}

// Validate checks that the finding has all required fields and valid values.
func (f *Finding) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("finding ID is required")
	}
	if !f.Type.IsValid() {
		return fmt.Errorf("invalid finding type: %s", f.Type)
	}
	if !f.Severity.IsValid() {
		return fmt.Errorf("invalid severity: %s", f.Severity)
	}
	if f.AssetID == "" {
		return fmt.Errorf("asset ID is required")
	}
	if f.CVSSScore < 0.0 || f.CVSSScore > 10.0 {
		return fmt.Errorf("CVSS score must be between 0.0 and 10.0, got %f", f.CVSSScore)
	}
	if f.EPSSScore < 0.0 || f.EPSSScore > 1.0 {
		return fmt.Errorf("EPSS score must be between 0.0 and 1.0, got %f", f.EPSSScore)
	}
	if f.CompensatingControls < 0 {
		return fmt.Errorf("compensating controls count must not be negative, got %d", f.CompensatingControls)
	}
	return nil
}

// CrossHost returns true if the finding affects more than one host.
func (f *Finding) CrossHost() bool {
	return len(f.AffectedHosts) > 1
}

// HasTag returns true if the finding carries the given tag.
func (f *Finding) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ImplicatesFramework returns true if the finding is already known to
// implicate the given compliance framework.
func (f *Finding) ImplicatesFramework(frameworkID string) bool {
	for _, fw := range f.ComplianceFrameworks {
		if fw == frameworkID {
			return true
		}
	}
	return false
}
