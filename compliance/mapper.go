package compliance

import (
	"fmt"
	"math"
	"sort"

	"github.com/vulnguard/riskengine/finding"
)

// ControlDetail is the per-control status record within a gap analysis.
type ControlDetail struct {
	// Status is the control's compliance status.
	Status ControlStatus `json:"status"`

	// FindingsCount is the total number of in-scope findings mapped to the
	// control.
	FindingsCount int `json:"findings_count"`

	// CriticalFindings counts mapped findings with critical severity.
	CriticalFindings int `json:"critical_findings"`

	// ControlTitle is the control's short name, for display.
	ControlTitle string `json:"control_title"`

	// ControlFamily is the control's family, for display.
	ControlFamily string `json:"control_family"`
}

// ExcludedFinding reports a finding that was excluded from gap analysis,
// with the reason. No exclusion is silent.
type ExcludedFinding struct {
	// FindingID identifies the excluded finding. May be empty when the
	// finding carried no identifier.
	FindingID string `json:"finding_id"`

	// Reason is the human-readable cause of the exclusion.
	Reason string `json:"reason"`
}

// GapAnalysisResult is the aggregated compliance posture of one framework
// over a finding snapshot.
//
// CompliantControls, PartialCompliance, and NonCompliantControls partition
// the framework's controls exactly: their sum always equals the control
// count, and every control appears once in ControlDetails.
type GapAnalysisResult struct {
	// FrameworkID identifies the analyzed framework.
	FrameworkID string `json:"framework_id"`

	// ComplianceScore is the rounded 0-100 posture score:
	// round(100 * (compliant + 0.5*partial) / total).
	ComplianceScore int `json:"compliance_score"`

	// CompliantControls counts controls with no mapped findings.
	CompliantControls int `json:"compliant_controls"`

	// PartialCompliance counts controls with mapped findings, none of them
	// critical or high severity.
	PartialCompliance int `json:"partial_compliance"`

	// NonCompliantControls counts controls with at least one critical or
	// high severity finding.
	NonCompliantControls int `json:"non_compliant_controls"`

	// ControlDetails maps control IDs to their per-control status records.
	ControlDetails map[string]ControlDetail `json:"control_details"`

	// Recommendations lists remediation statements for every control that
	// is not compliant, most severe first.
	Recommendations []string `json:"recommendations"`

	// Excluded lists findings left out of the analysis, with reasons.
	Excluded []ExcludedFinding `json:"excluded_findings,omitempty"`

	// Unmapped lists findings no rule mapped to any control. Unmapped
	// findings do not affect the compliance score.
	Unmapped []string `json:"unmapped_findings,omitempty"`
}

// Mapper performs gap analysis for one framework using a compiled mapping
// table. A Mapper is immutable after construction and safe for concurrent
// use; each Analyze call works over its own snapshot and returns a fresh
// result.
type Mapper struct {
	framework Framework
	rules     *RuleSet
}

// NewMapper validates the framework catalog and the mapping table against
// each other. Returns an *InvalidFrameworkError if the framework is
// structurally unusable, or a plain error if a rule references a control
// the framework does not define.
func NewMapper(fw Framework, rules *RuleSet) (*Mapper, error) {
	if err := fw.Validate(); err != nil {
		return nil, err
	}
	if rules == nil {
		return nil, fmt.Errorf("framework %s: mapping rule set is required", fw.ID)
	}
	for _, r := range rules.Rules() {
		if _, ok := fw.Control(r.ControlID); !ok {
			return nil, fmt.Errorf("framework %s: mapping rule references unknown control %s", fw.ID, r.ControlID)
		}
	}
	return &Mapper{framework: fw, rules: rules}, nil
}

// Framework returns the framework the mapper analyzes.
func (m *Mapper) Framework() Framework {
	return m.framework
}

// controlStats accumulates mapped findings for one control during analysis.
type controlStats struct {
	total      int
	critical   int
	actionable int
}

// Analyze maps the finding snapshot onto the framework's controls and
// produces the gap-analysis result.
//
// Malformed findings and findings whose rule evaluation fails are excluded
// and reported in Excluded; findings no rule maps to any control are
// reported in Unmapped. Neither affects the compliance score.
func (m *Mapper) Analyze(findings []finding.Finding) (*GapAnalysisResult, error) {
	result := &GapAnalysisResult{
		FrameworkID:    m.framework.ID,
		ControlDetails: make(map[string]ControlDetail, len(m.framework.Controls)),
	}

	stats := make(map[string]*controlStats, len(m.framework.Controls))
	for i := range findings {
		f := &findings[i]
		if err := f.Validate(); err != nil {
			result.Excluded = append(result.Excluded, ExcludedFinding{
				FindingID: f.ID,
				Reason:    fmt.Sprintf("malformed finding: %v", err),
			})
			continue
		}
		controls, err := m.rules.ControlsFor(f)
		if err != nil {
			result.Excluded = append(result.Excluded, ExcludedFinding{
				FindingID: f.ID,
				Reason:    err.Error(),
			})
			continue
		}
		if len(controls) == 0 {
			result.Unmapped = append(result.Unmapped, f.ID)
			continue
		}
		for _, controlID := range controls {
			cs := stats[controlID]
			if cs == nil {
				cs = &controlStats{}
				stats[controlID] = cs
			}
			cs.total++
			if f.Severity == finding.SeverityCritical {
				cs.critical++
			}
			if f.Severity.IsActionable() {
				cs.actionable++
			}
		}
	}

	for i := range m.framework.Controls {
		c := &m.framework.Controls[i]
		cs := stats[c.ID]

		detail := ControlDetail{
			Status:        StatusCompliant,
			ControlTitle:  c.Title,
			ControlFamily: c.Family,
		}
		switch {
		case cs == nil:
			result.CompliantControls++
		case cs.actionable > 0:
			detail.Status = StatusNonCompliant
			detail.FindingsCount = cs.total
			detail.CriticalFindings = cs.critical
			result.NonCompliantControls++
		default:
			detail.Status = StatusPartial
			detail.FindingsCount = cs.total
			detail.CriticalFindings = cs.critical
			result.PartialCompliance++
		}
		result.ControlDetails[c.ID] = detail
	}

	total := len(m.framework.Controls)
	weighted := float64(result.CompliantControls) + 0.5*float64(result.PartialCompliance)
	result.ComplianceScore = int(math.Round(100 * weighted / float64(total)))

	result.Recommendations = m.recommendations(result.ControlDetails)
	return result, nil
}

// recommendations builds the ordered remediation list: non-compliant
// controls before partial ones, then by descending critical findings, then
// by control ID for a reproducible order.
func (m *Mapper) recommendations(details map[string]ControlDetail) []string {
	type entry struct {
		id     string
		detail ControlDetail
	}
	var entries []entry
	for id, d := range details {
		if d.Status != StatusCompliant {
			entries = append(entries, entry{id: id, detail: d})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.detail.Status != b.detail.Status {
			return a.detail.Status == StatusNonCompliant
		}
		if a.detail.CriticalFindings != b.detail.CriticalFindings {
			return a.detail.CriticalFindings > b.detail.CriticalFindings
		}
		return a.id < b.id
	})

	recommendations := make([]string, 0, len(entries))
	for _, e := range entries {
		recommendations = append(recommendations, recommendationFor(e.id, e.detail))
	}
	return recommendations
}

// recommendationFor formats a single remediation statement. Generation is
// pure text formatting over already-computed aggregates.
func recommendationFor(controlID string, d ControlDetail) string {
	switch {
	case d.Status == StatusNonCompliant && d.CriticalFindings > 0:
		return fmt.Sprintf("Remediate %d critical findings mapped to %s: %s",
			d.CriticalFindings, controlID, d.ControlTitle)
	case d.Status == StatusNonCompliant:
		return fmt.Sprintf("Remediate %d high severity findings mapped to %s: %s",
			d.FindingsCount, controlID, d.ControlTitle)
	default:
		return fmt.Sprintf("Review %d findings mapped to %s: %s",
			d.FindingsCount, controlID, d.ControlTitle)
	}
}
