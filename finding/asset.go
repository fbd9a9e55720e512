package finding

import "fmt"

// BusinessImpact represents the business impact classification of an asset.
type BusinessImpact string

const (
	// ImpactCritical indicates loss of the asset would halt core business operations.
	ImpactCritical BusinessImpact = "critical"

	// ImpactHigh indicates loss of the asset would significantly degrade operations.
	ImpactHigh BusinessImpact = "high"

	// ImpactMedium indicates loss of the asset would cause limited disruption.
	ImpactMedium BusinessImpact = "medium"

	// ImpactLow indicates loss of the asset would cause minimal disruption.
	ImpactLow BusinessImpact = "low"
)

// businessImpactScores maps impact levels to normalized risk factors in [0, 1].
var businessImpactScores = map[BusinessImpact]float64{
	ImpactCritical: 1.0,
	ImpactHigh:     0.75,
	ImpactMedium:   0.5,
	ImpactLow:      0.25,
}

// IsValid returns true if the business impact level is valid.
func (b BusinessImpact) IsValid() bool {
	switch b {
	case ImpactCritical, ImpactHigh, ImpactMedium, ImpactLow:
		return true
	default:
		return false
	}
}

// Score returns the normalized risk factor for the impact level.
// Returns 0.0 for invalid impact levels.
func (b BusinessImpact) Score() float64 {
	if score, ok := businessImpactScores[b]; ok {
		return score
	}
	return 0.0
}

// String returns the string representation of the business impact.
func (b BusinessImpact) String() string {
	return string(b)
}

// ParseBusinessImpact parses a string into a BusinessImpact value.
// Returns an error if the string is not a valid impact level.
func ParseBusinessImpact(s string) (BusinessImpact, error) {
	impact := BusinessImpact(s)
	if !impact.IsValid() {
		return "", fmt.Errorf("invalid business impact: %s", s)
	}
	return impact, nil
}

// Criticality bounds. Criticality is an inverse ordinal scale where 1 is the
// most critical tier and 5 the least.
const (
	CriticalityMost  = 1
	CriticalityLeast = 5
)

// Asset represents the inventory record a finding is attached to.
// Assets are read-only reference data resolved by the caller; the engine
// never mutates them.
type Asset struct {
	// ID is the unique identifier of the asset.
	ID string `json:"id" yaml:"id"`

	// Hostname is the primary hostname of the asset.
	Hostname string `json:"hostname,omitempty" yaml:"hostname,omitempty"`

	// Criticality is the inverse ordinal criticality tier (1 = most
	// critical, 5 = least critical).
	Criticality int `json:"criticality" yaml:"criticality"`

	// BusinessImpact classifies the operational impact of losing the asset.
	BusinessImpact BusinessImpact `json:"business_impact" yaml:"business_impact"`
}

// Validate checks that the asset has all required fields and valid values.
func (a *Asset) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("asset ID is required")
	}
	if a.Criticality < CriticalityMost || a.Criticality > CriticalityLeast {
		return fmt.Errorf("asset criticality must be between %d and %d, got %d",
			CriticalityMost, CriticalityLeast, a.Criticality)
	}
	if !a.BusinessImpact.IsValid() {
		return fmt.Errorf("invalid business impact: %s", a.BusinessImpact)
	}
	return nil
}

// CriticalityScore returns the normalized risk factor for the asset's
// criticality tier: 1 -> 1.0, 2 -> 0.75, 3 -> 0.5, 4 -> 0.25, 5 -> 0.0.
// Returns 0.0 for out-of-range tiers.
func (a *Asset) CriticalityScore() float64 {
	if a.Criticality < CriticalityMost || a.Criticality > CriticalityLeast {
		return 0.0
	}
	return float64(CriticalityLeast-a.Criticality) / float64(CriticalityLeast-CriticalityMost)
}
