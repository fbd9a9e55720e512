package risk

import "github.com/vulnguard/riskengine/finding"

// Factor weights for the composite risk score. The five positive weights
// sum to 0.90; the compensating-controls weight is subtracted, so the
// unclamped total ranges from -0.10 to 0.90 before clamping to [0, 1].
const (
	// WeightCVSS weights the normalized CVSS base score (cvss / 10).
	WeightCVSS = 0.25

	// WeightEPSS weights the EPSS exploit probability, used as-is.
	WeightEPSS = 0.20

	// WeightAssetCriticality weights the asset criticality factor
	// (tier 1 -> 1.0 down to tier 5 -> 0.0).
	WeightAssetCriticality = 0.20

	// WeightKEV weights CISA KEV catalog membership (1.0 if listed).
	WeightKEV = 0.15

	// WeightBusinessImpact weights the asset's business impact factor.
	WeightBusinessImpact = 0.10

	// WeightCompensatingControls is the deduction applied when at least one
	// compensating control is in place. The deduction is capped at one full
	// weight regardless of how many controls exist.
	WeightCompensatingControls = 0.10
)

// FactorBreakdown records the weighted contribution of each scoring factor,
// for auditability of the composite score. CompensatingControls is stored as
// the (non-positive) deduction, so the unclamped score is the plain sum of
// all six fields.
type FactorBreakdown struct {
	// CVSS is the weighted CVSS contribution: 0.25 * (cvss_score / 10).
	CVSS float64 `json:"cvss"`

	// EPSS is the weighted EPSS contribution: 0.20 * epss_score.
	EPSS float64 `json:"epss"`

	// AssetCriticality is the weighted criticality contribution.
	AssetCriticality float64 `json:"asset_criticality"`

	// KEV is the weighted KEV contribution: 0.15 if listed, else 0.
	KEV float64 `json:"kev"`

	// BusinessImpact is the weighted business impact contribution.
	BusinessImpact float64 `json:"business_impact"`

	// CompensatingControls is the deduction for mitigations already in
	// place: -0.10 if any exist, else 0.
	CompensatingControls float64 `json:"compensating_controls"`
}

// Total returns the unclamped sum of all weighted contributions.
func (b FactorBreakdown) Total() float64 {
	return b.CVSS + b.EPSS + b.AssetCriticality + b.KEV + b.BusinessImpact + b.CompensatingControls
}

// breakdownFor computes the weighted factor contributions for a finding on
// its resolved asset. Inputs are assumed validated.
func breakdownFor(f *finding.Finding, asset *finding.Asset) FactorBreakdown {
	b := FactorBreakdown{
		CVSS:             WeightCVSS * (f.CVSSScore / 10.0),
		EPSS:             WeightEPSS * f.EPSSScore,
		AssetCriticality: WeightAssetCriticality * asset.CriticalityScore(),
		BusinessImpact:   WeightBusinessImpact * asset.BusinessImpact.Score(),
	}
	if f.KEVListed {
		b.KEV = WeightKEV
	}
	if f.CompensatingControls > 0 {
		b.CompensatingControls = -WeightCompensatingControls
	}
	return b
}
