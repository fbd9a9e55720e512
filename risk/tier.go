package risk

import (
	"fmt"
	"time"
)

// PriorityTier is the coarse remediation bucket derived from a continuous
// risk score.
type PriorityTier string

const (
	// TierCritical requires immediate remediation.
	TierCritical PriorityTier = "critical"

	// TierHigh carries a 7-day remediation SLA.
	TierHigh PriorityTier = "high"

	// TierMedium carries a 30-day remediation SLA.
	TierMedium PriorityTier = "medium"

	// TierLow carries a 90-day remediation SLA.
	TierLow PriorityTier = "low"
)

// Tier thresholds are inclusive lower bounds on the risk score.
const (
	criticalThreshold = 0.80
	highThreshold     = 0.60
	mediumThreshold   = 0.40
)

// TierForScore classifies a risk score into a priority tier.
// The score is expected to be in [0, 1]; thresholds are inclusive lower
// bounds (0.80 critical, 0.60 high, 0.40 medium, below that low).
func TierForScore(score float64) PriorityTier {
	switch {
	case score >= criticalThreshold:
		return TierCritical
	case score >= highThreshold:
		return TierHigh
	case score >= mediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// IsValid returns true if the priority tier is valid.
func (t PriorityTier) IsValid() bool {
	switch t {
	case TierCritical, TierHigh, TierMedium, TierLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the priority tier.
func (t PriorityTier) String() string {
	return string(t)
}

// SLA returns the remediation deadline for the tier relative to scoring
// time. Critical findings have a zero SLA, meaning immediate remediation.
func (t PriorityTier) SLA() time.Duration {
	switch t {
	case TierCritical:
		return 0
	case TierHigh:
		return 7 * 24 * time.Hour
	case TierMedium:
		return 30 * 24 * time.Hour
	case TierLow:
		return 90 * 24 * time.Hour
	default:
		return 0
	}
}

// ParsePriorityTier parses a string into a PriorityTier value.
// Returns an error if the string is not a valid tier.
func ParsePriorityTier(s string) (PriorityTier, error) {
	tier := PriorityTier(s)
	if !tier.IsValid() {
		return "", fmt.Errorf("invalid priority tier: %s", s)
	}
	return tier, nil
}

// AllTiers returns all valid priority tiers in order from critical to low.
func AllTiers() []PriorityTier {
	return []PriorityTier{TierCritical, TierHigh, TierMedium, TierLow}
}
