package risk

import (
	"testing"
	"time"
)

func TestTierForScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  PriorityTier
	}{
		{"1.0 is critical", 1.0, TierCritical},
		{"0.80 boundary is critical", 0.80, TierCritical},
		{"0.79 is high", 0.79, TierHigh},
		{"0.60 boundary is high", 0.60, TierHigh},
		{"0.59 is medium", 0.59, TierMedium},
		{"0.40 boundary is medium", 0.40, TierMedium},
		{"0.39 is low", 0.39, TierLow},
		{"0.0 is low", 0.0, TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierForScore(tt.score); got != tt.want {
				t.Errorf("TierForScore(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestPriorityTier_SLA(t *testing.T) {
	tests := []struct {
		name string
		tier PriorityTier
		want time.Duration
	}{
		{"critical is immediate", TierCritical, 0},
		{"high is 7 days", TierHigh, 7 * 24 * time.Hour},
		{"medium is 30 days", TierMedium, 30 * 24 * time.Hour},
		{"low is 90 days", TierLow, 90 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tier.SLA(); got != tt.want {
				t.Errorf("PriorityTier.SLA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePriorityTier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PriorityTier
		wantErr bool
	}{
		{"parse critical", "critical", TierCritical, false},
		{"parse high", "high", TierHigh, false},
		{"parse medium", "medium", TierMedium, false},
		{"parse low", "low", TierLow, false},
		{"info is not a tier", "info", "", true},
		{"empty string", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePriorityTier(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePriorityTier() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParsePriorityTier() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllTiers(t *testing.T) {
	tiers := AllTiers()
	if len(tiers) != 4 {
		t.Fatalf("AllTiers() returned %d tiers, want 4", len(tiers))
	}
	for _, tier := range tiers {
		if !tier.IsValid() {
			t.Errorf("AllTiers() contains invalid tier %q", tier)
		}
	}
}
