package finding

import "testing"

func TestBusinessImpact_Score(t *testing.T) {
	tests := []struct {
		name   string
		impact BusinessImpact
		want   float64
	}{
		{"critical impact", ImpactCritical, 1.0},
		{"high impact", ImpactHigh, 0.75},
		{"medium impact", ImpactMedium, 0.5},
		{"low impact", ImpactLow, 0.25},
		{"invalid impact", BusinessImpact("none"), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.impact.Score(); got != tt.want {
				t.Errorf("BusinessImpact.Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseBusinessImpact(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    BusinessImpact
		wantErr bool
	}{
		{"parse critical", "critical", ImpactCritical, false},
		{"parse high", "high", ImpactHigh, false},
		{"parse medium", "medium", ImpactMedium, false},
		{"parse low", "low", ImpactLow, false},
		{"invalid impact", "severe", "", true},
		{"empty string", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBusinessImpact(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseBusinessImpact() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseBusinessImpact() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAsset_Validate(t *testing.T) {
	tests := []struct {
		name    string
		asset   Asset
		wantErr bool
	}{
		{
			name:    "valid asset",
			asset:   Asset{ID: "asset-1", Criticality: 3, BusinessImpact: ImpactMedium},
			wantErr: false,
		},
		{
			name:    "most critical tier",
			asset:   Asset{ID: "asset-2", Criticality: 1, BusinessImpact: ImpactCritical},
			wantErr: false,
		},
		{
			name:    "missing ID",
			asset:   Asset{Criticality: 3, BusinessImpact: ImpactMedium},
			wantErr: true,
		},
		{
			name:    "criticality too small",
			asset:   Asset{ID: "asset-3", Criticality: 0, BusinessImpact: ImpactMedium},
			wantErr: true,
		},
		{
			name:    "criticality too large",
			asset:   Asset{ID: "asset-4", Criticality: 6, BusinessImpact: ImpactMedium},
			wantErr: true,
		},
		{
			name:    "invalid business impact",
			asset:   Asset{ID: "asset-5", Criticality: 3, BusinessImpact: "none"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.asset.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Asset.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAsset_CriticalityScore(t *testing.T) {
	tests := []struct {
		name        string
		criticality int
		want        float64
	}{
		{"tier 1 most critical", 1, 1.0},
		{"tier 2", 2, 0.75},
		{"tier 3", 3, 0.5},
		{"tier 4", 4, 0.25},
		{"tier 5 least critical", 5, 0.0},
		{"out of range low", 0, 0.0},
		{"out of range high", 6, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Asset{ID: "a", Criticality: tt.criticality, BusinessImpact: ImpactMedium}
			if got := a.CriticalityScore(); got != tt.want {
				t.Errorf("Asset.CriticalityScore() = %v, want %v", got, tt.want)
			}
		})
	}
}
