package risk_test

import (
	"context"
	"fmt"

	"github.com/vulnguard/riskengine/finding"
	"github.com/vulnguard/riskengine/risk"
)

// ExampleScorer_ScoreBatch demonstrates ranked batch scoring with partial
// failure when an asset cannot be resolved.
func ExampleScorer_ScoreBatch() {
	assets := risk.AssetMap{
		"asset-db": {ID: "asset-db", Criticality: 1, BusinessImpact: finding.ImpactCritical},
		"asset-ws": {ID: "asset-ws", Criticality: 4, BusinessImpact: finding.ImpactLow},
	}

	findings := []finding.Finding{
		{
			ID: "f-workstation", Type: finding.TypeMisconfiguration,
			Title: "SSH Weak Encryption Algorithms", Severity: finding.SeverityMedium,
			AssetID: "asset-ws", CVSSScore: 4.0,
		},
		{
			ID: "f-database", Type: finding.TypeVulnerability,
			Title: "OpenSSL Heartbleed Vulnerability", Severity: finding.SeverityCritical,
			AssetID: "asset-db", CVSSScore: 9.8, EPSSScore: 0.9, KEVListed: true,
		},
		{
			ID: "f-stale", Type: finding.TypeVulnerability,
			Title: "Finding on retired asset", Severity: finding.SeverityHigh,
			AssetID: "asset-retired",
		},
	}

	scorer := risk.NewScorer(risk.Options{})
	result, err := scorer.ScoreBatch(context.Background(), findings, assets)
	if err != nil {
		panic(err)
	}

	for _, s := range result.Scores {
		fmt.Printf("#%d %s score=%.3f tier=%s\n", s.Rank, s.FindingID, s.Score, s.Tier)
	}
	for _, f := range result.Failures {
		fmt.Printf("failed: %s\n", f.Reason)
	}
	// Output:
	// #1 f-database score=0.875 tier=critical
	// #2 f-workstation score=0.175 tier=low
	// failed: finding f-stale references unresolvable asset asset-retired
}
