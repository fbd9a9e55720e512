package riskengine_test

import (
	"context"
	"fmt"

	"github.com/vulnguard/riskengine"
	"github.com/vulnguard/riskengine/finding"
	"github.com/vulnguard/riskengine/risk"
)

// Example demonstrates scoring a batch of findings and running gap analyses
// against every builtin compliance framework.
func Example() {
	engine := riskengine.New(riskengine.WithParallelism(2))

	assets := risk.AssetMap{
		"asset-db": {ID: "asset-db", Criticality: 1, BusinessImpact: finding.ImpactCritical},
	}
	findings := []finding.Finding{
		{
			ID: "f-database", Type: finding.TypeVulnerability,
			Title: "OpenSSL Heartbleed Vulnerability", Severity: finding.SeverityCritical,
			AssetID: "asset-db", CVSSScore: 9.8, EPSSScore: 0.9, KEVListed: true,
			CVEIDs: []string{"CVE-2014-0160"},
		},
	}

	batch, err := engine.ScoreFindings(context.Background(), findings, assets)
	if err != nil {
		panic(err)
	}
	for _, s := range batch.Scores {
		fmt.Printf("#%d %s score=%.3f tier=%s\n", s.Rank, s.FindingID, s.Score, s.Tier)
	}

	multi, err := engine.AnalyzeFrameworks(context.Background(), nil, nil)
	if err != nil {
		panic(err)
	}
	for _, report := range multi.Reports {
		fmt.Printf("%s score=%d\n", report.FrameworkID, report.ComplianceScore)
	}
	// Output:
	// #1 f-database score=0.875 tier=critical
	// fedramp score=100
	// hipaa score=100
	// iso_27001 score=100
	// nist_800_53 score=100
}
