// Package riskengine prioritizes security findings by composite risk and
// maps them to compliance framework controls for gap analysis.
//
// The package is organized around two core computations:
//
//   - Risk scoring: each finding receives a composite score in [0, 1] built
//     from weighted factors (CVSS, exploit prediction, asset criticality,
//     known-exploited status, business impact, compensating controls), a
//     priority tier, and a deterministic rank within its batch.
//
//   - Gap analysis: findings are mapped to framework controls through
//     rule-based predicates, producing a per-control compliance status, an
//     overall compliance score, and ordered remediation recommendations.
//
// The Engine type is the primary entry point and composes both computations
// behind a single facade:
//
//	engine := riskengine.New(riskengine.WithLogger(logger))
//
//	batch, err := engine.ScoreFindings(ctx, findings, assets)
//	if err != nil {
//	    return err
//	}
//
//	gap, err := engine.AnalyzeGaps(ctx, catalog.FrameworkNIST80053, findings)
//	if err != nil {
//	    return err
//	}
//
// Callers that need finer control can use the subpackages directly:
//
//   - finding: core finding and asset data model
//   - risk: composite scoring and batch ranking
//   - compliance: framework model, mapping rules, and gap analysis
//   - catalog: builtin framework catalogs and file-based catalog loading
//   - export: JSON and CSV report serialization
//
// All operations are deterministic: identical inputs produce identical
// scores, ranks, and gap reports regardless of parallelism.
package riskengine
