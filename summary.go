package riskengine

import (
	"math"
	"sort"

	"github.com/vulnguard/riskengine/finding"
	"github.com/vulnguard/riskengine/risk"
)

// topCVELimit caps the number of CVE entries reported in a summary.
const topCVELimit = 5

// CVECount pairs a CVE identifier with the number of findings referencing it.
type CVECount struct {
	// CVE is the CVE identifier (e.g., "CVE-2024-1234").
	CVE string `json:"cve"`

	// Count is the number of findings referencing the CVE.
	Count int `json:"count"`
}

// Summary holds dashboard-level aggregates over a scored batch.
type Summary struct {
	// TotalFindings is the number of findings in the batch, scored or not.
	TotalFindings int `json:"total_findings"`

	// Scored is the number of findings that received a risk score.
	Scored int `json:"scored"`

	// Failed is the number of findings excluded from scoring.
	Failed int `json:"failed"`

	// ByTier counts scored findings per priority tier.
	ByTier map[risk.PriorityTier]int `json:"by_tier"`

	// BySeverity counts all findings per severity.
	BySeverity map[finding.Severity]int `json:"by_severity"`

	// KEVCount is the number of findings on a known-exploited list.
	KEVCount int `json:"kev_count"`

	// MeanScore is the arithmetic mean of the scored risk scores, rounded
	// to four decimal places. Zero when nothing scored.
	MeanScore float64 `json:"mean_score"`

	// TopCVEs lists the most referenced CVEs, most frequent first, ties
	// broken by CVE ID ascending.
	TopCVEs []CVECount `json:"top_cves,omitempty"`
}

// Summarize computes dashboard aggregates from a batch scoring result and
// the findings it was computed from. The same inputs always produce the
// same summary.
func Summarize(result risk.BatchResult, findings []finding.Finding) Summary {
	s := Summary{
		TotalFindings: len(findings),
		Scored:        len(result.Scores),
		Failed:        len(result.Failures),
		ByTier:        make(map[risk.PriorityTier]int),
		BySeverity:    make(map[finding.Severity]int),
	}

	var total float64
	for _, score := range result.Scores {
		s.ByTier[score.Tier]++
		total += score.Score
	}
	if len(result.Scores) > 0 {
		s.MeanScore = math.Round(total/float64(len(result.Scores))*10000) / 10000
	}

	cveCounts := make(map[string]int)
	for i := range findings {
		s.BySeverity[findings[i].Severity]++
		if findings[i].KEVListed {
			s.KEVCount++
		}
		for _, cve := range findings[i].CVEIDs {
			cveCounts[cve]++
		}
	}
	s.TopCVEs = topCVEs(cveCounts)

	return s
}

// topCVEs ranks CVEs by reference count descending, CVE ID ascending on
// ties, truncated to topCVELimit entries.
func topCVEs(counts map[string]int) []CVECount {
	if len(counts) == 0 {
		return nil
	}

	out := make([]CVECount, 0, len(counts))
	for cve, n := range counts {
		out = append(out, CVECount{CVE: cve, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].CVE < out[j].CVE
	})

	if len(out) > topCVELimit {
		out = out[:topCVELimit]
	}
	return out
}
