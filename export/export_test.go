package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnguard/riskengine/compliance"
	"github.com/vulnguard/riskengine/risk"
)

func sampleBatch() risk.BatchResult {
	return risk.BatchResult{
		Scores: []risk.RiskScore{
			{FindingID: "f-1", Score: 0.875, Tier: risk.TierCritical, Rank: 1},
			{FindingID: "f-2", Score: 0.42, Tier: risk.TierMedium, Rank: 2},
		},
		Failures: []risk.Failure{
			{FindingID: "f-3", Reason: "finding f-3 references unresolvable asset a-9"},
		},
	}
}

func sampleGap() *compliance.GapAnalysisResult {
	return &compliance.GapAnalysisResult{
		FrameworkID:          "nist_800_53",
		ComplianceScore:      50,
		CompliantControls:    1,
		NonCompliantControls: 1,
		ControlDetails: map[string]compliance.ControlDetail{
			"SI-2": {Status: compliance.StatusNonCompliant, FindingsCount: 3, CriticalFindings: 2, ControlTitle: "Flaw Remediation", ControlFamily: "System and Information Integrity"},
			"AC-2": {Status: compliance.StatusCompliant, ControlTitle: "Account Management", ControlFamily: "Access Control"},
		},
		Recommendations: []string{"Remediate 2 critical findings mapped to SI-2: Flaw Remediation"},
	}
}

func TestFormat(t *testing.T) {
	assert.True(t, FormatJSON.IsValid())
	assert.True(t, FormatCSV.IsValid())
	assert.False(t, Format("xml").IsValid())
	assert.Equal(t, ".json", FormatJSON.FileExtension())
	assert.Equal(t, ".csv", FormatCSV.FileExtension())
	assert.Equal(t, "application/json", FormatJSON.MimeType())
	assert.Equal(t, "text/csv", FormatCSV.MimeType())
}

func TestWriteRiskReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRiskReport(&buf, sampleBatch(), FormatJSON))

	var decoded risk.BatchResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Scores, 2)
	assert.Equal(t, "f-1", decoded.Scores[0].FindingID)
	assert.Equal(t, risk.TierCritical, decoded.Scores[0].Tier)
	require.Len(t, decoded.Failures, 1)
	assert.Contains(t, decoded.Failures[0].Reason, "unresolvable asset")
}

func TestWriteRiskReport_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRiskReport(&buf, sampleBatch(), FormatCSV))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "rank,finding_id,risk_score,priority_tier,status", lines[0])
	assert.Equal(t, "1,f-1,0.8750,critical,scored", lines[1])
	assert.Contains(t, lines[3], "f-3")
	assert.Contains(t, lines[3], "unresolvable asset")
}

func TestWriteRiskReport_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRiskReport(&buf, sampleBatch(), Format("xml"))
	require.Error(t, err)
}

func TestWriteGapReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGapReport(&buf, sampleGap(), FormatJSON))

	var decoded compliance.GapAnalysisResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 50, decoded.ComplianceScore)
	assert.Equal(t, compliance.StatusNonCompliant, decoded.ControlDetails["SI-2"].Status)
}

func TestWriteGapReport_CSV_StableOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGapReport(&buf, sampleGap(), FormatCSV))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	// Controls sort by ID regardless of map iteration order.
	assert.True(t, strings.HasPrefix(lines[1], "nist_800_53,AC-2"))
	assert.True(t, strings.HasPrefix(lines[2], "nist_800_53,SI-2"))
	assert.Contains(t, lines[2], "non_compliant,3,2")
}
