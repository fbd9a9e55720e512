package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/vulnguard/riskengine/compliance"
	"github.com/vulnguard/riskengine/risk"
)

// Format represents the serialization format for exported reports.
type Format string

const (
	// FormatJSON exports reports as indented JSON.
	FormatJSON Format = "json"

	// FormatCSV exports reports as comma-separated values.
	FormatCSV Format = "csv"
)

// IsValid returns true if the export format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatCSV:
		return true
	default:
		return false
	}
}

// String returns the string representation of the export format.
func (f Format) String() string {
	return string(f)
}

// FileExtension returns the file extension for the export format.
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatCSV:
		return ".csv"
	default:
		return ""
	}
}

// MimeType returns the MIME type for the export format.
func (f Format) MimeType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}

// WriteRiskReport serializes a batch scoring result to the writer in the
// given format. The CSV form emits one row per ranked score followed by one
// row per failure; the JSON form is the result marshaled as-is.
func WriteRiskReport(w io.Writer, result risk.BatchResult, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatCSV:
		return writeRiskCSV(w, result)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// WriteGapReport serializes a gap-analysis result to the writer in the
// given format. The CSV form emits one row per control in the catalog.
func WriteGapReport(w io.Writer, result *compliance.GapAnalysisResult, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatCSV:
		return writeGapCSV(w, result)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

func writeRiskCSV(w io.Writer, result risk.BatchResult) error {
	cw := csv.NewWriter(w)

	header := []string{"rank", "finding_id", "risk_score", "priority_tier", "status"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, s := range result.Scores {
		row := []string{
			strconv.Itoa(s.Rank),
			s.FindingID,
			strconv.FormatFloat(s.Score, 'f', 4, 64),
			s.Tier.String(),
			"scored",
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	for _, f := range result.Failures {
		row := []string{"", f.FindingID, "", "", f.Reason}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeGapCSV(w io.Writer, result *compliance.GapAnalysisResult) error {
	cw := csv.NewWriter(w)

	header := []string{"framework_id", "control_id", "control_title", "control_family", "status", "findings_count", "critical_findings"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, controlID := range sortedControlIDs(result.ControlDetails) {
		d := result.ControlDetails[controlID]
		row := []string{
			result.FrameworkID,
			controlID,
			d.ControlTitle,
			d.ControlFamily,
			d.Status.String(),
			strconv.Itoa(d.FindingsCount),
			strconv.Itoa(d.CriticalFindings),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
