package catalog

import (
	"github.com/vulnguard/riskengine/compliance"
	"github.com/vulnguard/riskengine/finding"
)

// Built-in framework identifiers.
const (
	// FrameworkNIST80053 is the NIST 800-53 Rev 5 control catalog subset.
	FrameworkNIST80053 = "nist_800_53"

	// FrameworkISO27001 is the ISO 27001 Annex A control catalog subset.
	FrameworkISO27001 = "iso_27001"

	// FrameworkHIPAA is the HIPAA Security Rule requirement subset.
	FrameworkHIPAA = "hipaa"

	// FrameworkFedRAMP is the FedRAMP control catalog subset, based on
	// NIST 800-53 with enhanced federal requirements.
	FrameworkFedRAMP = "fedramp"
)

// builtinFrameworks holds the reference catalogs. The data never changes at
// runtime; accessors return copies so callers cannot mutate it.
var builtinFrameworks = map[string]compliance.Framework{
	FrameworkNIST80053: {
		ID:   FrameworkNIST80053,
		Name: "NIST 800-53 Rev 5",
		Controls: []compliance.Control{
			{ID: "AC-2", Title: "Account Management", Family: "Access Control", Priority: compliance.PriorityHigh},
			{ID: "AC-3", Title: "Access Enforcement", Family: "Access Control", Priority: compliance.PriorityHigh},
			{ID: "AC-6", Title: "Least Privilege", Family: "Access Control", Priority: compliance.PriorityHigh},
			{ID: "AU-2", Title: "Event Logging", Family: "Audit and Accountability", Priority: compliance.PriorityMedium},
			{ID: "AU-6", Title: "Audit Record Review, Analysis, and Reporting", Family: "Audit and Accountability", Priority: compliance.PriorityMedium},
			{ID: "CM-2", Title: "Baseline Configuration", Family: "Configuration Management", Priority: compliance.PriorityMedium},
			{ID: "CM-3", Title: "Configuration Change Control", Family: "Configuration Management", Priority: compliance.PriorityMedium},
			{ID: "CM-6", Title: "Configuration Settings", Family: "Configuration Management", Priority: compliance.PriorityHigh},
			{ID: "IA-2", Title: "Identification and Authentication (Organizational Users)", Family: "Identification and Authentication", Priority: compliance.PriorityHigh},
			{ID: "IA-5", Title: "Authenticator Management", Family: "Identification and Authentication", Priority: compliance.PriorityHigh},
			{ID: "RA-5", Title: "Vulnerability Monitoring and Scanning", Family: "Risk Assessment", Priority: compliance.PriorityHigh},
			{ID: "SI-2", Title: "Flaw Remediation", Family: "System and Information Integrity", Priority: compliance.PriorityCritical},
			{ID: "SI-4", Title: "System Monitoring", Family: "System and Information Integrity", Priority: compliance.PriorityHigh},
		},
	},
	FrameworkISO27001: {
		ID:   FrameworkISO27001,
		Name: "ISO 27001:2022",
		Controls: []compliance.Control{
			{ID: "A.8.2", Title: "Privileged access rights", Family: "Access Management", Priority: compliance.PriorityHigh},
			{ID: "A.8.8", Title: "Management of privileged access rights", Family: "Access Management", Priority: compliance.PriorityHigh},
			{ID: "A.9.1", Title: "Business requirements of access control", Family: "Access Management", Priority: compliance.PriorityHigh},
			{ID: "A.9.2", Title: "User access management", Family: "Access Management", Priority: compliance.PriorityHigh},
			{ID: "A.12.1", Title: "Operational procedures and responsibilities", Family: "Operations Security", Priority: compliance.PriorityMedium},
			{ID: "A.12.4", Title: "Logging and monitoring", Family: "Operations Security", Priority: compliance.PriorityMedium},
			{ID: "A.12.5", Title: "Control of operational software", Family: "Operations Security", Priority: compliance.PriorityMedium},
			{ID: "A.12.6", Title: "Management of technical vulnerabilities", Family: "Operations Security", Priority: compliance.PriorityCritical},
			{ID: "A.14.2", Title: "Security in development and support processes", Family: "System Acquisition", Priority: compliance.PriorityHigh},
		},
	},
	FrameworkHIPAA: {
		ID:   FrameworkHIPAA,
		Name: "HIPAA Security Rule",
		Controls: []compliance.Control{
			{ID: "164.308(a)(1)", Title: "Security Officer", Family: "Administrative Safeguards", Priority: compliance.PriorityHigh},
			{ID: "164.308(a)(3)", Title: "Workforce Security", Family: "Administrative Safeguards", Priority: compliance.PriorityHigh},
			{ID: "164.308(a)(5)", Title: "Information System Activity Review", Family: "Administrative Safeguards", Priority: compliance.PriorityHigh},
			{ID: "164.312(a)(1)", Title: "Access Control", Family: "Technical Safeguards", Priority: compliance.PriorityHigh},
			{ID: "164.312(a)(2)", Title: "Assigned Security Responsibility", Family: "Technical Safeguards", Priority: compliance.PriorityHigh},
			{ID: "164.312(b)", Title: "Audit Controls", Family: "Technical Safeguards", Priority: compliance.PriorityMedium},
			{ID: "164.312(d)", Title: "Person or Entity Authentication", Family: "Technical Safeguards", Priority: compliance.PriorityHigh},
		},
	},
	FrameworkFedRAMP: {
		ID:   FrameworkFedRAMP,
		Name: "FedRAMP Moderate",
		Controls: []compliance.Control{
			{ID: "AC-2", Title: "Account Management", Family: "Access Control", Priority: compliance.PriorityCritical},
			{ID: "IA-2", Title: "Identification and Authentication (Organizational Users)", Family: "Identification and Authentication", Priority: compliance.PriorityCritical},
			{ID: "RA-5", Title: "Vulnerability Monitoring and Scanning", Family: "Risk Assessment", Priority: compliance.PriorityHigh},
			{ID: "SI-2", Title: "Flaw Remediation", Family: "System and Information Integrity", Priority: compliance.PriorityCritical},
		},
	},
}

// Tag values the default mapping table keys on. The scan-ingestion pipeline
// labels findings with these family tags.
const (
	// TagAuthentication marks findings in the authentication family.
	TagAuthentication = "family=authentication"

	// TagPrivileges marks findings in the privileged-access family.
	TagPrivileges = "family=privileges"

	// TagLogging marks findings in the logging and monitoring family.
	TagLogging = "family=logging"
)

// builtinRules is the default finding-to-control mapping table per
// framework: vulnerabilities with CVEs map to flaw-remediation controls,
// authentication misconfigurations to identity controls, general
// misconfigurations to configuration-management controls, privilege policy
// violations to least-privilege controls, and logging compliance gaps to
// audit controls.
var builtinRules = map[string][]compliance.MappingRule{
	FrameworkNIST80053: {
		{ControlID: "IA-2", FindingType: finding.TypeMisconfiguration, Expression: authPredicate, Relevance: 0.95},
		{ControlID: "IA-5", FindingType: finding.TypeMisconfiguration, Expression: authPredicate, Relevance: 0.9},
		{ControlID: "AC-2", FindingType: finding.TypeMisconfiguration, Expression: authPredicate, Relevance: 0.9},
		{ControlID: "AC-3", FindingType: finding.TypeMisconfiguration, Expression: authPredicate, Relevance: 0.8},
		{ControlID: "SI-2", FindingType: finding.TypeVulnerability, Expression: cvePredicate, Relevance: 0.95},
		{ControlID: "RA-5", FindingType: finding.TypeVulnerability, Relevance: 0.9},
		{ControlID: "CM-3", FindingType: finding.TypeVulnerability, Expression: cvePredicate, Relevance: 0.8},
		{ControlID: "CM-6", FindingType: finding.TypeMisconfiguration, Relevance: 0.95},
		{ControlID: "CM-2", FindingType: finding.TypeMisconfiguration, Relevance: 0.9},
		{ControlID: "SI-4", FindingType: finding.TypeMisconfiguration, Relevance: 0.8},
		{ControlID: "AC-6", FindingType: finding.TypePolicyViolation, Expression: privilegePredicate, Relevance: 0.95},
		{ControlID: "AC-2", FindingType: finding.TypePolicyViolation, Expression: privilegePredicate, Relevance: 0.8},
		{ControlID: "AU-6", FindingType: finding.TypeCompliance, Expression: loggingPredicate, Relevance: 0.95},
		{ControlID: "AU-2", FindingType: finding.TypeCompliance, Expression: loggingPredicate, Relevance: 0.9},
		{ControlID: "SI-4", FindingType: finding.TypeCompliance, Expression: loggingPredicate, Relevance: 0.9},
	},
	FrameworkISO27001: {
		{ControlID: "A.8.2", FindingType: finding.TypeMisconfiguration, Expression: authPredicate, Relevance: 0.9},
		{ControlID: "A.9.1", FindingType: finding.TypeMisconfiguration, Expression: authPredicate, Relevance: 0.85},
		{ControlID: "A.9.2", FindingType: finding.TypeMisconfiguration, Expression: authPredicate, Relevance: 0.9},
		{ControlID: "A.12.6", FindingType: finding.TypeVulnerability, Relevance: 0.95},
		{ControlID: "A.14.2", FindingType: finding.TypeVulnerability, Expression: cvePredicate, Relevance: 0.85},
		{ControlID: "A.12.1", FindingType: finding.TypeMisconfiguration, Relevance: 0.9},
		{ControlID: "A.12.5", FindingType: finding.TypeMisconfiguration, Relevance: 0.85},
		{ControlID: "A.8.2", FindingType: finding.TypePolicyViolation, Expression: privilegePredicate, Relevance: 0.95},
		{ControlID: "A.8.8", FindingType: finding.TypePolicyViolation, Expression: privilegePredicate, Relevance: 0.9},
		{ControlID: "A.12.4", FindingType: finding.TypeCompliance, Expression: loggingPredicate, Relevance: 0.9},
	},
	FrameworkHIPAA: {
		{ControlID: "164.312(a)(2)", FindingType: finding.TypeMisconfiguration, Expression: authPredicate, Relevance: 0.95},
		{ControlID: "164.312(d)", FindingType: finding.TypeMisconfiguration, Expression: authPredicate, Relevance: 0.9},
		{ControlID: "164.308(a)(3)", FindingType: finding.TypePolicyViolation, Expression: privilegePredicate, Relevance: 0.9},
		{ControlID: "164.312(a)(1)", FindingType: finding.TypeMisconfiguration, Relevance: 0.8},
		{ControlID: "164.308(a)(5)", FindingType: finding.TypeCompliance, Expression: loggingPredicate, Relevance: 0.95},
		{ControlID: "164.312(b)", FindingType: finding.TypeCompliance, Expression: loggingPredicate, Relevance: 0.8},
	},
	FrameworkFedRAMP: {
		{ControlID: "AC-2", FindingType: finding.TypeMisconfiguration, Expression: authPredicate, Relevance: 0.95},
		{ControlID: "IA-2", FindingType: finding.TypeMisconfiguration, Expression: authPredicate, Relevance: 0.9},
		{ControlID: "SI-2", FindingType: finding.TypeVulnerability, Relevance: 0.98},
		{ControlID: "RA-5", FindingType: finding.TypeVulnerability, Relevance: 0.9},
	},
}

// Shared rule predicates over finding attributes.
const (
	authPredicate      = `"` + TagAuthentication + `" in tags`
	privilegePredicate = `"` + TagPrivileges + `" in tags`
	loggingPredicate   = `"` + TagLogging + `" in tags`
	cvePredicate       = `cve_count > 0`
)

// Framework returns a copy of the built-in catalog for the given framework
// identifier. Returns an *compliance.InvalidFrameworkError for unknown
// identifiers.
func Framework(id string) (compliance.Framework, error) {
	fw, ok := builtinFrameworks[id]
	if !ok {
		return compliance.Framework{}, &compliance.InvalidFrameworkError{
			FrameworkID: id,
			Reason:      "unknown framework",
		}
	}
	out := fw
	out.Controls = make([]compliance.Control, len(fw.Controls))
	copy(out.Controls, fw.Controls)
	return out, nil
}

// FrameworkIDs returns the built-in framework identifiers in ascending order.
func FrameworkIDs() []string {
	return []string{FrameworkFedRAMP, FrameworkHIPAA, FrameworkISO27001, FrameworkNIST80053}
}

// DefaultRules returns a copy of the built-in mapping table for the given
// framework identifier. Returns an *compliance.InvalidFrameworkError for
// unknown identifiers.
func DefaultRules(id string) ([]compliance.MappingRule, error) {
	rules, ok := builtinRules[id]
	if !ok {
		return nil, &compliance.InvalidFrameworkError{
			FrameworkID: id,
			Reason:      "unknown framework",
		}
	}
	out := make([]compliance.MappingRule, len(rules))
	copy(out, rules)
	return out, nil
}

// NewMapper builds a gap-analysis mapper for a built-in framework and its
// default mapping table.
func NewMapper(id string) (*compliance.Mapper, error) {
	fw, err := Framework(id)
	if err != nil {
		return nil, err
	}
	rules, err := DefaultRules(id)
	if err != nil {
		return nil, err
	}
	rs, err := compliance.NewRuleSet(rules)
	if err != nil {
		return nil, err
	}
	return compliance.NewMapper(fw, rs)
}
