package compliance

import (
	"fmt"
	"reflect"

	"github.com/google/cel-go/cel"

	"github.com/vulnguard/riskengine/finding"
)

// MappingRule associates findings with a control. A rule matches on the
// finding type, optionally narrowed by a CEL predicate over the finding's
// attributes.
type MappingRule struct {
	// ControlID is the control findings matching this rule map to.
	ControlID string `json:"control_id" yaml:"control_id"`

	// FindingType is the finding type the rule applies to.
	FindingType finding.Type `json:"finding_type" yaml:"finding_type"`

	// Expression is an optional CEL predicate evaluated against the
	// finding's attributes, e.g.
	//
	//	severity in ["critical", "high"] && "family=encryption" in tags
	//
	// An empty expression matches every finding of the rule's type.
	Expression string `json:"expression,omitempty" yaml:"expression,omitempty"`

	// Relevance records how strongly the rule's source material ties the
	// finding type to the control (0.0 to 1.0). Carried as metadata for
	// reporting; it does not affect status aggregation.
	Relevance float64 `json:"relevance,omitempty" yaml:"relevance,omitempty"`
}

// Validate checks the rule's static fields. Expression compilation is
// handled by NewRuleSet.
func (r *MappingRule) Validate() error {
	if r.ControlID == "" {
		return fmt.Errorf("mapping rule: control ID is required")
	}
	if !r.FindingType.IsValid() {
		return fmt.Errorf("mapping rule for %s: invalid finding type: %s", r.ControlID, r.FindingType)
	}
	if r.Relevance < 0.0 || r.Relevance > 1.0 {
		return fmt.Errorf("mapping rule for %s: relevance must be between 0.0 and 1.0, got %f", r.ControlID, r.Relevance)
	}
	return nil
}

// celEnv declares the finding attributes visible to rule expressions.
func celEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("finding_type", cel.StringType),
		cel.Variable("severity", cel.StringType),
		cel.Variable("title", cel.StringType),
		cel.Variable("cvss_score", cel.DoubleType),
		cel.Variable("epss_score", cel.DoubleType),
		cel.Variable("kev_listed", cel.BoolType),
		cel.Variable("cve_count", cel.IntType),
		cel.Variable("cross_host", cel.BoolType),
		cel.Variable("compensating_controls", cel.IntType),
		cel.Variable("tags", cel.ListType(cel.StringType)),
		cel.Variable("affected_hosts", cel.ListType(cel.StringType)),
	)
}

// activation builds the CEL evaluation input for a finding.
func activation(f *finding.Finding) map[string]any {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	hosts := f.AffectedHosts
	if hosts == nil {
		hosts = []string{}
	}
	return map[string]any{
		"finding_type":          f.Type.String(),
		"severity":              f.Severity.String(),
		"title":                 f.Title,
		"cvss_score":            f.CVSSScore,
		"epss_score":            f.EPSSScore,
		"kev_listed":            f.KEVListed,
		"cve_count":             int64(len(f.CVEIDs)),
		"cross_host":            f.CrossHost(),
		"compensating_controls": int64(f.CompensatingControls),
		"tags":                  tags,
		"affected_hosts":        hosts,
	}
}

// compiledRule pairs a rule with its compiled predicate program.
// A nil program means the rule matches on finding type alone.
type compiledRule struct {
	rule    MappingRule
	program cel.Program
}

// RuleSet is a validated, compiled finding-to-control mapping table.
// Expressions are compiled and type-checked once at construction, so
// evaluation over a finding snapshot cannot hit a syntax error.
type RuleSet struct {
	rules []compiledRule
}

// NewRuleSet validates the rules and compiles their predicate expressions.
// Returns an error naming the offending rule if any expression fails to
// compile or does not evaluate to a boolean.
func NewRuleSet(rules []MappingRule) (*RuleSet, error) {
	env, err := celEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to build rule environment: %w", err)
	}

	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		cr := compiledRule{rule: r}
		if r.Expression != "" {
			ast, issues := env.Compile(r.Expression)
			if issues != nil && issues.Err() != nil {
				return nil, fmt.Errorf("rule %d for %s: invalid expression: %w", i, r.ControlID, issues.Err())
			}
			if !reflect.DeepEqual(ast.OutputType(), cel.BoolType) {
				return nil, fmt.Errorf("rule %d for %s: expression must evaluate to bool, got %s", i, r.ControlID, ast.OutputType())
			}
			program, err := env.Program(ast)
			if err != nil {
				return nil, fmt.Errorf("rule %d for %s: failed to build program: %w", i, r.ControlID, err)
			}
			cr.program = program
		}
		compiled = append(compiled, cr)
	}
	return &RuleSet{rules: compiled}, nil
}

// Rules returns the rules in the set, in their original order.
func (rs *RuleSet) Rules() []MappingRule {
	out := make([]MappingRule, len(rs.rules))
	for i := range rs.rules {
		out[i] = rs.rules[i].rule
	}
	return out
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// ControlsFor evaluates the rule set against a finding and returns the
// distinct control identifiers it maps to, in rule order. A finding may map
// to multiple controls; an unmapped finding returns an empty slice.
func (rs *RuleSet) ControlsFor(f *finding.Finding) ([]string, error) {
	var controls []string
	seen := make(map[string]bool)

	input := activation(f)
	for i := range rs.rules {
		cr := &rs.rules[i]
		if cr.rule.FindingType != f.Type {
			continue
		}
		if cr.program != nil {
			out, _, err := cr.program.Eval(input)
			if err != nil {
				return nil, fmt.Errorf("rule for %s: evaluating expression against finding %s: %w",
					cr.rule.ControlID, f.ID, err)
			}
			matched, ok := out.Value().(bool)
			if !ok || !matched {
				continue
			}
		}
		if !seen[cr.rule.ControlID] {
			seen[cr.rule.ControlID] = true
			controls = append(controls, cr.rule.ControlID)
		}
	}
	return controls, nil
}
