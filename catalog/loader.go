package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vulnguard/riskengine/compliance"
)

// File is the on-disk form of a framework catalog and its mapping table.
// Catalogs are typically maintained as YAML:
//
//	framework:
//	  id: cis_v8
//	  name: CIS Controls v8
//	  controls:
//	    - control_id: "4.1"
//	      title: Establish and Maintain a Secure Configuration Process
//	      family: Secure Configuration
//	      priority: high
//	rules:
//	  - control_id: "4.1"
//	    finding_type: misconfiguration
type File struct {
	// Framework is the control catalog.
	Framework compliance.Framework `json:"framework" yaml:"framework"`

	// Rules is the finding-to-control mapping table for the framework.
	Rules []compliance.MappingRule `json:"rules" yaml:"rules"`
}

// Load reads a framework catalog file and validates it. The format is
// detected by file extension (.json, .yaml, .yml). Validation covers the
// framework structure, rule fields, rule expression compilation, and that
// every rule references a control the framework defines.
func Load(path string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("catalog file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	ext := filepath.Ext(path)
	var file File

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse JSON catalog: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s (supported: .json, .yaml, .yml)", ext)
	}

	// Building a mapper performs the full cross-validation; discard it and
	// keep the raw data so callers can inspect or extend it.
	if _, err := file.Mapper(); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	return &file, nil
}

// Mapper compiles the file's mapping table and pairs it with the framework.
func (f *File) Mapper() (*compliance.Mapper, error) {
	rs, err := compliance.NewRuleSet(f.Rules)
	if err != nil {
		return nil, err
	}
	return compliance.NewMapper(f.Framework, rs)
}
