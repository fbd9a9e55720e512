package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalogYAML = `
framework:
  id: cis_v8
  name: CIS Controls v8
  controls:
    - control_id: "4.1"
      title: Establish and Maintain a Secure Configuration Process
      family: Secure Configuration
      priority: high
    - control_id: "7.1"
      title: Establish and Maintain a Vulnerability Management Process
      family: Vulnerability Management
      priority: critical
rules:
  - control_id: "4.1"
    finding_type: misconfiguration
  - control_id: "7.1"
    finding_type: vulnerability
    expression: 'cve_count > 0'
    relevance: 0.9
`

const validCatalogJSON = `{
  "framework": {
    "id": "cis_v8",
    "name": "CIS Controls v8",
    "controls": [
      {"control_id": "4.1", "title": "Secure Configuration Process", "family": "Secure Configuration", "priority": "high"}
    ]
  },
  "rules": [
    {"control_id": "4.1", "finding_type": "misconfiguration"}
  ]
}`

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeCatalog(t, "cis.yaml", validCatalogYAML)

	file, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cis_v8", file.Framework.ID)
	assert.Len(t, file.Framework.Controls, 2)
	assert.Len(t, file.Rules, 2)
	assert.Equal(t, 0.9, file.Rules[1].Relevance)

	mapper, err := file.Mapper()
	require.NoError(t, err)
	assert.Equal(t, "cis_v8", mapper.Framework().ID)
}

func TestLoad_JSON(t *testing.T) {
	path := writeCatalog(t, "cis.json", validCatalogJSON)

	file, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cis_v8", file.Framework.ID)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{
			name:    "missing file",
			wantErr: "catalog file not found",
		},
		{
			name:    "unsupported extension",
			file:    "catalog.toml",
			content: "x = 1",
			wantErr: "unsupported catalog format",
		},
		{
			name:    "malformed yaml",
			file:    "bad.yaml",
			content: "framework: [",
			wantErr: "failed to parse YAML catalog",
		},
		{
			name: "framework with no controls",
			file: "empty.yaml",
			content: `
framework:
  id: empty_fw
  name: Empty
rules: []
`,
			wantErr: "catalog validation failed",
		},
		{
			name: "rule references unknown control",
			file: "dangling.yaml",
			content: `
framework:
  id: fw
  name: FW
  controls:
    - control_id: "1.1"
      title: Control
      family: F
      priority: low
rules:
  - control_id: "9.9"
    finding_type: vulnerability
`,
			wantErr: "unknown control 9.9",
		},
		{
			name: "rule expression does not compile",
			file: "badexpr.yaml",
			content: `
framework:
  id: fw
  name: FW
  controls:
    - control_id: "1.1"
      title: Control
      family: F
      priority: low
rules:
  - control_id: "1.1"
    finding_type: vulnerability
    expression: 'cvss_score >'
`,
			wantErr: "invalid expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nope.yaml")
			if tt.file != "" {
				path = writeCatalog(t, tt.file, tt.content)
			}
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
