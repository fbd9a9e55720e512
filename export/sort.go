package export

import (
	"sort"

	"github.com/vulnguard/riskengine/compliance"
)

// sortedControlIDs returns the control IDs of a detail map in ascending
// order, so CSV output is stable across runs.
func sortedControlIDs(details map[string]compliance.ControlDetail) []string {
	ids := make([]string, 0, len(details))
	for id := range details {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
