// Package catalog supplies compliance framework reference data: built-in
// control catalog subsets for NIST 800-53, ISO 27001, HIPAA, and FedRAMP
// with their default finding-to-control mapping tables, plus a loader for
// custom catalogs maintained as YAML or JSON files.
//
// Built-in data is static; accessors return copies. Loaded catalogs are
// fully validated at load time, including compilation of every mapping rule
// expression, so a bad table fails before any analysis runs.
//
// Example usage:
//
//	mapper, err := catalog.NewMapper(catalog.FrameworkNIST80053)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := mapper.Analyze(findings)
package catalog
