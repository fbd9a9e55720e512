// Package export serializes engine results for callers: ranked risk
// reports and gap-analysis reports as JSON or CSV. It is a reporting
// contract only; nothing here computes or renders beyond serialization.
package export
