package risk

import "fmt"

// UnresolvedAssetError indicates a finding references an asset the caller's
// resolver could not supply. Asset criticality is a mandatory scoring
// factor, so the finding cannot be scored; the error is reported per
// finding and does not abort a batch.
type UnresolvedAssetError struct {
	// FindingID is the finding that could not be scored.
	FindingID string

	// AssetID is the asset reference that failed to resolve.
	AssetID string
}

// Error implements the error interface.
func (e *UnresolvedAssetError) Error() string {
	return fmt.Sprintf("finding %s references unresolvable asset %s", e.FindingID, e.AssetID)
}

// MalformedFindingError indicates a finding failed validation and was
// excluded from scoring. The error is reported per finding and does not
// abort a batch.
type MalformedFindingError struct {
	// FindingID is the offending finding. May be empty if the identifier
	// itself is missing.
	FindingID string

	// Err is the underlying validation failure.
	Err error
}

// Error implements the error interface.
func (e *MalformedFindingError) Error() string {
	return fmt.Sprintf("malformed finding %q: %v", e.FindingID, e.Err)
}

// Unwrap returns the underlying validation error.
func (e *MalformedFindingError) Unwrap() error {
	return e.Err
}
