// Package matching scores a user profile against the career catalog and ranks
// the results.
package matching

// EmptySelectionError indicates the user selected no skills before requesting
// an analysis. It is raised as a precondition, before any job is scored; the
// caller prompts the user rather than presenting a near-zero ranking.
type EmptySelectionError struct{}

func (e *EmptySelectionError) Error() string {
	return "no skills selected: at least one skill is required before analysis"
}
