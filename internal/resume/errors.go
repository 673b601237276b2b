// Package resume extracts plain text from uploaded resume documents and scans
// it for known skills.
package resume

import "fmt"

// DocumentParseError represents an unreadable upload. It is recoverable: the
// caller surfaces it and falls back to manual skill entry instead of aborting
// the analysis.
type DocumentParseError struct {
	Message string
	Cause   error
}

func (e *DocumentParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document parse failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("document parse failed: %s", e.Message)
}

func (e *DocumentParseError) Unwrap() error {
	return e.Cause
}
