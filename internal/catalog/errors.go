// Package catalog loads and indexes the static career catalog.
package catalog

import "fmt"

// DataLoadError represents a missing or malformed catalog source. It is fatal
// for analysis: without a catalog there is nothing to score against.
type DataLoadError struct {
	Message string
	Cause   error
}

func (e *DataLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load failed: %s", e.Message)
}

func (e *DataLoadError) Unwrap() error {
	return e.Cause
}
