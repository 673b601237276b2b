package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/resume"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// An unreadable upload maps to 422 so clients can fall back to manual skill
// entry; an empty skill selection is a plain client error.
func HTTPStatus(err error) int {
	var (
		loadErr      *catalog.DataLoadError
		parseErr     *resume.DocumentParseError
		selectionErr *matching.EmptySelectionError
	)
	switch {
	case errors.As(err, &selectionErr):
		return http.StatusBadRequest
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &loadErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
