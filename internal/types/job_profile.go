// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Personality is a closed enumeration of personality types. A typed constant
// set instead of free-text comparison means a typo fails at parse time rather
// than silently never matching.
type Personality string

const (
	// PersonalityIntrovert prefers independent, focused work
	PersonalityIntrovert Personality = "Introvert"
	// PersonalityExtrovert prefers people-facing, collaborative work
	PersonalityExtrovert Personality = "Extrovert"
	// PersonalityAny is the neutral option ("Ambivert/Any" in the catalog);
	// it never participates in the personality bonus
	PersonalityAny Personality = "Ambivert/Any"
)

// ParsePersonality converts a catalog or user-supplied label into a Personality.
// Accepts the exact constant labels plus the bare "Ambivert"/"Any" shorthands.
func ParsePersonality(s string) (Personality, error) {
	switch s {
	case string(PersonalityIntrovert):
		return PersonalityIntrovert, nil
	case string(PersonalityExtrovert):
		return PersonalityExtrovert, nil
	case string(PersonalityAny), "Ambivert", "Any":
		return PersonalityAny, nil
	default:
		return "", fmt.Errorf("unknown personality %q", s)
	}
}

// JobProfile represents one row of the career catalog. Rows are loaded once
// and never mutated afterwards; per-request scores live on MatchResult, never
// written back here, so concurrent analyses share the catalog safely.
type JobProfile struct {
	Title                string      `json:"title"`
	RequiredSkills       []string    `json:"required_skills"` // catalog listing order
	RequiredInterests    []string    `json:"required_interests"`
	MinMath              int         `json:"min_math"`
	MinCode              int         `json:"min_code"`
	PreferredPersonality Personality `json:"preferred_personality"`
	SalaryRange          string      `json:"salary_range"`
	DemandTrend          string      `json:"demand_trend"`
}
