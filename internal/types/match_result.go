package types

// MatchLabel buckets a final score for display.
type MatchLabel string

const (
	// LabelHigh is a score above 80
	LabelHigh MatchLabel = "high"
	// LabelMedium is a score above 50
	LabelMedium MatchLabel = "medium"
	// LabelLow is everything else
	LabelLow MatchLabel = "low"
)

// ScoreBreakdown holds the individual components that produced a final score,
// retained for transparency and testing.
type ScoreBreakdown struct {
	SkillMatchPct    float64 `json:"skill_match_pct"`
	InterestBonus    float64 `json:"interest_bonus"`
	MathPenalty      float64 `json:"math_penalty"`
	CodePenalty      float64 `json:"code_penalty"`
	PersonalityBonus float64 `json:"personality_bonus"`
}

// MatchResult is the per-job outcome of scoring one user profile. MatchedSkills
// and MissingSkills partition the job's required skills in catalog listing
// order. The full missing list is returned; truncation for display ("first 3")
// is the caller's concern, since other consumers (e.g. a learning roadmap)
// need the whole list.
type MatchResult struct {
	Job           *JobProfile    `json:"job"`
	Score         float64        `json:"score"` // clamped to [0,100]
	Label         MatchLabel     `json:"label"`
	MatchedSkills []string       `json:"matched_skills"`
	MissingSkills []string       `json:"missing_skills"`
	Breakdown     ScoreBreakdown `json:"breakdown"`
}
