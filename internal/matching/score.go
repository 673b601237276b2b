package matching

import (
	"github.com/jonathan/career-compass/internal/types"
)

// Scoring constants. Penalties and bonuses are flat addends on top of the
// skill match percentage; only the final total is clamped.
const (
	interestBonusPerMatch  = 15.0
	thresholdPenalty       = 10.0
	personalityBonusPoints = 5.0

	minScore = 0.0
	maxScore = 100.0
)

// Score computes the match between one catalog job and a user profile. It is
// a total function: a job with no required skills contributes a 0% skill
// match rather than an error, and the result never leaves [0,100].
func Score(job *types.JobProfile, user *types.UserProfile) types.MatchResult {
	matched, missing := partitionSkills(job.RequiredSkills, user.SelectedSkills)

	skillMatchPct := 0.0
	if len(job.RequiredSkills) > 0 {
		skillMatchPct = float64(len(matched)) / float64(len(job.RequiredSkills)) * 100
	}

	// Interest bonus is uncapped before the final clamp; every overlapping
	// interest counts.
	interestBonus := interestBonusPerMatch * float64(countOverlap(user.SelectedInterests, job.RequiredInterests))

	var mathPenalty, codePenalty float64
	if user.MathScore < job.MinMath {
		mathPenalty = thresholdPenalty
	}
	if user.CodeScore < job.MinCode {
		codePenalty = thresholdPenalty
	}

	// The bonus requires an exact match against a non-generic preference.
	// A user who declares "Ambivert/Any" never earns it.
	var personalityBonus float64
	if job.PreferredPersonality != types.PersonalityAny &&
		user.Personality != types.PersonalityAny &&
		user.Personality == job.PreferredPersonality {
		personalityBonus = personalityBonusPoints
	}

	total := skillMatchPct + interestBonus - mathPenalty - codePenalty + personalityBonus
	score := clamp(total, minScore, maxScore)

	return types.MatchResult{
		Job:           job,
		Score:         score,
		Label:         Label(score),
		MatchedSkills: matched,
		MissingSkills: missing,
		Breakdown: types.ScoreBreakdown{
			SkillMatchPct:    skillMatchPct,
			InterestBonus:    interestBonus,
			MathPenalty:      mathPenalty,
			CodePenalty:      codePenalty,
			PersonalityBonus: personalityBonus,
		},
	}
}

// Label buckets a final score for display: above 80 is high, above 50 is
// medium, everything else low.
func Label(score float64) types.MatchLabel {
	switch {
	case score > 80:
		return types.LabelHigh
	case score > 50:
		return types.LabelMedium
	default:
		return types.LabelLow
	}
}

// partitionSkills splits required skills into matched and missing, both in
// the job's original listing order. The two slices are disjoint and together
// cover every required skill.
func partitionSkills(required, selected []string) (matched, missing []string) {
	selectedSet := make(map[string]bool, len(selected))
	for _, skill := range selected {
		selectedSet[skill] = true
	}

	matched = make([]string, 0, len(required))
	missing = make([]string, 0)
	for _, skill := range required {
		if selectedSet[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

func countOverlap(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, s := range a {
		set[s] = true
	}

	count := 0
	for _, s := range b {
		if set[s] {
			count++
		}
	}
	return count
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
