package matching

import (
	"sort"

	"github.com/jonathan/career-compass/internal/types"
)

// DefaultTopN is the number of matches returned when the caller does not ask
// for a specific count.
const DefaultTopN = 3

// Rank scores every catalog job against the user profile and returns the top
// N results ordered by score descending. Ties keep the catalog's original
// order (stable sort). An empty skill selection is rejected before any job is
// scored.
func Rank(jobs []types.JobProfile, user *types.UserProfile, topN int) ([]types.MatchResult, error) {
	if len(user.SelectedSkills) == 0 {
		return nil, &EmptySelectionError{}
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	results := make([]types.MatchResult, 0, len(jobs))
	for i := range jobs {
		results = append(results, Score(&jobs[i], user))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topN > len(results) {
		topN = len(results)
	}
	return results[:topN], nil
}
