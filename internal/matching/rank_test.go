package matching

import (
	"errors"
	"testing"

	"github.com/jonathan/career-compass/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []types.JobProfile {
	return []types.JobProfile{
		{
			Title:                "Data Scientist",
			RequiredSkills:       []string{"Python", "SQL", "Statistics"},
			RequiredInterests:    []string{"Data", "AI"},
			MinMath:              70,
			MinCode:              60,
			PreferredPersonality: types.PersonalityIntrovert,
		},
		{
			Title:                "Web Developer",
			RequiredSkills:       []string{"HTML", "CSS", "JavaScript"},
			RequiredInterests:    []string{"Web", "Design"},
			MinMath:              40,
			MinCode:              60,
			PreferredPersonality: types.PersonalityAny,
		},
		{
			Title:                "Data Analyst",
			RequiredSkills:       []string{"SQL", "Excel", "Statistics"},
			RequiredInterests:    []string{"Data", "Business"},
			MinMath:              60,
			MinCode:              40,
			PreferredPersonality: types.PersonalityAny,
		},
	}
}

func TestRank_SortedDescending(t *testing.T) {
	user := &types.UserProfile{
		SelectedSkills:    []string{"Python", "SQL", "Statistics"},
		SelectedInterests: []string{"Data"},
		MathScore:         80,
		CodeScore:         70,
		Personality:       types.PersonalityIntrovert,
	}

	results, err := Rank(testCatalog(), user, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	assert.Equal(t, "Data Scientist", results[0].Job.Title)
}

func TestRank_TopNTruncates(t *testing.T) {
	user := &types.UserProfile{
		SelectedSkills: []string{"SQL"},
		MathScore:      100,
		CodeScore:      100,
		Personality:    types.PersonalityAny,
	}

	results, err := Rank(testCatalog(), user, 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestRank_TopNLargerThanCatalog(t *testing.T) {
	user := &types.UserProfile{
		SelectedSkills: []string{"SQL"},
		MathScore:      100,
		CodeScore:      100,
		Personality:    types.PersonalityAny,
	}

	results, err := Rank(testCatalog(), user, 50)
	require.NoError(t, err)
	assert.Len(t, results, len(testCatalog()))
}

func TestRank_DefaultTopN(t *testing.T) {
	user := &types.UserProfile{
		SelectedSkills: []string{"SQL"},
		MathScore:      100,
		CodeScore:      100,
		Personality:    types.PersonalityAny,
	}

	results, err := Rank(testCatalog(), user, 0)
	require.NoError(t, err)
	assert.Len(t, results, DefaultTopN)
}

func TestRank_TiesKeepCatalogOrder(t *testing.T) {
	// Two jobs with identical requirements score identically; the stable
	// sort must keep their catalog order.
	jobs := []types.JobProfile{
		{Title: "First", RequiredSkills: []string{"Go"}, PreferredPersonality: types.PersonalityAny},
		{Title: "Second", RequiredSkills: []string{"Go"}, PreferredPersonality: types.PersonalityAny},
		{Title: "Third", RequiredSkills: []string{"Go"}, PreferredPersonality: types.PersonalityAny},
	}
	user := &types.UserProfile{
		SelectedSkills: []string{"Go"},
		MathScore:      100,
		CodeScore:      100,
		Personality:    types.PersonalityAny,
	}

	results, err := Rank(jobs, user, len(jobs))
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, "First", results[0].Job.Title)
	assert.Equal(t, "Second", results[1].Job.Title)
	assert.Equal(t, "Third", results[2].Job.Title)
}

func TestRank_EmptySelectionRejected(t *testing.T) {
	user := &types.UserProfile{
		MathScore:   80,
		CodeScore:   80,
		Personality: types.PersonalityIntrovert,
	}

	results, err := Rank(testCatalog(), user, 3)
	require.Error(t, err)
	assert.Nil(t, results)

	var selErr *EmptySelectionError
	assert.True(t, errors.As(err, &selErr))
}

func TestRank_DoesNotMutateCatalog(t *testing.T) {
	jobs := testCatalog()
	original := testCatalog()

	user := &types.UserProfile{
		SelectedSkills: []string{"SQL", "Python"},
		MathScore:      90,
		CodeScore:      90,
		Personality:    types.PersonalityIntrovert,
	}

	_, err := Rank(jobs, user, 3)
	require.NoError(t, err)

	// Scores live on MatchResult; the shared catalog rows stay untouched and
	// a second request sees identical inputs.
	assert.Equal(t, original, jobs)

	again, err := Rank(jobs, user, 3)
	require.NoError(t, err)
	first, err := Rank(jobs, user, 3)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}
