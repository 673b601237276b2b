package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/career-compass/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Job Title,Skills,Interests,Min_Math,Min_Code,Personality,Salary_Range,Trend_Growth
Data Scientist,"Python, SQL, Statistics","Data, AI",70,60,Introvert,$95k - $145k,Very High
Web Developer," HTML , 'CSS' , JavaScript ","Web, Design",40,60,Ambivert/Any,$65k - $100k,High
`

func TestLoad_ParsesRows(t *testing.T) {
	jobs, err := Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	ds := jobs[0]
	assert.Equal(t, "Data Scientist", ds.Title)
	assert.Equal(t, []string{"Python", "SQL", "Statistics"}, ds.RequiredSkills)
	assert.Equal(t, []string{"Data", "AI"}, ds.RequiredInterests)
	assert.Equal(t, 70, ds.MinMath)
	assert.Equal(t, 60, ds.MinCode)
	assert.Equal(t, types.PersonalityIntrovert, ds.PreferredPersonality)
	assert.Equal(t, "$95k - $145k", ds.SalaryRange)
	assert.Equal(t, "Very High", ds.DemandTrend)
}

func TestLoad_StripsWhitespaceAndQuotes(t *testing.T) {
	jobs, err := Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	// The web developer row has padded tokens and a single-quoted token.
	assert.Equal(t, []string{"HTML", "CSS", "JavaScript"}, jobs[1].RequiredSkills)
}

func TestLoad_MissingColumn(t *testing.T) {
	csv := "Job Title,Skills,Interests,Min_Math,Min_Code,Personality,Salary_Range\n" +
		"Data Scientist,Python,Data,70,60,Introvert,$95k\n"

	_, err := Load(strings.NewReader(csv))
	require.Error(t, err)

	var loadErr *DataLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "Trend_Growth")
}

func TestLoad_ShortRow(t *testing.T) {
	csv := "Job Title,Skills,Interests,Min_Math,Min_Code,Personality,Salary_Range,Trend_Growth\n" +
		"Data Scientist,Python,Data\n"

	_, err := Load(strings.NewReader(csv))

	var loadErr *DataLoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestLoad_InvalidThreshold(t *testing.T) {
	csv := "Job Title,Skills,Interests,Min_Math,Min_Code,Personality,Salary_Range,Trend_Growth\n" +
		"Data Scientist,Python,Data,seventy,60,Introvert,$95k,High\n"

	_, err := Load(strings.NewReader(csv))

	var loadErr *DataLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "Min_Math")
}

func TestLoad_UnknownPersonality(t *testing.T) {
	csv := "Job Title,Skills,Interests,Min_Math,Min_Code,Personality,Salary_Range,Trend_Growth\n" +
		"Data Scientist,Python,Data,70,60,Outgoing,$95k,High\n"

	_, err := Load(strings.NewReader(csv))

	var loadErr *DataLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "personality")
}

func TestLoad_EmptyCatalog(t *testing.T) {
	csv := "Job Title,Skills,Interests,Min_Math,Min_Code,Personality,Salary_Range,Trend_Growth\n"

	_, err := Load(strings.NewReader(csv))

	var loadErr *DataLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "no rows")
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("testdata/does_not_exist.csv")

	var loadErr *DataLoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestDefault_EmbeddedCatalog(t *testing.T) {
	jobs, err := Default()
	require.NoError(t, err)
	assert.NotEmpty(t, jobs)

	for _, job := range jobs {
		assert.NotEmpty(t, job.Title)
		assert.NotEmpty(t, job.RequiredSkills, "job %s has no required skills", job.Title)
	}
}

func TestVocabulary_SortedAndDeduplicated(t *testing.T) {
	jobs := []types.JobProfile{
		{Title: "A", RequiredSkills: []string{"SQL", "Python"}},
		{Title: "B", RequiredSkills: []string{"Python", "Docker"}},
		{Title: "C", RequiredSkills: []string{""}},
	}

	vocabulary := Vocabulary(jobs)
	assert.Equal(t, []string{"Docker", "Python", "SQL"}, vocabulary)
}

func TestVocabulary_Deterministic(t *testing.T) {
	jobs, err := Default()
	require.NoError(t, err)

	first := Vocabulary(jobs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Vocabulary(jobs))
	}
}

func TestSplitTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"plain", "Python,SQL", []string{"Python", "SQL"}},
		{"padded", " Python , SQL ", []string{"Python", "SQL"}},
		{"quoted", `"Python",'SQL'`, []string{"Python", "SQL"}},
		{"quote then space", `" Python "`, []string{"Python"}},
		{"empty tokens dropped", "Python,,  ,SQL", []string{"Python", "SQL"}},
		{"all empty", " , ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitTokens(tt.input))
		})
	}
}

func TestStore_MemoizesLoad(t *testing.T) {
	calls := 0
	store := NewStore(func() ([]types.JobProfile, error) {
		calls++
		return []types.JobProfile{{Title: "A", RequiredSkills: []string{"Go"}}}, nil
	})

	for i := 0; i < 3; i++ {
		jobs, err := store.Jobs()
		require.NoError(t, err)
		assert.Len(t, jobs, 1)

		vocabulary, err := store.Vocabulary()
		require.NoError(t, err)
		assert.Equal(t, []string{"Go"}, vocabulary)
	}

	assert.Equal(t, 1, calls)
}

func TestStore_PropagatesLoadError(t *testing.T) {
	store := NewFileStore("testdata/does_not_exist.csv")

	_, err := store.Jobs()
	var loadErr *DataLoadError
	require.True(t, errors.As(err, &loadErr))

	_, err = store.Vocabulary()
	require.True(t, errors.As(err, &loadErr))
}
