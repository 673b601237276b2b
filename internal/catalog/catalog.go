package catalog

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Required catalog columns, by header name.
const (
	colTitle       = "Job Title"
	colSkills      = "Skills"
	colInterests   = "Interests"
	colMinMath     = "Min_Math"
	colMinCode     = "Min_Code"
	colPersonality = "Personality"
	colSalary      = "Salary_Range"
	colTrend       = "Trend_Growth"
)

//go:embed career_data.csv
var defaultCatalog []byte

// Load parses a CSV catalog source. The first record is the header; every
// required column must be present. Skills and Interests are comma-joined
// strings whose tokens are trimmed and stripped of stray quote characters.
func Load(r io.Reader) ([]types.JobProfile, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, &DataLoadError{Message: "failed to read header row", Cause: err}
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	required := []string{colTitle, colSkills, colInterests, colMinMath, colMinCode, colPersonality, colSalary, colTrend}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, &DataLoadError{Message: fmt.Sprintf("missing required column %q", name)}
		}
	}

	var jobs []types.JobProfile
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DataLoadError{Message: "malformed catalog row", Cause: err}
		}

		job, err := parseRow(record, columns)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if len(jobs) == 0 {
		return nil, &DataLoadError{Message: "catalog contains no rows"}
	}
	return jobs, nil
}

func parseRow(record []string, columns map[string]int) (types.JobProfile, error) {
	title := strings.TrimSpace(record[columns[colTitle]])
	if title == "" {
		return types.JobProfile{}, &DataLoadError{Message: "row has empty job title"}
	}

	minMath, err := parseScore(record[columns[colMinMath]])
	if err != nil {
		return types.JobProfile{}, &DataLoadError{Message: fmt.Sprintf("invalid Min_Math for %q", title), Cause: err}
	}
	minCode, err := parseScore(record[columns[colMinCode]])
	if err != nil {
		return types.JobProfile{}, &DataLoadError{Message: fmt.Sprintf("invalid Min_Code for %q", title), Cause: err}
	}

	personality, err := types.ParsePersonality(strings.TrimSpace(record[columns[colPersonality]]))
	if err != nil {
		return types.JobProfile{}, &DataLoadError{Message: fmt.Sprintf("invalid personality for %q", title), Cause: err}
	}

	return types.JobProfile{
		Title:                title,
		RequiredSkills:       SplitTokens(record[columns[colSkills]]),
		RequiredInterests:    SplitTokens(record[columns[colInterests]]),
		MinMath:              minMath,
		MinCode:              minCode,
		PreferredPersonality: personality,
		SalaryRange:          strings.TrimSpace(record[columns[colSalary]]),
		DemandTrend:          strings.TrimSpace(record[columns[colTrend]]),
	}, nil
}

func parseScore(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 100 {
		return 0, fmt.Errorf("score %d outside [0,100]", n)
	}
	return n, nil
}

// SplitTokens splits a comma-joined field into clean tokens: whitespace and
// stray quote characters are stripped, empty tokens dropped. Order is
// preserved.
func SplitTokens(field string) []string {
	parts := strings.Split(field, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.Trim(strings.TrimSpace(part), `"'`)
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// LoadFile loads a catalog from a CSV file on disk.
func LoadFile(path string) ([]types.JobProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Message: fmt.Sprintf("cannot open catalog file %s", path), Cause: err}
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Default loads the catalog embedded in the binary.
func Default() ([]types.JobProfile, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// Vocabulary returns the union of all skill tokens across jobs, deduplicated
// and sorted ascending. Sorting makes the result deterministic regardless of
// map iteration order.
func Vocabulary(jobs []types.JobProfile) []string {
	seen := make(map[string]bool)
	for _, job := range jobs {
		for _, skill := range job.RequiredSkills {
			if skill != "" {
				seen[skill] = true
			}
		}
	}

	vocabulary := make([]string, 0, len(seen))
	for skill := range seen {
		vocabulary = append(vocabulary, skill)
	}
	sort.Strings(vocabulary)
	return vocabulary
}
