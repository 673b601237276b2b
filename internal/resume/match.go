package resume

import "strings"

// MatchSkills scans resume text for vocabulary terms using case-insensitive
// substring containment, returning the terms found in vocabulary order. The
// text is lowercased once; each term is lowercased for the comparison.
//
// Known limitation: substring matching means a term that occurs inside an
// unrelated word still matches ("Go" inside "Google", "R" inside anything).
// The result is a suggestion the user confirms before analysis, so false
// positives are accepted rather than silently filtered.
func MatchSkills(text string, vocabulary []string) []string {
	if text == "" || len(vocabulary) == 0 {
		return nil
	}

	textLower := strings.ToLower(text)
	var matched []string
	for _, term := range vocabulary {
		if term == "" {
			continue
		}
		if strings.Contains(textLower, strings.ToLower(term)) {
			matched = append(matched, term)
		}
	}
	return matched
}
