package search

import "strings"

// FuzzyScore reports how well query matches text as a case-insensitive
// subsequence. Every character of query must appear in text in order
// (not necessarily contiguously) for the text to match at all; the
// score is the number of matched characters divided by the length of
// text, so shorter texts that contain the whole query rank higher.
// Returns a value in [0, 1], with 0 meaning no match.
func FuzzyScore(text, query string) float64 {
	if text == "" {
		return 0
	}

	t := strings.ToLower(text)
	q := strings.ToLower(query)

	qi := 0
	matched := 0
	for ti := 0; ti < len(t) && qi < len(q); ti++ {
		if t[ti] == q[qi] {
			qi++
			matched++
		}
	}

	if qi < len(q) {
		return 0
	}

	return float64(matched) / float64(len(t))
}
