package search

import "testing"

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  float64
	}{
		{
			name:  "exact match scores full length ratio",
			text:  "acme",
			query: "acme",
			want:  1.0,
		},
		{
			name:  "subsequence match",
			text:  "banana",
			query: "bna",
			want:  0.5, // 3 matched chars / 6
		},
		{
			name:  "characters out of order do not match",
			text:  "abc",
			query: "cba",
			want:  0,
		},
		{
			name:  "missing character rejects the whole text",
			text:  "banana project",
			query: "acme",
			want:  0,
		},
		{
			name:  "case insensitive",
			text:  "Acme Project",
			query: "ACME",
			want:  4.0 / 12.0,
		},
		{
			name:  "empty text",
			text:  "",
			query: "a",
			want:  0,
		},
		{
			name:  "empty query",
			text:  "acme",
			query: "",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FuzzyScore(tt.text, tt.query)
			if got != tt.want {
				t.Errorf("FuzzyScore(%q, %q) = %v, want %v", tt.text, tt.query, got, tt.want)
			}
		})
	}
}

func TestFuzzyScoreRewardsShorterText(t *testing.T) {
	short := FuzzyScore("acme", "ac")
	long := FuzzyScore("acme project", "ac")

	if short <= long {
		t.Errorf("expected shorter text to score higher: short=%v long=%v", short, long)
	}
}

func TestFuzzyScoreRange(t *testing.T) {
	texts := []string{"", "a", "acme", "Acme Project", "zzzz", "a b c d e f"}
	queries := []string{"a", "ace", "z", "abcdef"}

	for _, text := range texts {
		for _, query := range queries {
			got := FuzzyScore(text, query)
			if got < 0 || got > 1 {
				t.Errorf("FuzzyScore(%q, %q) = %v, out of [0,1]", text, query, got)
			}
		}
	}
}
