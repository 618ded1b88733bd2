package search

import (
	"sort"
	"strings"

	"github.com/gidipin/gidisearch/pkg/models"
)

// Field keys recognized by Options.Keys.
const (
	KeyTitle       = "title"
	KeyDescription = "description"
	KeyTags        = "tags"
)

// Scoring weights. A literal substring hit in the title dominates,
// substring hits in description or tags count half, and fuzzy
// subsequence matches act as tie-breakers on top.
const (
	weightTitleSubstring       = 10.0
	weightDescriptionSubstring = 5.0
	weightTagSubstring         = 5.0
	weightTitleFuzzy           = 3.0
	weightDescriptionFuzzy     = 1.0

	// thresholdScale maps the 0-1 Threshold option onto the accumulated
	// score scale: an item is kept when its weighted sum exceeds
	// Threshold*thresholdScale. The option is a tuning knob, not a
	// calibrated probability.
	thresholdScale = 10.0
)

// Defaults applied by Rank when an Options field is left at its zero value.
const (
	DefaultThreshold = 0.4
	DefaultLimit     = 10
)

// Options configures a ranking pass.
// The zero value means "use defaults" for every field.
type Options struct {
	Threshold float64  // minimum weighted score cutoff
	Keys      []string // fields to score, defaults to title, description, tags
	Limit     int      // maximum results returned
}

// DefaultOptions returns the ranking defaults.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Keys:      []string{KeyTitle, KeyDescription, KeyTags},
		Limit:     DefaultLimit,
	}
}

func (o Options) withDefaults() Options {
	if o.Threshold == 0 {
		o.Threshold = DefaultThreshold
	}
	if o.Keys == nil {
		o.Keys = []string{KeyTitle, KeyDescription, KeyTags}
	}
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	return o
}

// rankedResult pairs an item with its accumulated score for sorting.
// Scores are internal only; callers just get the ordered items back.
type rankedResult struct {
	item  models.SearchableItem
	score float64
}

// Rank scores items against query and returns the matches in descending
// score order, truncated to opts.Limit. An empty or whitespace-only
// query is not a search: the first Limit items are returned unranked.
// Ties keep their relative input order. Rank is pure and safe to call
// concurrently for different queries.
func Rank(items []models.SearchableItem, query string, opts Options) []models.SearchableItem {
	opts = opts.withDefaults()

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		if len(items) > opts.Limit {
			items = items[:opts.Limit]
		}
		out := make([]models.SearchableItem, len(items))
		copy(out, items)
		return out
	}

	q := strings.ToLower(trimmed)
	keys := make(map[string]bool, len(opts.Keys))
	for _, k := range opts.Keys {
		keys[k] = true
	}

	var kept []rankedResult
	for _, item := range items {
		score := scoreItem(item, q, keys)
		if score > opts.Threshold*thresholdScale {
			kept = append(kept, rankedResult{item: item, score: score})
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	if len(kept) > opts.Limit {
		kept = kept[:opts.Limit]
	}

	out := make([]models.SearchableItem, len(kept))
	for i, r := range kept {
		out[i] = r.item
	}
	return out
}

// scoreItem accumulates the weighted score for a single item.
// q must already be trimmed and lowercased.
func scoreItem(item models.SearchableItem, q string, keys map[string]bool) float64 {
	score := 0.0

	if keys[KeyTitle] && item.Title != "" {
		if strings.Contains(strings.ToLower(item.Title), q) {
			score += weightTitleSubstring
		}
		score += weightTitleFuzzy * FuzzyScore(item.Title, q)
	}

	if keys[KeyDescription] && item.Description != "" {
		if strings.Contains(strings.ToLower(item.Description), q) {
			score += weightDescriptionSubstring
		}
		score += weightDescriptionFuzzy * FuzzyScore(item.Description, q)
	}

	if keys[KeyTags] {
		for _, tag := range item.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				score += weightTagSubstring
				break
			}
		}
	}

	return score
}
