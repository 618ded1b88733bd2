package models

// Settings represents the application configuration
type Settings struct {
	Search SearchSettings `yaml:"search"`
	UI     UISettings     `yaml:"ui"`
}

// SearchSettings controls ranking and session behavior
type SearchSettings struct {
	Threshold      float64 `yaml:"threshold"`        // minimum weighted score cutoff, 0-1 tuning knob
	Limit          int     `yaml:"limit"`            // maximum results returned
	MinQueryLength int     `yaml:"min_query_length"` // queries shorter than this are not searched
	DebounceMs     int     `yaml:"debounce_ms"`      // quiescence window before a search fires
	SaveHistory    bool    `yaml:"save_history"`     // record completed searches
}

// UISettings controls UI preferences
type UISettings struct {
	ShowDetails bool `yaml:"show_details"` // show the detail pane in the browse view
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Search: SearchSettings{
			Threshold:      0.4,
			Limit:          10,
			MinQueryLength: 2,
			DebounceMs:     250,
			SaveHistory:    true,
		},
		UI: UISettings{
			ShowDetails: true,
		},
	}
}
