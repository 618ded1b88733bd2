package cli

import (
	"fmt"
	"strings"

	"github.com/gidipin/gidisearch/pkg/files"
)

// ValidateItemType validates an item type filter string
func ValidateItemType(t string) error {
	validTypes := []string{"project", "projects", "endorsement", "endorsements", "activity", "activities", "other", "all"}
	normalized := strings.ToLower(t)

	for _, valid := range validTypes {
		if normalized == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid item type: %s (must be: project, endorsement, activity, other or all)", t)
}

// NormalizeItemTypeFilter converts type filter variants to standard form
func NormalizeItemTypeFilter(t string) string {
	switch strings.ToLower(t) {
	case "project", "projects":
		return "project"
	case "endorsement", "endorsements":
		return "endorsement"
	case "activity", "activities":
		return "activity"
	case "other":
		return "other"
	default:
		return "all"
	}
}

// RequireProject ensures the current directory holds an initialized project
func RequireProject() error {
	if !files.ProjectExists() {
		return fmt.Errorf("no %s directory found. Run 'gidisearch init' first", files.GidiDir)
	}
	return nil
}
