package models

// Item type constants used for display and icon selection.
// They are not part of search scoring.
const (
	ItemTypeProject     = "project"
	ItemTypeEndorsement = "endorsement"
	ItemTypeActivity    = "activity"
	ItemTypeOther       = "other"
)

// SearchableItem is the unit of data the ranker operates over.
// Title is the only required text field; Description and Tags are
// optional and simply contribute nothing to scoring when absent.
type SearchableItem struct {
	ID          string            `yaml:"id" json:"id"`
	Title       string            `yaml:"title" json:"title"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string          `yaml:"tags,omitempty" json:"tags,omitempty"`
	Type        string            `yaml:"type,omitempty" json:"type,omitempty"`
	Metadata    map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// Catalog is a named collection of searchable items as stored on disk.
type Catalog struct {
	Name  string           `yaml:"name"`
	Path  string           `yaml:"-"`
	Items []SearchableItem `yaml:"items"`
}

// KnownItemTypes lists the recognized item types in display order.
func KnownItemTypes() []string {
	return []string{ItemTypeProject, ItemTypeEndorsement, ItemTypeActivity, ItemTypeOther}
}

// NormalizeItemType maps arbitrary type strings onto a known type,
// falling back to "other" for anything unrecognized.
func NormalizeItemType(t string) string {
	switch t {
	case ItemTypeProject, ItemTypeEndorsement, ItemTypeActivity:
		return t
	default:
		return ItemTypeOther
	}
}
