package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gidipin/gidisearch/pkg/models"
)

func setupTestProject(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	os.Chdir(tempDir)

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}
}

func TestInitProjectStructure(t *testing.T) {
	setupTestProject(t)

	expectedDirs := []string{
		GidiDir,
		filepath.Join(GidiDir, CatalogsDir),
	}

	for _, dir := range expectedDirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			t.Errorf("Expected directory %s does not exist", dir)
		}
	}

	if !ProjectExists() {
		t.Error("ProjectExists() = false after init")
	}
}

func TestReadWriteCatalog(t *testing.T) {
	setupTestProject(t)

	catalog := &models.Catalog{
		Name: "projects",
		Items: []models.SearchableItem{
			{
				ID:          "p1",
				Title:       "Acme Project",
				Description: "Flagship rollout",
				Tags:        []string{"blue", "client"},
				Type:        models.ItemTypeProject,
				Metadata:    map[string]string{"owner": "ada"},
			},
		},
	}

	if err := WriteCatalog(catalog); err != nil {
		t.Fatalf("WriteCatalog failed: %v", err)
	}

	read, err := ReadCatalog("projects.yaml")
	if err != nil {
		t.Fatalf("ReadCatalog failed: %v", err)
	}

	if read.Name != "projects" {
		t.Errorf("Name = %q, want projects", read.Name)
	}
	if len(read.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(read.Items))
	}

	item := read.Items[0]
	if item.ID != "p1" || item.Title != "Acme Project" {
		t.Errorf("item round-trip mismatch: %+v", item)
	}
	if len(item.Tags) != 2 || item.Tags[0] != "blue" {
		t.Errorf("tags round-trip mismatch: %v", item.Tags)
	}
	if item.Metadata["owner"] != "ada" {
		t.Errorf("metadata round-trip mismatch: %v", item.Metadata)
	}
}

func TestListCatalogs(t *testing.T) {
	setupTestProject(t)

	if err := WriteCatalog(&models.Catalog{Name: "projects"}); err != nil {
		t.Fatal(err)
	}
	if err := WriteCatalog(&models.Catalog{Name: "activities"}); err != nil {
		t.Fatal(err)
	}

	catalogs, err := ListCatalogs()
	if err != nil {
		t.Fatalf("ListCatalogs failed: %v", err)
	}
	if len(catalogs) != 2 {
		t.Errorf("got %d catalogs, want 2: %v", len(catalogs), catalogs)
	}
}

func TestLoadAllItems(t *testing.T) {
	setupTestProject(t)

	if err := WriteCatalog(&models.Catalog{
		Name:  "projects",
		Items: []models.SearchableItem{{ID: "p1", Title: "One"}, {ID: "p2", Title: "Two"}},
	}); err != nil {
		t.Fatal(err)
	}
	if err := WriteCatalog(&models.Catalog{
		Name:  "activities",
		Items: []models.SearchableItem{{ID: "a1", Title: "Three"}},
	}); err != nil {
		t.Fatal(err)
	}

	items, err := LoadAllItems()
	if err != nil {
		t.Fatalf("LoadAllItems failed: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("got %d items, want 3", len(items))
	}
}

func TestLoadAllItemsSkipsBrokenCatalog(t *testing.T) {
	setupTestProject(t)

	if err := WriteCatalog(&models.Catalog{
		Name:  "projects",
		Items: []models.SearchableItem{{ID: "p1", Title: "One"}},
	}); err != nil {
		t.Fatal(err)
	}

	broken := filepath.Join(GidiDir, CatalogsDir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("items: [not: {valid"), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := LoadAllItems()
	if err != nil {
		t.Fatalf("LoadAllItems failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("got %d items, want 1 (broken catalog skipped)", len(items))
	}
}

func TestLoadAllItemsEmptyProject(t *testing.T) {
	setupTestProject(t)

	items, err := LoadAllItems()
	if err != nil {
		t.Fatalf("LoadAllItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	setupTestProject(t)

	// Missing file falls back to defaults.
	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if settings.Search.Limit != models.DefaultSettings().Search.Limit {
		t.Errorf("default Limit = %d", settings.Search.Limit)
	}

	settings.Search.Limit = 25
	settings.Search.SaveHistory = false
	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	read, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings after write failed: %v", err)
	}
	if read.Search.Limit != 25 {
		t.Errorf("Limit = %d, want 25", read.Search.Limit)
	}
	if read.Search.SaveHistory {
		t.Error("SaveHistory should persist as false")
	}
}

func TestSeedSampleCatalogs(t *testing.T) {
	setupTestProject(t)

	if err := SeedSampleCatalogs(); err != nil {
		t.Fatalf("SeedSampleCatalogs failed: %v", err)
	}

	items, err := LoadAllItems()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) == 0 {
		t.Error("seeded project has no items")
	}

	// Seeding twice must not duplicate or overwrite.
	if err := SeedSampleCatalogs(); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	again, _ := LoadAllItems()
	if len(again) != len(items) {
		t.Errorf("second seed changed item count: %d -> %d", len(items), len(again))
	}
}
