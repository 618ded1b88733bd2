package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gidipin/gidisearch/pkg/models"
)

// ReadCatalog loads a single catalog file by name (e.g. "projects.yaml").
func ReadCatalog(name string) (*models.Catalog, error) {
	absPath := filepath.Join(GidiDir, CatalogsDir, name)

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
	}

	var catalog models.Catalog
	if err := yaml.Unmarshal(content, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML %s: %w", name, err)
	}

	catalog.Path = name
	if catalog.Name == "" {
		catalog.Name = strings.TrimSuffix(name, ".yaml")
	}

	return &catalog, nil
}

// WriteCatalog persists a catalog to its file under the catalog
// directory, deriving the filename from the catalog name if needed.
func WriteCatalog(catalog *models.Catalog) error {
	if catalog.Path == "" {
		catalog.Path = fmt.Sprintf("%s.yaml", catalog.Name)
	}

	absPath := filepath.Join(GidiDir, CatalogsDir, catalog.Path)

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for catalog: %w", err)
	}

	content, err := yaml.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog to YAML: %w", err)
	}

	if err := os.WriteFile(absPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", catalog.Path, err)
	}

	return nil
}

// ListCatalogs returns the catalog filenames in the project.
func ListCatalogs() ([]string, error) {
	catalogsPath := filepath.Join(GidiDir, CatalogsDir)

	entries, err := os.ReadDir(catalogsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list catalogs: %w", err)
	}

	var catalogs []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			catalogs = append(catalogs, entry.Name())
		}
	}

	return catalogs, nil
}

// LoadAllItems reads every catalog and returns their items in catalog
// order. Catalogs that fail to parse are skipped rather than aborting
// the whole load.
func LoadAllItems() ([]models.SearchableItem, error) {
	names, err := ListCatalogs()
	if err != nil {
		return nil, err
	}

	var items []models.SearchableItem
	for _, name := range names {
		catalog, err := ReadCatalog(name)
		if err != nil {
			continue // Skip catalogs that can't be read
		}
		items = append(items, catalog.Items...)
	}

	return items, nil
}

// SeedSampleCatalogs writes starter catalogs so a fresh project has
// something to search. Existing files are left untouched.
func SeedSampleCatalogs() error {
	samples := []*models.Catalog{
		{
			Name: "projects",
			Items: []models.SearchableItem{
				{
					ID:          "proj-onboarding",
					Title:       "Identity Onboarding Revamp",
					Description: "Streamlined PIN issuance flow for new professionals",
					Tags:        []string{"identity", "onboarding"},
					Type:        models.ItemTypeProject,
				},
				{
					ID:          "proj-dashboard",
					Title:       "Verification Dashboard",
					Description: "Analytics views for verification volume and revenue",
					Tags:        []string{"analytics", "dashboard"},
					Type:        models.ItemTypeProject,
				},
			},
		},
		{
			Name: "endorsements",
			Items: []models.SearchableItem{
				{
					ID:          "end-delivery",
					Title:       "Delivery Excellence",
					Description: "Endorsed by a project lead for on-time delivery",
					Tags:        []string{"peer"},
					Type:        models.ItemTypeEndorsement,
				},
			},
		},
		{
			Name: "activities",
			Items: []models.SearchableItem{
				{
					ID:          "act-talk",
					Title:       "Conference Talk",
					Description: "Spoke on professional identity verification",
					Tags:        []string{"speaking"},
					Type:        models.ItemTypeActivity,
				},
			},
		},
	}

	for _, catalog := range samples {
		path := filepath.Join(GidiDir, CatalogsDir, fmt.Sprintf("%s.yaml", catalog.Name))
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := WriteCatalog(catalog); err != nil {
			return err
		}
	}

	return nil
}
