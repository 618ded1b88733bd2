package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gidipin/gidisearch/pkg/models"
)

const (
	GidiDir      = ".gidisearch"
	CatalogsDir  = "catalog"
	SettingsFile = "settings.yaml"
)

// InitProjectStructure creates the .gidisearch folder layout in the
// current directory.
func InitProjectStructure() error {
	dirs := []string{
		GidiDir,
		filepath.Join(GidiDir, CatalogsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ProjectExists reports whether the current directory holds an
// initialized project.
func ProjectExists() bool {
	info, err := os.Stat(GidiDir)
	return err == nil && info.IsDir()
}

// ReadSettings loads settings.yaml, falling back to defaults when the
// file is absent.
func ReadSettings() (*models.Settings, error) {
	path := filepath.Join(GidiDir, SettingsFile)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

// WriteSettings persists settings to settings.yaml.
func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	path := filepath.Join(GidiDir, SettingsFile)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
