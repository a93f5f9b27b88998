// Package config resolves runtime settings from the environment, falling
// back to defaults for anything unset.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sbelmont/intake/internal/domain"
)

// Config holds all runtime settings for the intake application.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string
	// CatalogPath is an optional YAML file replacing the built-in
	// equipment catalog.
	CatalogPath string
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values.
func Load() (Config, error) {
	cfg := Config{}

	cfg.DBPath = os.Getenv("INTAKE_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".intake", "intake.db")
	}

	cfg.CatalogPath = os.Getenv("INTAKE_CATALOG")
	return cfg, nil
}

// catalogFile is the YAML shape of a catalog override file.
type catalogFile struct {
	Items []domain.CatalogItem `yaml:"items"`
}

// Catalog returns the equipment item catalog: the file at CatalogPath when
// set, otherwise the built-in default. A file with no items is rejected so
// a bad override cannot strand the basic-equipment step without options.
func (c Config) Catalog() ([]domain.CatalogItem, error) {
	if c.CatalogPath == "" {
		return domain.DefaultCatalog(), nil
	}

	raw, err := os.ReadFile(c.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	if len(file.Items) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no items", c.CatalogPath)
	}
	for _, it := range file.Items {
		if it.Slug == "" || it.Label == "" {
			return nil, fmt.Errorf("catalog file %s: every item needs a slug and a label", c.CatalogPath)
		}
	}
	return file.Items, nil
}
