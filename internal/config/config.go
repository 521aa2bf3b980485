// Package config provides reading and writing of oracheck configuration.
// Supports both global (~/.oracheck/config.yaml) and local
// (.oracheck/config.yaml). Reading: uses local if it exists, otherwise
// global. Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.oracheck/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .oracheck/config.yaml
	ScopeLocal
)

// Enrichr holds gene-set library source settings.
type Enrichr struct {
	BaseURL string `yaml:"base_url,omitempty"`
}

// DefaultBaseURL is the public Enrichr endpoint serving gene-set libraries.
const DefaultBaseURL = "https://maayanlab.cloud/Enrichr"

// DefaultLibraries is the basic library set fetched when none are configured.
var DefaultLibraries = []string{
	"BioPlanet_2019", "DisGeNET", "DrugMatrix",
	"GO_Biological_Process_2025",
	"GO_Cellular_Component_2025", "GO_Molecular_Function_2025",
	"KEGG_2021_Human",
	"KEGG_2019_Mouse", "OMIM_Disease", "Panther_2016",
	"Reactome_Pathways_2024", "WikiPathways_2024_Human",
}

// Config contains configuration for oracheck.
type Config struct {
	DataDir   string   `yaml:"data_dir,omitempty"`
	Libraries []string `yaml:"libraries,omitempty"`
	Enrichr   Enrichr  `yaml:"enrichr,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// ResolvedDataDir returns the configured data directory with a leading ~
// expanded, falling back to ~/.oracheck/data.
func (c *Config) ResolvedDataDir() string {
	dir := c.DataDir
	if dir == "" {
		dir = filepath.Join("~", ".oracheck", "data")
	}
	if strings.HasPrefix(dir, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
		}
	}
	return dir
}

// BaseURL returns the Enrichr base URL, defaulting to the public endpoint.
func (c *Config) BaseURL() string {
	if c.Enrichr.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.Enrichr.BaseURL
}

// LibraryNames returns the configured libraries, defaulting to the basic set.
func (c *Config) LibraryNames() []string {
	if len(c.Libraries) == 0 {
		return DefaultLibraries
	}
	return c.Libraries
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(".oracheck", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file:
// ~/.oracheck/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".oracheck", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
