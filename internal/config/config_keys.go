// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic from the YAML structure and loading. The CLI and MCP
// surfaces access config by string keys (e.g. "enrichr.base_url").

package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"data.dir",
		"enrichr.base_url",
		"libraries",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// All returns every configuration key with its effective value.
func (c *Config) All() map[string]string {
	all := make(map[string]string, len(ValidKeys()))
	for _, key := range ValidKeys() {
		v, _ := c.Get(key)
		all[key] = v
	}
	return all
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "data.dir":
		return c.ResolvedDataDir(), nil
	case "enrichr.base_url":
		return c.BaseURL(), nil
	case "libraries":
		return strings.Join(c.LibraryNames(), ","), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key. "libraries" takes a
// comma-separated list of Enrichr library names.
func (c *Config) Set(key, value string) error {
	switch key {
	case "data.dir":
		if value == "" {
			return fmt.Errorf("%w: data.dir cannot be empty", ErrInvalidValue)
		}
		c.DataDir = value
	case "enrichr.base_url":
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: enrichr.base_url must be an http(s) URL", ErrInvalidValue)
		}
		c.Enrichr.BaseURL = strings.TrimRight(value, "/")
	case "libraries":
		var libs []string
		for _, name := range strings.Split(value, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			libs = append(libs, name)
		}
		if len(libs) == 0 {
			return fmt.Errorf("%w: libraries must name at least one library", ErrInvalidValue)
		}
		c.Libraries = libs
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}
