package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrEmptyFile    = errors.New("configuration file is empty")
	ErrNoMatches    = errors.New("no configuration files match pattern")
)

// Load reads a Config from a JSON or YAML file. The format is detected
// by file extension (.yaml, .yml for YAML, otherwise JSON). Fields the
// file does not set keep their Default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := loadInto(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadGlob loads every file matching a doublestar pattern (for example
// "conf.d/**/*.yaml") in lexical order into one Config. Later files
// override only the fields they set, so a base file plus environment
// overlays compose naturally.
func LoadGlob(pattern string) (Config, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return Config{}, fmt.Errorf("bad glob pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrNoMatches, pattern)
	}
	sort.Strings(matches)

	cfg := Default()
	for _, path := range matches {
		if err := loadInto(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// loadInto unmarshals one file over cfg, leaving unset fields alone.
func loadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("failed to read file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w in %s: %v", ErrInvalidYAML, path, err)
		}
		return nil
	}

	if !json.Valid(data) {
		return fmt.Errorf("%w in file: %s", ErrInvalidJSON, path)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w in %s: %v", ErrInvalidJSON, path, err)
	}
	return nil
}
