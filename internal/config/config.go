// Package config loads and validates YAML configuration for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2doc/internal/fileutil"
	"github.com/alnah/go-md2doc/internal/render"
	"github.com/alnah/go-md2doc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DirName is the directory under the user config dir searched for named configs.
const DirName = "go-md2doc"

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxTitleLength     = 200  // Standalone page title
	MaxStyleLength     = 50   // Chroma style name
	MaxMacroNameLength = 64   // Storage code macro name
	MaxThemeLength     = 50   // Page theme name
)

// Config holds all configuration for document conversion.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	HTML    HTMLConfig    `yaml:"html"`
	Storage StorageConfig `yaml:"storage"`
	ADF     ADFConfig     `yaml:"adf"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Format     string `yaml:"format"`     // "adf", "html", "storage" or an alias (default: "adf")
	Indent     bool   `yaml:"indent"`     // Pretty-print JSON output
}

// HTMLConfig defines HTML output options.
type HTMLConfig struct {
	Standalone bool            `yaml:"standalone"` // Wrap fragments in a full page
	Title      string          `yaml:"title"`      // Page title (empty = first heading)
	Highlight  HighlightConfig `yaml:"highlight"`
	Theme      string          `yaml:"theme"`     // Page theme name (empty = unstyled)
	AssetsDir  string          `yaml:"assetsDir"` // Directory with themes/{name}.css
}

// HighlightConfig defines syntax highlighting of code blocks.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // Chroma style name (default: "github")
}

// StorageConfig defines storage markup options.
type StorageConfig struct {
	CodeMacro string `yaml:"codeMacro"` // Macro name for code blocks (default: "code")
}

// ADFConfig defines JSON document options.
type ADFConfig struct {
	LocalIDs bool `yaml:"localIds"` // Add a UUID localId to every table
}

// formatNames lists accepted output.format values, aliases included.
var formatNames = map[string]bool{
	"adf": true, "json": true,
	"html":    true,
	"storage": true, "xhtml": true,
}

// Validate checks field lengths and enum values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	// Validate directories
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	// Validate format
	if c.Output.Format != "" && !formatNames[strings.ToLower(c.Output.Format)] {
		return fmt.Errorf("%w: output.format %q (must be adf, html, or storage)", ErrInvalidValue, c.Output.Format)
	}

	// Validate HTML fields
	if err := validateFieldLength("html.title", c.HTML.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("html.highlight.style", c.HTML.Highlight.Style, MaxStyleLength); err != nil {
		return err
	}
	if c.HTML.Highlight.Style != "" {
		if _, err := render.NewHighlighter(c.HTML.Highlight.Style); err != nil {
			return fmt.Errorf("%w: html.highlight.style: %w", ErrInvalidValue, err)
		}
	}

	if err := validateFieldLength("html.theme", c.HTML.Theme, MaxThemeLength); err != nil {
		return err
	}
	if err := validateFieldLength("html.assetsDir", c.HTML.AssetsDir, MaxPathLength); err != nil {
		return err
	}

	// Validate storage fields
	if err := validateFieldLength("storage.codeMacro", c.Storage.CodeMacro, MaxMacroNameLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: ADF output next to the
// source, no highlighting, no standalone wrapping.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: "adf"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup
// order: current directory, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, DirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing candidate from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
