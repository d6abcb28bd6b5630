package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2doc/internal/config"
)

// envPrefix starts every recognized environment variable.
const envPrefix = "MD2DOC_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2DOC_CONFIG: config file name or path
	Format     string // MD2DOC_FORMAT: output format
	InputDir   string // MD2DOC_INPUT_DIR: default input directory
	OutputDir  string // MD2DOC_OUTPUT_DIR: default output directory
	Style      string // MD2DOC_STYLE: highlight style, enables highlighting
	Workers    int    // MD2DOC_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2DOC_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2DOC_CONFIG":     true,
	"MD2DOC_FORMAT":     true,
	"MD2DOC_INPUT_DIR":  true,
	"MD2DOC_OUTPUT_DIR": true,
	"MD2DOC_STYLE":      true,
	"MD2DOC_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid worker counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2DOC_CONFIG"),
		Format:     os.Getenv("MD2DOC_FORMAT"),
		InputDir:   os.Getenv("MD2DOC_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2DOC_OUTPUT_DIR"),
		Style:      os.Getenv("MD2DOC_STYLE"),
	}

	if workers := os.Getenv("MD2DOC_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars prints warnings for unrecognized MD2DOC_* variables.
// Helps catch typos like MD2DOC_FROMAT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Format != "" {
		cfg.Output.Format = env.Format
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Style != "" {
		cfg.HTML.Highlight.Style = env.Style
		cfg.HTML.Highlight.Enabled = true
	}
}
