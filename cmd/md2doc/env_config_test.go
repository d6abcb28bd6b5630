package main

// Notes:
// - loadEnvConfig: we test every variable and that invalid worker counts are
//   ignored rather than reported.
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig: we test that set variables override the config file and
//   that unset ones leave it alone.
// - Tests use t.Setenv() which prevents t.Parallel().

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-md2doc/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("MD2DOC_CONFIG", "/path/to/work.yaml")
		t.Setenv("MD2DOC_FORMAT", "html")
		t.Setenv("MD2DOC_INPUT_DIR", "/input")
		t.Setenv("MD2DOC_OUTPUT_DIR", "/output")
		t.Setenv("MD2DOC_STYLE", "github")
		t.Setenv("MD2DOC_WORKERS", "6")

		cfg := loadEnvConfig()

		want := envConfig{
			ConfigPath: "/path/to/work.yaml",
			Format:     "html",
			InputDir:   "/input",
			OutputDir:  "/output",
			Style:      "github",
			Workers:    6,
		}
		if *cfg != want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", *cfg, want)
		}
	})

	for _, value := range []string{"abc", "-2", "0", "1.5"} {
		t.Run("invalid workers "+value, func(t *testing.T) {
			t.Setenv("MD2DOC_WORKERS", value)

			if cfg := loadEnvConfig(); cfg.Workers != 0 {
				t.Errorf("Workers = %d, want 0 for %q", cfg.Workers, value)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("MD2DOC_FROMAT", "html")
	t.Setenv("MD2DOC_FORMAT", "html")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "unknown environment variable MD2DOC_FROMAT") {
		t.Errorf("output = %q, want warning for MD2DOC_FROMAT", out)
	}
	if strings.Contains(out, "MD2DOC_FORMAT ") {
		t.Errorf("known variable should not warn: %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Environment over config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Run("set values override", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Output.Format = "storage"
		cfg.Input.DefaultDir = "from-file"

		applyEnvConfig(&envConfig{Format: "html", InputDir: "in", OutputDir: "out", Style: "monokai"}, cfg)

		if cfg.Output.Format != "html" {
			t.Errorf("Output.Format = %q, want html", cfg.Output.Format)
		}
		if cfg.Input.DefaultDir != "in" {
			t.Errorf("Input.DefaultDir = %q, want in", cfg.Input.DefaultDir)
		}
		if cfg.Output.DefaultDir != "out" {
			t.Errorf("Output.DefaultDir = %q, want out", cfg.Output.DefaultDir)
		}
		if cfg.HTML.Highlight.Style != "monokai" || !cfg.HTML.Highlight.Enabled {
			t.Errorf("Highlight = %+v, want monokai enabled", cfg.HTML.Highlight)
		}
	})

	t.Run("empty values keep config", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Output.Format = "storage"

		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Output.Format != "storage" {
			t.Errorf("Output.Format = %q, want storage", cfg.Output.Format)
		}
		if cfg.HTML.Highlight.Enabled {
			t.Error("highlighting should stay disabled")
		}
	})
}
