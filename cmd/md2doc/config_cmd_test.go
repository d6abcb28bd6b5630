package main

// Notes:
// - runConfigCommand: we test that the printed YAML reflects the config
//   file with flags applied and that it loads back as the same config.

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-md2doc/internal/config"
	"github.com/alnah/go-md2doc/internal/yamlutil"
)

// ---------------------------------------------------------------------------
// TestRunConfigCommand - Effective configuration output
// ---------------------------------------------------------------------------

func TestRunConfigCommand(t *testing.T) {
	t.Parallel()

	t.Run("file with flag overrides", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "work.yaml", "output:\n  format: storage\nstorage:\n  codeMacro: noformat\n")
		env, stdout, _ := testEnv("")

		if err := runConfigCommand([]string{"-c", path, "--indent", "--style", "monokai"}, env); err != nil {
			t.Fatalf("runConfigCommand() error: %v", err)
		}

		var got config.Config
		if err := yamlutil.UnmarshalStrict(stdout.Bytes(), &got); err != nil {
			t.Fatalf("output is not a valid config: %v\n%s", err, stdout)
		}

		want := config.DefaultConfig()
		want.Output.Format = "storage"
		want.Output.Indent = true
		want.Storage.CodeMacro = "noformat"
		want.HTML.Highlight = config.HighlightConfig{Enabled: true, Style: "monokai"}
		if diff := cmp.Diff(*want, got); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
		if !strings.Contains(stdout.String(), "  format: storage") {
			t.Errorf("output should be indented by two spaces:\n%s", stdout)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv("")
		err := runConfigCommand([]string{"-c", filepath.Join(t.TempDir(), "x.yaml")}, env)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("bad flag", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv("")
		if err := runConfigCommand([]string{"--bogus"}, env); !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})
}
