package main

// Notes:
// - exitCodeFor: we test each error group through wrapping, since callers
//   always wrap sentinels with context.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2doc "github.com/alnah/go-md2doc"
	"github.com/alnah/go-md2doc/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"conversions failed", fmt.Errorf("%w: 1 of 2", ErrConversionsFailed), ExitGeneral},
		{"internal", md2doc.ErrInternal, ExitGeneral},

		{"not exist", fmt.Errorf("stat: %w", os.ErrNotExist), ExitIO},
		{"permission", &os.PathError{Op: "open", Path: "x", Err: os.ErrPermission}, ExitIO},
		{"read markdown", fmt.Errorf("%w: eof", ErrReadMarkdown), ExitIO},
		{"write output", fmt.Errorf("%w: disk full", ErrWriteOutput), ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"no markdown files", fmt.Errorf("%w in dir", ErrNoMarkdownFiles), ExitIO},
		{"library read", fmt.Errorf("%w: reset", md2doc.ErrRead), ExitIO},

		{"usage", fmt.Errorf("%w: bad flag", ErrUsage), ExitUsage},
		{"config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"invalid format", fmt.Errorf("%w: pdf", md2doc.ErrInvalidFormat), ExitUsage},
		{"style not found", md2doc.ErrStyleNotFound, ExitUsage},
		{"macro name", md2doc.ErrInvalidMacroName, ExitUsage},
		{"theme", fmt.Errorf("loading theme: %w", md2doc.ErrThemeNotFound), ExitUsage},
		{"asset path", md2doc.ErrInvalidAssetPath, ExitUsage},
		{"extension", ErrInvalidExtension, ExitUsage},
		{"workers", ErrInvalidWorkerCount, ExitUsage},
		{"shell", ErrUnsupportedShell, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
