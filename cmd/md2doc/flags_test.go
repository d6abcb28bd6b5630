package main

// Notes:
// - parseConvertFlags: we test every flag group, shorthand forms, positional
//   args interleaved with flags, and the help/unknown-flag errors.

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseConvertFlags - Flag groups and positional args
// ---------------------------------------------------------------------------

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		want     convertFlags
		wantArgs []string
	}{
		{
			name:     "no flags",
			args:     []string{"doc.md"},
			want:     convertFlags{},
			wantArgs: []string{"doc.md"},
		},
		{
			name:     "shorthands",
			args:     []string{"-o", "out", "-w", "4", "-c", "work", "-q", "-f", "html", "-s", "in"},
			want:     convertFlags{output: "out", workers: 4, common: commonFlags{config: "work", quiet: true}, format: formatFlags{format: "html"}, html: htmlFlags{standalone: true}},
			wantArgs: []string{"in"},
		},
		{
			name:     "flags after positional",
			args:     []string{"docs", "--format", "storage", "--code-macro", "noformat", "--verbose"},
			want:     convertFlags{common: commonFlags{verbose: true}, format: formatFlags{format: "storage"}, storage: storageFlags{codeMacro: "noformat"}},
			wantArgs: []string{"docs"},
		},
		{
			name: "html group",
			args: []string{"--title", "Guide", "--highlight", "--style", "dracula", "--no-standalone", "--no-highlight"},
			want: convertFlags{html: htmlFlags{
				title: "Guide", highlight: true, style: "dracula", noStandalone: true, noHighlight: true,
			}},
		},
		{
			name: "adf group",
			args: []string{"--indent", "--local-ids", "--watch"},
			want: convertFlags{watch: true, format: formatFlags{indent: true}, adf: adfFlags{localIDs: true}},
		},
		{
			name:     "stdin and stdout",
			args:     []string{"-", "-o", "-"},
			want:     convertFlags{output: "-"},
			wantArgs: []string{"-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, args, err := parseConvertFlags(tt.args, &bytes.Buffer{})
			if err != nil {
				t.Fatalf("parseConvertFlags() error: %v", err)
			}
			opts := cmp.AllowUnexported(convertFlags{}, commonFlags{}, formatFlags{}, htmlFlags{}, storageFlags{}, adfFlags{})
			if diff := cmp.Diff(tt.want, *got, opts); diff != "" {
				t.Errorf("flags mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantArgs, args, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseConvertFlags_Errors - Help and unknown flags
// ---------------------------------------------------------------------------

func TestParseConvertFlags_Errors(t *testing.T) {
	t.Parallel()

	t.Run("help prints convert usage", func(t *testing.T) {
		t.Parallel()

		var usage bytes.Buffer
		_, _, err := parseConvertFlags([]string{"-h"}, &usage)
		if !errors.Is(err, flag.ErrHelp) {
			t.Fatalf("error = %v, want flag.ErrHelp", err)
		}
		if !bytes.Contains(usage.Bytes(), []byte("Usage: md2doc convert")) {
			t.Errorf("usage output = %q", usage.String())
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseConvertFlags([]string{"--page-size", "a4"}, &bytes.Buffer{})
		if err == nil {
			t.Fatal("expected error for unknown flag")
		}
	})

	t.Run("non-numeric workers", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseConvertFlags([]string{"-w", "many"}, &bytes.Buffer{})
		if err == nil {
			t.Fatal("expected error for non-numeric workers")
		}
	})
}
