package md2doc

// Notes:
// - Format: tests name resolution, aliases, validation and extensions.
// - Warning: tests the display form used by the CLI.

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFormat - Names and aliases
// ---------------------------------------------------------------------------

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Format
		wantErr error
	}{
		{"adf", FormatADF, nil},
		{"json", FormatADF, nil},
		{"HTML", FormatHTML, nil},
		{" storage ", FormatStorage, nil},
		{"xhtml", FormatStorage, nil},
		{"", "", ErrInvalidFormat},
		{"pdf", "", ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseFormat(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFormat_Validate - Known formats only
// ---------------------------------------------------------------------------

func TestFormat_Validate(t *testing.T) {
	t.Parallel()

	for _, f := range Formats() {
		if err := f.Validate(); err != nil {
			t.Errorf("%s.Validate() error = %v", f, err)
		}
	}
	if err := Format("").Validate(); err != nil {
		t.Errorf("empty format should be valid, got %v", err)
	}
	// Aliases resolve through ParseFormat, not Validate.
	if err := Format("json").Validate(); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Format(json).Validate() error = %v, want ErrInvalidFormat", err)
	}
}

// ---------------------------------------------------------------------------
// TestFormat_Extension - Output file extensions
// ---------------------------------------------------------------------------

func TestFormat_Extension(t *testing.T) {
	t.Parallel()

	tests := map[Format]string{
		FormatADF:     ".json",
		FormatHTML:    ".html",
		FormatStorage: ".xhtml",
		Format("x"):   "",
	}
	for f, want := range tests {
		if got := f.Extension(); got != want {
			t.Errorf("%q.Extension() = %q, want %q", f, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWarning_String - Display form
// ---------------------------------------------------------------------------

func TestWarning_String(t *testing.T) {
	t.Parallel()

	w := Warning{Kind: "ragged_table_row", Line: 7, Message: "row has 1 cells, header has 2"}
	want := "line 7: ragged_table_row: row has 1 cells, header has 2"
	if got := w.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestToWarnings_Empty(t *testing.T) {
	t.Parallel()

	if got := toWarnings(nil); got != nil {
		t.Errorf("toWarnings(nil) = %v, want nil", got)
	}
}

// ---------------------------------------------------------------------------
// TestHighlightStyles - Style registry is exposed
// ---------------------------------------------------------------------------

func TestHighlightStyles(t *testing.T) {
	t.Parallel()

	names := HighlightStyles()
	found := false
	for _, n := range names {
		if n == "github" {
			found = true
		}
	}
	if !found {
		t.Errorf("HighlightStyles() missing default style, got %d names", len(names))
	}
}
