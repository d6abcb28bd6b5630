package md2doc

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/alnah/go-md2doc/doctree"
	"github.com/alnah/go-md2doc/internal/parser"
	"github.com/alnah/go-md2doc/internal/render"
)

// Format names an output format.
type Format string

// Output formats.
const (
	FormatADF     Format = "adf"     // JSON document tree
	FormatHTML    Format = "html"    // HTML fragment or standalone page
	FormatStorage Format = "storage" // HTML with structured code macros
)

// DefaultFormat is used when no format is configured.
const DefaultFormat = FormatADF

var formatAliases = map[string]Format{
	"adf":     FormatADF,
	"json":    FormatADF,
	"html":    FormatHTML,
	"storage": FormatStorage,
	"xhtml":   FormatStorage,
}

var formatExtensions = map[Format]string{
	FormatADF:     ".json",
	FormatHTML:    ".html",
	FormatStorage: ".xhtml",
}

// Formats returns the supported formats in display order.
func Formats() []Format {
	return []Format{FormatADF, FormatHTML, FormatStorage}
}

// ParseFormat resolves a format name or alias, case-insensitively.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (must be adf, html, or storage)", ErrInvalidFormat, s)
}

// Validate checks that f is a known format. The empty format is valid and
// means the converter default.
func (f Format) Validate() error {
	if f == "" {
		return nil
	}
	if _, ok := formatExtensions[f]; !ok {
		return fmt.Errorf("%w: %q (must be adf, html, or storage)", ErrInvalidFormat, string(f))
	}
	return nil
}

// Extension returns the file extension for output in format f.
func (f Format) Extension() string {
	return formatExtensions[f]
}

// HighlightStyles lists the style names accepted by WithHighlighting.
func HighlightStyles() []string {
	return render.StyleNames()
}

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content, may be empty
	Format   Format // Output format (optional, converter default when empty)
	Title    string // Standalone HTML title (optional, first heading when empty)
}

// ConvertResult is the outcome of one conversion.
type ConvertResult struct {
	Document *doctree.Document // Parsed tree the output was rendered from
	Output   []byte            // Serialized document
	Format   Format            // Format of Output
	Warnings []Warning         // Fallbacks applied while parsing
}

// Warning reports an ambiguous or malformed construct that was resolved
// leniently. Warnings never fail a conversion.
type Warning struct {
	Kind    string // unterminated_fence, missing_table_separator, ragged_table_row, ambiguous_indent, orphan_separator
	Line    int    // 1-based source line
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s: %s", w.Line, w.Kind, w.Message)
}

func toWarnings(ws []parser.Warning) []Warning {
	if len(ws) == 0 {
		return nil
	}
	out := make([]Warning, len(ws))
	for i, w := range ws {
		out[i] = Warning{Kind: w.Kind.String(), Line: w.Line, Message: w.Message}
	}
	return out
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	format     Format
	highlight  bool
	style      string
	standalone bool
	title      string
	indent     bool
	codeMacro  string
	localIDs   func() string
	theme      string
	assetPath  string
}

// WithFormat sets the default output format.
func WithFormat(f Format) Option {
	return func(c *Converter) {
		c.cfg.format = f
	}
}

// WithLogger sets the logger for conversion diagnostics. Parse warnings
// are logged at debug level. Nil restores the default, which discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = l
	}
}

// WithHighlighting enables chroma syntax highlighting of HTML code blocks
// with the named style. An empty style selects the default style.
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.style = style
	}
}

// WithStandaloneHTML wraps HTML output in a complete page with the given
// title. An empty title falls back to the first heading.
func WithStandaloneHTML(title string) Option {
	return func(c *Converter) {
		c.cfg.standalone = true
		c.cfg.title = title
	}
}

// WithIndent pretty-prints JSON output.
func WithIndent(indent bool) Option {
	return func(c *Converter) {
		c.cfg.indent = indent
	}
}

// WithCodeMacro sets the macro name used for code blocks in storage output.
func WithCodeMacro(name string) Option {
	return func(c *Converter) {
		c.cfg.codeMacro = name
	}
}

// WithLocalIDs adds a localId attribute to every table in JSON output.
// IDs come from gen, or are random UUIDs when gen is nil.
func WithLocalIDs(gen func() string) Option {
	return func(c *Converter) {
		if gen == nil {
			gen = newUUID
		}
		c.cfg.localIDs = gen
	}
}

// WithTheme applies a page theme stylesheet to standalone HTML output.
// Built-in themes are listed by Themes; WithAssetPath or WithAssetLoader
// add custom ones.
func WithTheme(name string) Option {
	return func(c *Converter) {
		c.cfg.theme = name
	}
}

// WithAssetPath loads themes from {path}/themes/{name}.css, falling back
// to the built-in themes.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom theme loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(l AssetLoader) Option {
	return func(c *Converter) {
		c.assetLoader = l
	}
}
