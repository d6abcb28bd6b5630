package md2doc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"

	"github.com/google/uuid"

	"github.com/alnah/go-md2doc/doctree"
	"github.com/alnah/go-md2doc/internal/parser"
	"github.com/alnah/go-md2doc/internal/pipeline"
	"github.com/alnah/go-md2doc/internal/render"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.DocumentWrapper      = (*pipeline.DocumentWrap)(nil)
	_ pipeline.CodeMacroRewriter    = (*pipeline.CodeMacroRewrite)(nil)
)

// defaultTitle is the standalone page title when nothing better is known.
const defaultTitle = "Document"

// macroNamePattern bounds code macro names to what storage markup accepts
// in an attribute without escaping surprises.
var macroNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]{0,63}$`)

// Converter orchestrates the markdown-to-document pipeline.
// Create with NewConverter and use Convert for conversion.
type Converter struct {
	cfg          converterConfig
	logger       *slog.Logger
	preprocessor pipeline.MarkdownPreprocessor
	renderers    map[Format]render.Renderer
	highlighter  *render.Highlighter
	wrapper      pipeline.DocumentWrapper
	cssInjector  pipeline.CSSInjector
	assetLoader  AssetLoader
	themeCSS     string
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithFormat, WithHighlighting).
// Returns error if an option value is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{format: DefaultFormat},
		preprocessor: &pipeline.SourcePreprocessor{},
		wrapper:      pipeline.NewDocumentWrap(),
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	if c.cfg.format == "" {
		c.cfg.format = DefaultFormat
	}
	if err := c.cfg.format.Validate(); err != nil {
		return nil, err
	}

	if c.cfg.codeMacro != "" && !macroNamePattern.MatchString(c.cfg.codeMacro) {
		return nil, fmt.Errorf("%w: %q (lowercase letters, digits and dashes)", ErrInvalidMacroName, c.cfg.codeMacro)
	}

	if c.cfg.highlight {
		h, err := render.NewHighlighter(c.cfg.style)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, c.cfg.style)
		}
		c.highlighter = h
	}

	if err := c.resolveTheme(); err != nil {
		return nil, err
	}

	// Renderers may already be injected by tests.
	if c.renderers == nil {
		c.renderers = map[Format]render.Renderer{
			FormatADF:     &render.ADFRenderer{Indent: c.cfg.indent, LocalID: c.cfg.localIDs},
			FormatHTML:    &render.HTMLRenderer{Highlighter: c.highlighter},
			FormatStorage: &render.StorageRenderer{Macro: c.cfg.codeMacro},
		}
	}

	return c, nil
}

// Convert runs the full pipeline and returns the parsed tree with its
// serialized output. The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInternal, r)
			c.logger.Error("conversion aborted", "error", err)
		}
	}()

	format := input.Format
	if format == "" {
		format = c.cfg.format
	}
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Preprocess markdown
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Parse
	parsed := parser.Parse(mdContent)
	warnings := toWarnings(parsed.Warnings)
	for _, w := range warnings {
		c.logger.Debug("parse warning", "kind", w.Kind, "line", w.Line, "message", w.Message)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Render
	renderer, ok := c.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: no renderer for %q", ErrInvalidFormat, string(format))
	}
	out, err := renderer.Render(ctx, parsed.Document)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", format, err)
	}

	// Wrap standalone HTML
	if format == FormatHTML && c.cfg.standalone {
		out, err = c.standalone(ctx, parsed.Document, out, input.Title)
		if err != nil {
			return nil, err
		}
	}

	c.logger.Debug("converted",
		"format", string(format),
		"blocks", len(parsed.Document.Children),
		"bytes", len(out),
		"warnings", len(warnings),
	)

	return &ConvertResult{
		Document: parsed.Document,
		Output:   out,
		Format:   format,
		Warnings: warnings,
	}, nil
}

// ConvertReader reads all of r and converts it.
func (c *Converter) ConvertReader(ctx context.Context, r io.Reader, format Format) (*ConvertResult, error) {
	if r == nil {
		return nil, ErrNilSource
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return c.Convert(ctx, Input{Markdown: string(data), Format: format})
}

// resolveTheme loads the page theme stylesheet when one is configured.
func (c *Converter) resolveTheme() error {
	if c.cfg.theme == "" {
		return nil
	}
	if c.assetLoader == nil {
		loader, err := NewAssetLoader(c.cfg.assetPath)
		if err != nil {
			return err
		}
		c.assetLoader = loader
	}
	css, err := c.assetLoader.LoadTheme(c.cfg.theme)
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}
	c.themeCSS = css
	return nil
}

// standalone wraps an HTML fragment in a page and injects the theme and
// highlight stylesheets.
func (c *Converter) standalone(ctx context.Context, doc *doctree.Document, fragment []byte, title string) ([]byte, error) {
	if title == "" {
		title = c.cfg.title
	}
	if title == "" {
		title = firstHeading(doc)
	}

	page, err := c.wrapper.WrapDocument(ctx, &pipeline.DocumentData{Title: title, Body: string(fragment)})
	if err != nil {
		return nil, fmt.Errorf("wrapping document: %w", err)
	}

	page = c.cssInjector.InjectCSS(ctx, page, c.themeCSS)
	if c.highlighter != nil {
		css, err := c.highlighter.CSS()
		if err != nil {
			return nil, err
		}
		page = c.cssInjector.InjectCSS(ctx, page, css)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(page), nil
}

// firstHeading returns the text of the first heading, preferring level 1.
func firstHeading(doc *doctree.Document) string {
	var first string
	for _, b := range doc.Children {
		h, ok := b.(*doctree.Heading)
		if !ok {
			continue
		}
		if h.Level == 1 {
			return doctree.PlainText(h.Content)
		}
		if first == "" {
			first = doctree.PlainText(h.Content)
		}
	}
	if first == "" {
		return defaultTitle
	}
	return first
}

// Parse preprocesses and parses markdown without rendering.
func Parse(markdown string) (doc *doctree.Document, warnings []Warning, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	src := (&pipeline.SourcePreprocessor{}).PreprocessMarkdown(context.Background(), markdown)
	parsed := parser.Parse(src)
	return parsed.Document, toWarnings(parsed.Warnings), nil
}

func newUUID() string {
	return uuid.NewString()
}
