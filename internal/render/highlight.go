package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "github"

// Highlighter colors code blocks with chroma. Output uses CSS classes, the
// matching stylesheet comes from CSS.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter returns a highlighter for the named chroma style.
// An empty name selects DefaultStyle.
func NewHighlighter(styleName string) (*Highlighter, error) {
	if styleName == "" {
		styleName = DefaultStyle
	}
	style, ok := styles.Registry[strings.ToLower(styleName)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, styleName)
	}
	return &Highlighter{
		style: style,
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
	}, nil
}

// StyleNames lists the available style names, sorted.
func StyleNames() []string {
	return styles.Names()
}

// Highlight returns code as highlighted markup. ok is false when no lexer
// matches the language or tokenizing fails; callers then emit plain text.
func (h *Highlighter) Highlight(language, code string) (markup string, ok bool) {
	if language == "" {
		return "", false
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", false
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, iterator); err != nil {
		return "", false
	}
	return sb.String(), true
}

// CSS returns the stylesheet for the highlighter's classes.
func (h *Highlighter) CSS() (string, error) {
	var sb strings.Builder
	if err := h.formatter.WriteCSS(&sb, h.style); err != nil {
		return "", fmt.Errorf("%w: writing highlight CSS: %v", ErrRender, err)
	}
	return sb.String(), nil
}
