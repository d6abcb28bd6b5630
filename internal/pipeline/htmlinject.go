package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrDocumentRender is returned when the standalone document template fails.
var ErrDocumentRender = errors.New("document template rendering failed")

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}
	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// DocumentData describes the standalone HTML page around a fragment.
type DocumentData struct {
	Title string
	Lang  string
	Body  string
}

// DocumentWrapper defines the contract for wrapping a fragment in a page.
type DocumentWrapper interface {
	WrapDocument(ctx context.Context, data *DocumentData) (string, error)
}

// DocumentWrap renders an HTML5 page skeleton around a rendered fragment.
type DocumentWrap struct {
	tmpl *template.Template
}

const documentTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}
</body>
</html>
`

// NewDocumentWrap parses the page template.
func NewDocumentWrap() *DocumentWrap {
	return &DocumentWrap{tmpl: template.Must(template.New("document").Parse(documentTemplate))}
}

// WrapDocument renders data into a full page. The body is trusted markup
// produced by the HTML renderer; title and language are escaped.
func (w *DocumentWrap) WrapDocument(ctx context.Context, data *DocumentData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("%w: no document data", ErrDocumentRender)
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	lang := data.Lang
	if lang == "" {
		lang = "en"
	}

	var buf bytes.Buffer
	err := w.tmpl.Execute(&buf, struct {
		Title string
		Lang  string
		Body  template.HTML
	}{
		Title: data.Title,
		Lang:  lang,
		Body:  template.HTML(data.Body), // #nosec G203 -- renderer output is escaped by construction
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}
