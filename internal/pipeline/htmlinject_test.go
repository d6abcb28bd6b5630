package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"no escape needed", ".chroma .k { color: #00f }", ".chroma .k { color: #00f }"},
		{"escapes style close", "</style>", `<\/style>`},
		{"escapes every occurrence", "</a></B>", `<\/a><\/B>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sanitizeCSS(tt.input); got != tt.expected {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	const css = ".chroma { background: #fff }"

	tests := []struct {
		name     string
		html     string
		css      string
		expected string
	}{
		{
			name:     "empty CSS returns HTML unchanged",
			html:     "<html><head></head><body>x</body></html>",
			expected: "<html><head></head><body>x</body></html>",
		},
		{
			name:     "injects before </head>",
			html:     "<html><head><title>t</title></head><body>x</body></html>",
			css:      css,
			expected: "<html><head><title>t</title><style>" + css + "</style></head><body>x</body></html>",
		},
		{
			name:     "injects after <body> with attributes",
			html:     `<html><BODY class="doc">x</BODY></html>`,
			css:      css,
			expected: `<html><BODY class="doc"><style>` + css + `</style>x</BODY></html>`,
		},
		{
			name:     "prepends to bare fragment",
			html:     "<p>x</p>",
			css:      css,
			expected: "<style>" + css + "</style><p>x</p>",
		},
		{
			name:     "sanitizes closing tags",
			html:     "<head></head>",
			css:      "</style><script>",
			expected: `<head><style><\/style><script></style></head>`,
		},
	}

	injector := &CSSInjection{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injector.InjectCSS(context.Background(), tt.html, tt.css)
			if got != tt.expected {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInjectCSS_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	html := "<html><head></head><body>x</body></html>"
	if got := (&CSSInjection{}).InjectCSS(ctx, html, "p{}"); got != html {
		t.Errorf("InjectCSS() with cancelled context should return HTML unchanged, got %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestWrapDocument - Standalone page skeleton
// ---------------------------------------------------------------------------

func TestWrapDocument(t *testing.T) {
	t.Parallel()

	w := NewDocumentWrap()
	got, err := w.WrapDocument(context.Background(), &DocumentData{
		Title: "Q&A <draft>",
		Body:  "<h1>Q&amp;A</h1>",
	})
	if err != nil {
		t.Fatalf("WrapDocument() error = %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Q&amp;A &lt;draft&gt;</title>",
		"<body>\n<h1>Q&amp;A</h1>\n</body>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("WrapDocument() missing %q in:\n%s", want, got)
		}
	}

	// The wrapped page accepts the stylesheet before </head>.
	styled := (&CSSInjection{}).InjectCSS(context.Background(), got, "p{}")
	if !strings.Contains(styled, "<style>p{}</style></head>") {
		t.Errorf("CSS not injected into head:\n%s", styled)
	}
}

func TestWrapDocument_Lang(t *testing.T) {
	t.Parallel()

	got, err := NewDocumentWrap().WrapDocument(context.Background(), &DocumentData{Lang: "fr"})
	if err != nil {
		t.Fatalf("WrapDocument() error = %v", err)
	}
	if !strings.Contains(got, `<html lang="fr">`) {
		t.Errorf("lang attribute not set:\n%s", got)
	}
}

func TestWrapDocument_Errors(t *testing.T) {
	t.Parallel()

	w := NewDocumentWrap()
	if _, err := w.WrapDocument(context.Background(), nil); !errors.Is(err, ErrDocumentRender) {
		t.Errorf("nil data: error = %v, want ErrDocumentRender", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := w.WrapDocument(ctx, &DocumentData{}); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: error = %v, want context.Canceled", err)
	}
}
