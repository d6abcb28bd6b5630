package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrMacroRewrite is returned when markup cannot be parsed for rewriting.
var ErrMacroRewrite = errors.New("code macro rewrite failed")

// DefaultCodeMacro is the storage macro name used for code blocks.
const DefaultCodeMacro = "code"

// languageClassPrefix marks the language on <code class="language-x">.
const languageClassPrefix = "language-"

// CodeMacroRewriter defines the contract for turning HTML code blocks into
// storage-format macros.
type CodeMacroRewriter interface {
	RewriteCodeMacros(ctx context.Context, htmlContent string) (string, error)
}

// CodeMacroRewrite replaces every <pre><code> block with a structured macro:
//
//	<ac:structured-macro ac:name="code">
//	  <ac:parameter ac:name="language">go</ac:parameter>
//	  <ac:plain-text-body><![CDATA[...]]></ac:plain-text-body>
//	</ac:structured-macro>
//
// The language parameter is omitted when the block has none.
type CodeMacroRewrite struct {
	Macro string
}

// RewriteCodeMacros parses htmlContent, rewrites code blocks and renders it
// back. Everything outside code blocks is left as the HTML renderer wrote it.
func (r *CodeMacroRewrite) RewriteCodeMacros(ctx context.Context, htmlContent string) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	macro := r.Macro
	if macro == "" {
		macro = DefaultCodeMacro
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMacroRewrite, err)
	}

	rewriteNode(doc, macro)

	out, err := renderHTML(doc, isFragment)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMacroRewrite, err)
	}
	return out, nil
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only the children are rendered.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteNode traverses the DOM and swaps code blocks for macros.
func rewriteNode(n *html.Node, macro string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if code := codeChild(c); code != nil {
			n.InsertBefore(codeMacro(macro, codeLanguage(code), textContent(code)), c)
			n.RemoveChild(c)
		} else {
			rewriteNode(c, macro)
		}
		c = next
	}
}

// codeChild returns the <code> element of a <pre><code> block, or nil.
func codeChild(n *html.Node) *html.Node {
	if n.Type != html.ElementNode || n.DataAtom != atom.Pre {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Code {
			return c
		}
	}
	return nil
}

// codeLanguage reads the language from a "language-x" class.
func codeLanguage(code *html.Node) string {
	for _, attr := range code.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(attr.Val) {
			if lang, ok := strings.CutPrefix(class, languageClassPrefix); ok {
				return lang
			}
		}
	}
	return ""
}

// textContent concatenates all text below n, dropping highlight markup.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// codeMacro builds the structured macro element for one code block.
func codeMacro(macro, language, text string) *html.Node {
	root := element("ac:structured-macro", html.Attribute{Key: "ac:name", Val: macro})
	if language != "" {
		param := element("ac:parameter", html.Attribute{Key: "ac:name", Val: "language"})
		param.AppendChild(&html.Node{Type: html.TextNode, Data: language})
		root.AppendChild(param)
	}
	body := element("ac:plain-text-body")
	body.AppendChild(&html.Node{Type: html.RawNode, Data: CDATA(text)})
	root.AppendChild(body)
	return root
}

func element(name string, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: name, Attr: attrs}
}

// CDATA wraps text in a CDATA section. Occurrences of "]]>" are split
// across two sections so the text survives unchanged.
func CDATA(text string) string {
	return "<![CDATA[" + strings.ReplaceAll(text, "]]>", "]]]]><![CDATA[>") + "]]>"
}
