package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2doc/doctree"
)

var headingAtoms = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

var spanAtoms = map[doctree.Mark]atom.Atom{
	doctree.MarkBold:   atom.Strong,
	doctree.MarkItalic: atom.Em,
	doctree.MarkCode:   atom.Code,
}

var alignStyles = map[doctree.Align]string{
	doctree.AlignLeft:   "text-align: left",
	doctree.AlignCenter: "text-align: center",
	doctree.AlignRight:  "text-align: right",
}

// HTMLRenderer writes an HTML fragment. The markup is built as a node tree
// and serialized by the html package, so all text is escaped.
type HTMLRenderer struct {
	// Highlighter, when set, colors code blocks whose language chroma knows.
	Highlighter *Highlighter
}

// Render writes one top-level element per block, separated by newlines.
func (r *HTMLRenderer) Render(ctx context.Context, doc *doctree.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for _, b := range doc.Children {
		if err := html.Render(&buf, r.block(b)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRender, err)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func (r *HTMLRenderer) block(b doctree.Block) *html.Node {
	switch n := b.(type) {
	case *doctree.Heading:
		level := min(max(n.Level, 1), len(headingAtoms))
		h := element(headingAtoms[level-1])
		appendSpans(h, n.Content)
		return h
	case *doctree.Paragraph:
		p := element(atom.P)
		appendSpans(p, n.Content)
		return p
	case *doctree.CodeBlock:
		return r.codeBlock(n)
	case *doctree.List:
		return list(n)
	case *doctree.Table:
		return table(n)
	default:
		panic(fmt.Sprintf("render: unexpected block %T", b))
	}
}

func (r *HTMLRenderer) codeBlock(cb *doctree.CodeBlock) *html.Node {
	pre := element(atom.Pre)
	var codeAttrs []html.Attribute
	if cb.Language != "" {
		codeAttrs = append(codeAttrs, html.Attribute{Key: "class", Val: "language-" + cb.Language})
	}
	code := element(atom.Code, codeAttrs...)
	pre.AppendChild(code)

	if r.Highlighter != nil {
		if markup, ok := r.Highlighter.Highlight(cb.Language, cb.Text); ok {
			pre.Attr = append(pre.Attr, html.Attribute{Key: "class", Val: "chroma"})
			code.AppendChild(&html.Node{Type: html.RawNode, Data: markup})
			return pre
		}
	}
	code.AppendChild(text(cb.Text))
	return pre
}

func list(l *doctree.List) *html.Node {
	var el *html.Node
	if l.Ordered {
		el = element(atom.Ol)
		if l.Start != 1 {
			el.Attr = append(el.Attr, html.Attribute{Key: "start", Val: strconv.Itoa(l.Start)})
		}
	} else {
		el = element(atom.Ul)
	}
	for _, it := range l.Items {
		li := element(atom.Li)
		appendSpans(li, it.Content)
		for _, sub := range it.Lists {
			li.AppendChild(list(sub))
		}
		el.AppendChild(li)
	}
	return el
}

func table(t *doctree.Table) *html.Node {
	tbl := element(atom.Table)

	thead := element(atom.Thead)
	thead.AppendChild(row(t, t.Header, atom.Th))
	tbl.AppendChild(thead)

	if len(t.Rows) > 0 {
		tbody := element(atom.Tbody)
		for _, cells := range t.Rows {
			tbody.AppendChild(row(t, cells, atom.Td))
		}
		tbl.AppendChild(tbody)
	}
	return tbl
}

func row(t *doctree.Table, cells []doctree.Cell, cellAtom atom.Atom) *html.Node {
	tr := element(atom.Tr)
	for i, c := range cells {
		var attrs []html.Attribute
		if style, ok := alignStyles[t.ColumnAlign(i)]; ok {
			attrs = append(attrs, html.Attribute{Key: "style", Val: style})
		}
		cell := element(cellAtom, attrs...)
		appendSpans(cell, c.Content)
		tr.AppendChild(cell)
	}
	return tr
}

// appendSpans adds inline spans to parent; empty spans are skipped.
func appendSpans(parent *html.Node, spans []doctree.Span) {
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		a, marked := spanAtoms[s.Mark]
		if !marked {
			parent.AppendChild(text(s.Text))
			continue
		}
		el := element(a)
		el.AppendChild(text(s.Text))
		parent.AppendChild(el)
	}
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
