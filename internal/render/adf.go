package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/alnah/go-md2doc/doctree"
)

// adfVersion is the document format version written on the root node.
const adfVersion = 1

// adfNode is one node of the JSON document format.
type adfNode struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []*adfNode     `json:"content,omitempty"`
	Text    string         `json:"text,omitempty"`
	Marks   []adfMark      `json:"marks,omitempty"`
}

type adfMark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// adfDoc is the root node; content is always present, even when empty.
type adfDoc struct {
	Type    string     `json:"type"`
	Version int        `json:"version"`
	Content []*adfNode `json:"content"`
}

var adfMarkNames = map[doctree.Mark]string{
	doctree.MarkBold:   "strong",
	doctree.MarkItalic: "em",
	doctree.MarkCode:   "code",
}

// ADFRenderer writes the JSON document format.
type ADFRenderer struct {
	// Indent pretty-prints the output with two-space indentation.
	Indent bool

	// LocalID, when set, generates the attrs.localId of every table.
	LocalID func() string
}

// Render encodes doc. Output ends with a newline.
func (r *ADFRenderer) Render(ctx context.Context, doc *doctree.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := adfDoc{Type: doctree.KindDocument.String(), Version: adfVersion, Content: []*adfNode{}}
	for _, b := range doc.Children {
		root.Content = append(root.Content, r.block(b))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

func (r *ADFRenderer) block(b doctree.Block) *adfNode {
	switch n := b.(type) {
	case *doctree.Heading:
		return &adfNode{
			Type:    n.Kind().String(),
			Attrs:   map[string]any{"level": n.Level},
			Content: adfInline(n.Content),
		}
	case *doctree.Paragraph:
		return adfParagraph(n.Content, doctree.AlignNone)
	case *doctree.CodeBlock:
		node := &adfNode{Type: n.Kind().String()}
		if n.Language != "" {
			node.Attrs = map[string]any{"language": n.Language}
		}
		if n.Text != "" {
			node.Content = []*adfNode{{Type: "text", Text: n.Text}}
		}
		return node
	case *doctree.List:
		return r.list(n)
	case *doctree.Table:
		return r.table(n)
	default:
		panic(fmt.Sprintf("render: unexpected block %T", b))
	}
}

func (r *ADFRenderer) list(l *doctree.List) *adfNode {
	node := &adfNode{Type: l.Kind().String()}
	if l.Ordered {
		node.Attrs = map[string]any{"order": l.Start}
	}
	for _, it := range l.Items {
		item := &adfNode{
			Type:    it.Kind().String(),
			Content: []*adfNode{adfParagraph(it.Content, doctree.AlignNone)},
		}
		for _, sub := range it.Lists {
			item.Content = append(item.Content, r.list(sub))
		}
		node.Content = append(node.Content, item)
	}
	return node
}

func (r *ADFRenderer) table(t *doctree.Table) *adfNode {
	attrs := map[string]any{
		"isNumberColumnEnabled": false,
		"layout":                "default",
	}
	if r.LocalID != nil {
		attrs["localId"] = r.LocalID()
	}
	node := &adfNode{Type: t.Kind().String(), Attrs: attrs}
	node.Content = append(node.Content, adfRow(t, t.Header, "tableHeader"))
	for _, row := range t.Rows {
		node.Content = append(node.Content, adfRow(t, row, "tableCell"))
	}
	return node
}

func adfRow(t *doctree.Table, cells []doctree.Cell, cellType string) *adfNode {
	row := &adfNode{Type: "tableRow"}
	for i, c := range cells {
		row.Content = append(row.Content, &adfNode{
			Type:    cellType,
			Content: []*adfNode{adfParagraph(c.Content, t.ColumnAlign(i))},
		})
	}
	return row
}

// adfParagraph wraps spans in a paragraph. Right and center alignment are
// written as an alignment mark, the format's only cell alignment carrier.
func adfParagraph(spans []doctree.Span, align doctree.Align) *adfNode {
	p := &adfNode{Type: doctree.KindParagraph.String(), Content: adfInline(spans)}
	switch align {
	case doctree.AlignCenter:
		p.Marks = []adfMark{{Type: "alignment", Attrs: map[string]any{"align": "center"}}}
	case doctree.AlignRight:
		p.Marks = []adfMark{{Type: "alignment", Attrs: map[string]any{"align": "end"}}}
	}
	return p
}

// adfInline converts spans to text nodes. Empty spans are dropped since
// the format rejects empty text.
func adfInline(spans []doctree.Span) []*adfNode {
	var out []*adfNode
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		node := &adfNode{Type: "text", Text: s.Text}
		if name, ok := adfMarkNames[s.Mark]; ok {
			node.Marks = []adfMark{{Type: name}}
		}
		out = append(out, node)
	}
	return out
}
