// Package doctree defines the document tree produced by parsing Markdown.
//
// A tree is built once by a single parse and is treated as read-only
// afterwards: renderers walk it, they never modify it. Children are
// order-significant and nodes never reference each other outside of the
// parent/child relation, so independent goroutines may traverse the same
// tree concurrently.
package doctree

import (
	"strings"
	"unicode/utf8"
)

// Kind identifies the type of a node. Its string form is the discriminator
// used by the JSON tree format.
type Kind int

const (
	KindDocument Kind = iota
	KindHeading
	KindParagraph
	KindCodeBlock
	KindBulletList
	KindOrderedList
	KindListItem
	KindTable
)

var kindNames = [...]string{
	KindDocument:    "doc",
	KindHeading:     "heading",
	KindParagraph:   "paragraph",
	KindCodeBlock:   "codeBlock",
	KindBulletList:  "bulletList",
	KindOrderedList: "orderedList",
	KindListItem:    "listItem",
	KindTable:       "table",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Node is implemented by every tree node. The interface is sealed.
type Node interface {
	Kind() Kind
	node()
}

// Block is a top-level structural unit: heading, paragraph, list, table or
// code block.
type Block interface {
	Node
	block()
}

// Document is the root of a parsed tree.
type Document struct {
	Children []Block
}

// Heading is an ATX heading. Level is between 1 and 6.
type Heading struct {
	Level   int
	Content []Span
}

// Paragraph is a run of text lines joined with single spaces.
type Paragraph struct {
	Content []Span
}

// CodeBlock holds fenced code verbatim, blank lines included.
type CodeBlock struct {
	Language string
	Text     string
}

// List is a bullet or ordered list. Start is the number of the first
// ordered item and is zero for bullet lists.
type List struct {
	Ordered bool
	Start   int
	Items   []*ListItem
}

// ListItem carries exactly one primary inline payload and zero or more
// nested lists, in source order.
type ListItem struct {
	Content []Span
	Lists   []*List
}

// Align is a table column alignment taken from the separator row.
type Align int

const (
	AlignNone Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

// Cell is one table cell.
type Cell struct {
	Content []Span
}

// Table has a header row and data rows. Every row has exactly len(Header)
// cells; Align is either empty or has one entry per column.
type Table struct {
	Header []Cell
	Rows   [][]Cell
	Align  []Align
}

func (*Document) Kind() Kind  { return KindDocument }
func (*Heading) Kind() Kind   { return KindHeading }
func (*Paragraph) Kind() Kind { return KindParagraph }
func (*CodeBlock) Kind() Kind { return KindCodeBlock }
func (*ListItem) Kind() Kind  { return KindListItem }
func (*Table) Kind() Kind     { return KindTable }

func (l *List) Kind() Kind {
	if l.Ordered {
		return KindOrderedList
	}
	return KindBulletList
}

func (*Document) node()  {}
func (*Heading) node()   {}
func (*Paragraph) node() {}
func (*CodeBlock) node() {}
func (*List) node()      {}
func (*ListItem) node()  {}
func (*Table) node()     {}

func (*Heading) block()   {}
func (*Paragraph) block() {}
func (*CodeBlock) block() {}
func (*List) block()      {}
func (*Table) block()     {}

// Text returns the item's primary text without formatting.
func (li *ListItem) Text() string {
	return PlainText(li.Content)
}

// Text returns the cell text without formatting.
func (c Cell) Text() string {
	return PlainText(c.Content)
}

// Columns returns the table width.
func (t *Table) Columns() int {
	return len(t.Header)
}

// ColumnAlign returns the alignment of column i, AlignNone when unknown.
func (t *Table) ColumnAlign(i int) Align {
	if i < 0 || i >= len(t.Align) {
		return AlignNone
	}
	return t.Align[i]
}

// HeaderText returns the header cell texts.
func (t *Table) HeaderText() []string {
	out := make([]string, len(t.Header))
	for i, c := range t.Header {
		out[i] = c.Text()
	}
	return out
}

// RowText returns the data cell texts, row by row.
func (t *Table) RowText() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = c.Text()
		}
		out[i] = cells
	}
	return out
}

// joinText concatenates the text of consecutive spans.
func joinText(spans []Span, literal bool) string {
	var sb strings.Builder
	for i, s := range spans {
		if !literal {
			sb.WriteString(s.Text)
			continue
		}
		prev, _ := utf8.DecodeLastRuneInString(sb.String())
		next := utf8.RuneError
		if i+1 < len(spans) && spans[i+1].Mark == MarkNone {
			next, _ = utf8.DecodeRuneInString(spans[i+1].Text)
		}
		sb.WriteString(s.literal(prev, next))
	}
	return sb.String()
}
