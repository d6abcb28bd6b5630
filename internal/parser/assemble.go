package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-md2doc/doctree"
)

// Result is a parsed document and the fallbacks applied to produce it.
type Result struct {
	Document *doctree.Document
	Warnings []Warning
}

// Parse converts Markdown text into a document tree. It never fails on
// input content; ambiguous constructs are resolved and reported as
// warnings. A non-advancing block reader panics with *InvariantError.
func Parse(src string) *Result {
	a := &assembler{
		lines: SplitLines(src),
		doc:   &doctree.Document{},
	}
	a.run()
	return &Result{Document: a.doc, Warnings: a.warnings}
}

// ParseReader reads all of r and parses it. A nil reader is an error since
// no document can be produced from it.
func ParseReader(r io.Reader) (*Result, error) {
	if r == nil {
		return nil, ErrNilSource
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return Parse(string(data)), nil
}

// SplitLines splits src on "\n". A final newline ends the last line and
// does not start an empty one.
func SplitLines(src string) []string {
	if src == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(src, "\n"), "\n")
}

// assembler drives the line cursor and buffers paragraph text.
type assembler struct {
	lines    []string
	doc      *doctree.Document
	para     []string
	warnings []Warning
}

func (a *assembler) run() {
	for i := 0; i < len(a.lines); {
		n := a.step(i, Classify(a.lines[i]))
		if n < 1 || i+n > len(a.lines) {
			panic(&InvariantError{Line: i + 1, Consumed: n, Reason: "block reader did not advance within input"})
		}
		i += n
	}
	a.flush()
}

// step handles the block starting at lines[i] and returns the number of
// lines it consumed.
func (a *assembler) step(i int, l Line) int {
	switch l.Kind {
	case LineBlank:
		a.flush()
		return 1

	case LineHeading:
		a.flush()
		a.emit(&doctree.Heading{Level: l.Level, Content: Tokenize(l.Text)})
		return 1

	case LineFence:
		a.flush()
		block, n, terminated := readFence(a.lines, i, l)
		if !terminated {
			a.warn(warnf(WarnUnterminatedFence, i+1, "code fence %q is never closed, block runs to end of input", l.Fence))
		}
		a.emit(block)
		return n

	case LineBullet, LineOrdered:
		a.flush()
		list, n, warnings := parseList(a.lines, i)
		a.warn(warnings...)
		a.emit(list)
		return n

	case LineTableRow:
		a.flush()
		table, n, warnings := parseTable(a.lines, i)
		a.warn(warnings...)
		a.emit(table)
		return n

	case LineSeparator:
		a.warn(warnf(WarnOrphanSeparator, i+1, "separator row without a table header, kept as text"))
		a.para = append(a.para, l.Text)
		return 1

	default:
		a.para = append(a.para, l.Text)
		return 1
	}
}

// flush turns buffered lines into one paragraph.
func (a *assembler) flush() {
	if len(a.para) == 0 {
		return
	}
	a.emit(&doctree.Paragraph{Content: Tokenize(strings.Join(a.para, " "))})
	a.para = a.para[:0]
}

func (a *assembler) emit(b doctree.Block) {
	a.doc.Children = append(a.doc.Children, b)
}

func (a *assembler) warn(w ...Warning) {
	a.warnings = append(a.warnings, w...)
}
