package parser

import (
	"strings"

	"github.com/alnah/go-md2doc/doctree"
)

// parseTable consumes a pipe table starting at lines[start]. The first row
// is the header. A separator row directly below it is skipped and supplies
// column alignment; when it is missing the first row is still taken as the
// header and every following pipe row is data. Data rows are padded with
// empty cells or truncated to the header width.
func parseTable(lines []string, start int) (table *doctree.Table, consumed int, warnings []Warning) {
	header := splitRow(lines[start])
	width := len(header)
	table = &doctree.Table{Header: toCells(header)}

	i := start + 1
	if i < len(lines) && Classify(lines[i]).Kind == LineSeparator {
		table.Align = parseAlign(lines[i], width)
		i++
	} else {
		warnings = append(warnings, warnf(WarnMissingTableSeparator, start+1,
			"no separator row below table header, first row used as header"))
	}

	for ; i < len(lines); i++ {
		if !isPipeRow(Classify(lines[i])) {
			break
		}
		cells := splitRow(lines[i])
		if len(cells) != width {
			warnings = append(warnings, warnf(WarnRaggedTableRow, i+1,
				"row has %d cells, header has %d", len(cells), width))
			cells = reconcile(cells, width)
		}
		table.Rows = append(table.Rows, toCells(cells))
	}

	return table, i - start, warnings
}

// isPipeRow reports whether l can continue a table body.
func isPipeRow(l Line) bool {
	switch l.Kind {
	case LineTableRow:
		return true
	case LineSeparator:
		return strings.HasPrefix(l.Text, "|")
	default:
		return false
	}
}

// reconcile pads with empty cells or truncates to width.
func reconcile(cells []string, width int) []string {
	if len(cells) > width {
		return cells[:width]
	}
	for len(cells) < width {
		cells = append(cells, "")
	}
	return cells
}

func toCells(texts []string) []doctree.Cell {
	cells := make([]doctree.Cell, len(texts))
	for i, t := range texts {
		cells[i] = doctree.Cell{Content: Tokenize(t)}
	}
	return cells
}

// splitRow splits a pipe row into trimmed cell texts. Outer pipes are
// optional and "\|" is a literal pipe inside a cell.
func splitRow(line string) []string {
	t := strings.TrimSpace(line)
	t = strings.TrimPrefix(t, "|")
	if strings.HasSuffix(t, "|") && !strings.HasSuffix(t, `\|`) {
		t = t[:len(t)-1]
	}

	var cells []string
	var cur strings.Builder
	for i := 0; i < len(t); i++ {
		switch {
		case t[i] == '\\' && i+1 < len(t) && t[i+1] == '|':
			cur.WriteByte('|')
			i++
		case t[i] == '|':
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(t[i])
		}
	}
	return append(cells, strings.TrimSpace(cur.String()))
}

// parseAlign reads column alignment from a separator row.
func parseAlign(line string, width int) []doctree.Align {
	specs := reconcile(splitRow(line), width)
	align := make([]doctree.Align, width)
	for i, s := range specs {
		left := strings.HasPrefix(s, ":")
		right := strings.HasSuffix(s, ":") && len(s) > 1
		switch {
		case left && right:
			align[i] = doctree.AlignCenter
		case left:
			align[i] = doctree.AlignLeft
		case right:
			align[i] = doctree.AlignRight
		}
	}
	return align
}
