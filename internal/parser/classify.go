package parser

import "strings"

// LineKind is the block-start classification of a single line.
type LineKind int

const (
	LineBlank LineKind = iota
	LinePlain
	LineHeading
	LineFence
	LineBullet
	LineOrdered
	LineTableRow
	LineSeparator
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LinePlain:
		return "plain"
	case LineHeading:
		return "heading"
	case LineFence:
		return "fence"
	case LineBullet:
		return "bullet"
	case LineOrdered:
		return "ordered"
	case LineTableRow:
		return "table_row"
	case LineSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// maxOrderedDigits bounds ordered markers so the number fits an int.
const maxOrderedDigits = 9

// Line is the result of classifying one raw line.
type Line struct {
	Kind   LineKind
	Indent int    // leading space and tab bytes; tabs are not expanded
	Level  int    // heading level (LineHeading)
	Number int    // marker number (LineOrdered)
	Fence  string // opening fence run (LineFence)
	Info   string // fence info string (LineFence)
	Text   string // heading or item text after the marker, else the trimmed line
}

// IsListItem reports whether the line starts a bullet or ordered item.
func (l Line) IsListItem() bool {
	return l.Kind == LineBullet || l.Kind == LineOrdered
}

// Classify inspects one raw line. It has no side effects.
func Classify(raw string) Line {
	indent := leadingIndent(raw)
	body := strings.TrimRight(raw[indent:], " \t")
	if body == "" {
		return Line{Kind: LineBlank, Indent: indent}
	}

	if fence, info, ok := fenceOpen(body); ok {
		return Line{Kind: LineFence, Indent: indent, Fence: fence, Info: info, Text: body}
	}
	if level, text, ok := atxHeading(body); ok {
		return Line{Kind: LineHeading, Indent: indent, Level: level, Text: text}
	}
	if text, ok := bulletItem(body); ok {
		return Line{Kind: LineBullet, Indent: indent, Text: text}
	}
	if n, text, ok := orderedItem(body); ok {
		return Line{Kind: LineOrdered, Indent: indent, Number: n, Text: text}
	}
	if isSeparatorRow(body) {
		return Line{Kind: LineSeparator, Indent: indent, Text: body}
	}
	if body[0] == '|' {
		return Line{Kind: LineTableRow, Indent: indent, Text: body}
	}
	return Line{Kind: LinePlain, Indent: indent, Text: body}
}

func leadingIndent(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

// fenceOpen matches ``` or ~~~ (three or more) with an optional info string.
// Backtick fences may not carry backticks in their info string.
func fenceOpen(body string) (fence, info string, ok bool) {
	c := body[0]
	if c != '`' && c != '~' {
		return "", "", false
	}
	n := runLength(body, 0, c)
	if n < 3 {
		return "", "", false
	}
	info = strings.TrimSpace(body[n:])
	if c == '`' && strings.ContainsRune(info, '`') {
		return "", "", false
	}
	return body[:n], info, true
}

// atxHeading matches 1-6 '#' followed by whitespace or end of line and
// strips an optional closing '#' sequence.
func atxHeading(body string) (level int, text string, ok bool) {
	n := runLength(body, 0, '#')
	if n < 1 || n > 6 {
		return 0, "", false
	}
	if n < len(body) && body[n] != ' ' && body[n] != '\t' {
		return 0, "", false
	}
	text = strings.TrimSpace(body[n:])

	// Closing sequence: a run of '#' that is the whole text or follows a space.
	trimmed := strings.TrimRight(text, "#")
	if trimmed == "" {
		text = ""
	} else if len(trimmed) < len(text) && (strings.HasSuffix(trimmed, " ") || strings.HasSuffix(trimmed, "\t")) {
		text = strings.TrimSpace(trimmed)
	}
	return n, text, true
}

func bulletItem(body string) (string, bool) {
	switch body[0] {
	case '-', '*', '+':
	default:
		return "", false
	}
	if len(body) == 1 {
		return "", true
	}
	if body[1] != ' ' && body[1] != '\t' {
		return "", false
	}
	return strings.TrimSpace(body[2:]), true
}

func orderedItem(body string) (int, string, bool) {
	d := 0
	for d < len(body) && body[d] >= '0' && body[d] <= '9' {
		d++
	}
	if d == 0 || d > maxOrderedDigits || d >= len(body) {
		return 0, "", false
	}
	if body[d] != '.' && body[d] != ')' {
		return 0, "", false
	}
	rest := body[d+1:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, "", false
	}
	n := 0
	for _, r := range body[:d] {
		n = n*10 + int(r-'0')
	}
	return n, strings.TrimSpace(rest), true
}

// isSeparatorRow matches table separator rows such as |---|:--:|.
func isSeparatorRow(body string) bool {
	var dash, pipe bool
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '-':
			dash = true
		case '|':
			pipe = true
		case ':', ' ', '\t':
		default:
			return false
		}
	}
	return dash && pipe
}

// runLength counts consecutive c bytes starting at s[i].
func runLength(s string, i int, c byte) int {
	n := 0
	for i+n < len(s) && s[i+n] == c {
		n++
	}
	return n
}
