package doctree

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mark is the formatting applied to a span. A span carries at most one.
type Mark int

const (
	MarkNone Mark = iota
	MarkBold
	MarkItalic
	MarkCode
)

func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkBold:
		return "bold"
	case MarkItalic:
		return "italic"
	case MarkCode:
		return "code"
	default:
		return "unknown"
	}
}

// Span is a run of text with zero or one mark.
type Span struct {
	Text string
	Mark Mark
}

// Plain returns an unformatted span.
func Plain(text string) Span { return Span{Text: text} }

// Bold returns a bold span.
func Bold(text string) Span { return Span{Text: text, Mark: MarkBold} }

// Italic returns an italic span.
func Italic(text string) Span { return Span{Text: text, Mark: MarkItalic} }

// Code returns an inline code span.
func Code(text string) Span { return Span{Text: text, Mark: MarkCode} }

// Literal returns the span written back as Markdown. Emphasis uses "*"
// delimiters unless the text itself contains "*", in which case "_" is
// used when the text allows it.
func (s Span) Literal() string {
	return s.literal(utf8.RuneError, utf8.RuneError)
}

// literal writes the span back knowing the runes written just before and
// just after it, since "_" delimiters do not open or close inside words.
func (s Span) literal(prev, next rune) string {
	switch s.Mark {
	case MarkBold:
		d := emphasisDelim(s.Text, prev, next)
		return d + d + s.Text + d + d
	case MarkItalic:
		d := emphasisDelim(s.Text, prev, next)
		return d + s.Text + d
	case MarkCode:
		fence := strings.Repeat("`", longestRun(s.Text, '`')+1)
		return fence + s.Text + fence
	default:
		return s.Text
	}
}

// PlainText concatenates span texts, dropping marks.
func PlainText(spans []Span) string {
	return joinText(spans, false)
}

// Literal concatenates spans written back as Markdown.
func Literal(spans []Span) string {
	return joinText(spans, true)
}

func emphasisDelim(text string, prev, next rune) string {
	if !strings.Contains(text, "*") || strings.Contains(text, "_") {
		return "*"
	}
	if isWordRune(prev) || isWordRune(next) {
		return "*"
	}
	return "_"
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func longestRun(s string, c byte) int {
	best, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			cur++
			if cur > best {
				best = cur
			}
			continue
		}
		cur = 0
	}
	return best
}
