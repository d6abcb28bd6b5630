package parser

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/alnah/go-md2doc/doctree"
)

// candidate is a matched delimiter pair covering text[start:end).
type candidate struct {
	start, end int
	inner      string
	mark       doctree.Mark
}

// emphasisDelims lists the emphasis delimiters scanned independently.
// Each family is matched shortest-first.
var emphasisDelims = []struct {
	delim string
	mark  doctree.Mark
}{
	{"**", doctree.MarkBold},
	{"__", doctree.MarkBold},
	{"*", doctree.MarkItalic},
	{"_", doctree.MarkItalic},
}

// Tokenize splits text into plain, bold, italic and code spans.
//
// Every family is scanned on its own and the candidate ranges are then
// scheduled in one pass: sorted by start (bold before italic before code on
// ties) and accepted greedily, dropping any candidate that overlaps an
// accepted one. Gaps between accepted ranges become plain spans, so the
// delimiters of dropped and unmatched candidates stay literal.
func Tokenize(text string) []doctree.Span {
	if text == "" {
		return nil
	}

	var out []doctree.Span
	pos := 0
	for _, c := range schedule(scanCandidates(text)) {
		if pos < c.start {
			out = appendSpan(out, doctree.Plain(text[pos:c.start]))
		}
		out = append(out, doctree.Span{Text: c.inner, Mark: c.mark})
		pos = c.end
	}
	if pos < len(text) {
		out = appendSpan(out, doctree.Plain(text[pos:]))
	}
	return out
}

// schedule returns the accepted candidates in start order.
func schedule(cands []candidate) []candidate {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].start != cands[j].start {
			return cands[i].start < cands[j].start
		}
		return cands[i].mark < cands[j].mark
	})

	var accepted []candidate
	end := 0
	for _, c := range cands {
		if c.start < end {
			continue
		}
		accepted = append(accepted, c)
		end = c.end
	}
	return accepted
}

// appendSpan merges adjacent plain spans.
func appendSpan(out []doctree.Span, s doctree.Span) []doctree.Span {
	if n := len(out); n > 0 && s.Mark == doctree.MarkNone && out[n-1].Mark == doctree.MarkNone {
		out[n-1].Text += s.Text
		return out
	}
	return append(out, s)
}

func scanCandidates(text string) []candidate {
	var cands []candidate
	for _, d := range emphasisDelims {
		cands = append(cands, scanEmphasis(text, d.delim, d.mark)...)
	}
	return append(cands, scanCode(text)...)
}

// scanEmphasis finds shortest delimiter pairs for one emphasis delimiter.
// A delimiter must be a run of exactly len(delim) characters; an opener
// must be followed by non-space and a closer preceded by non-space.
// Underscore delimiters do not match inside words.
func scanEmphasis(text, delim string, mark doctree.Mark) []candidate {
	var out []candidate
	n := len(delim)
	c := delim[0]

	for i := 0; i+n <= len(text); {
		if !isExactRun(text, i, n, c) || !canOpen(text, i, n, c) {
			i++
			continue
		}
		closeAt := -1
		for j := i + n + 1; j+n <= len(text); j++ {
			if isExactRun(text, j, n, c) && canClose(text, j, n, c) {
				closeAt = j
				break
			}
		}
		if closeAt < 0 {
			i += n
			continue
		}
		out = append(out, candidate{start: i, end: closeAt + n, inner: text[i+n : closeAt], mark: mark})
		i = closeAt + n
	}
	return out
}

// scanCode pairs backtick runs of equal length.
func scanCode(text string) []candidate {
	var out []candidate
	for i := 0; i < len(text); {
		if text[i] != '`' {
			i++
			continue
		}
		n := runLength(text, i, '`')
		closeAt := -1
		for j := i + n; j < len(text); {
			if text[j] != '`' {
				j++
				continue
			}
			m := runLength(text, j, '`')
			if m == n {
				closeAt = j
				break
			}
			j += m
		}
		if closeAt < 0 {
			i += n
			continue
		}
		out = append(out, candidate{start: i, end: closeAt + n, inner: text[i+n : closeAt], mark: doctree.MarkCode})
		i = closeAt + n
	}
	return out
}

// isExactRun reports whether text[i:i+n] is a run of c not extended by
// another c on either side.
func isExactRun(text string, i, n int, c byte) bool {
	if i+n > len(text) {
		return false
	}
	for k := i; k < i+n; k++ {
		if text[k] != c {
			return false
		}
	}
	if i > 0 && text[i-1] == c {
		return false
	}
	return i+n == len(text) || text[i+n] != c
}

func canOpen(text string, i, n int, c byte) bool {
	next, _ := utf8.DecodeRuneInString(text[i+n:])
	if next == utf8.RuneError || unicode.IsSpace(next) {
		return false
	}
	if c == '_' && i > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:i])
		if isWordRune(prev) {
			return false
		}
	}
	return true
}

func canClose(text string, j, n int, c byte) bool {
	prev, _ := utf8.DecodeLastRuneInString(text[:j])
	if prev == utf8.RuneError || unicode.IsSpace(prev) {
		return false
	}
	if c == '_' && j+n < len(text) {
		next, _ := utf8.DecodeRuneInString(text[j+n:])
		if isWordRune(next) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
