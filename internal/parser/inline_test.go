package parser

// Notes:
// - Tokenize: we test each family, tie-breaking, overlap resolution,
//   unmatched delimiters and word-internal underscores.
// - Idempotence: re-tokenizing the Markdown literal of a span sequence must
//   reproduce the same sequence. Checked over a fixed corpus.

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-md2doc/doctree"
)

// ---------------------------------------------------------------------------
// TestTokenize - Span splitting rules
// ---------------------------------------------------------------------------

func TestTokenize(t *testing.T) {
	t.Parallel()

	P, B, I, C := doctree.Plain, doctree.Bold, doctree.Italic, doctree.Code

	tests := []struct {
		name  string
		input string
		want  []doctree.Span
	}{
		{"empty", "", nil},
		{"plain only", "just text", []doctree.Span{P("just text")}},
		{"bold", "a **b** c", []doctree.Span{P("a "), B("b"), P(" c")}},
		{"underscore bold", "__b__", []doctree.Span{B("b")}},
		{"italic", "*i*", []doctree.Span{I("i")}},
		{"underscore italic", "an _emphasised_ word", []doctree.Span{P("an "), I("emphasised"), P(" word")}},
		{"code", "run `make test` now", []doctree.Span{P("run "), C("make test"), P(" now")}},
		{"double backtick code", "``a`b``", []doctree.Span{C("a`b")}},
		{"all three", "**b** *i* `c`", []doctree.Span{B("b"), P(" "), I("i"), P(" "), C("c")}},
		{"unmatched bold stays literal", "a **b", []doctree.Span{P("a **b")}},
		{"unmatched italic stays literal", "2 * 3 = 6", []doctree.Span{P("2 * 3 = 6")}},
		{"unmatched backtick stays literal", "it`s", []doctree.Span{P("it`s")}},
		{"space after opener is not emphasis", "a * b * c", []doctree.Span{P("a * b * c")}},
		{"snake case is plain", "user_id and order_id", []doctree.Span{P("user_id and order_id")}},
		{"shortest match", "*a* b *c*", []doctree.Span{I("a"), P(" b "), I("c")}},
		{"code protects emphasis", "`*x*`", []doctree.Span{C("*x*")}},
		{"earliest start wins over later bold", "*a **b** c*", []doctree.Span{I("a **b** c")}},
		{"overlap degrades later delimiters", "**a `b** c`", []doctree.Span{B("a `b"), P(" c`")}},
		{
			name:  "closer of dropped pair stays literal",
			input: "`a*b` and *c*",
			want:  []doctree.Span{C("a*b"), P(" and *c*")},
		},
		{"dropped bold leaves both delimiters", "`x **y` z**", []doctree.Span{C("x **y"), P(" z**")}},
		{"unicode text", "**grüße** café", []doctree.Span{B("grüße"), P(" café")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTokenize_NoOverlap - Accepted spans tile the input exactly
// ---------------------------------------------------------------------------

func TestTokenize_NoOverlap(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"**a *b** c*",
		"*a `b* c`",
		"`x **y` z**",
		"__a _b__ c_",
		"***triple***",
	}

	for _, input := range inputs {
		spans := Tokenize(input)
		if len(spans) == 0 {
			t.Errorf("Tokenize(%q) returned no spans", input)
			continue
		}
		for i := 1; i < len(spans); i++ {
			if spans[i].Mark == doctree.MarkNone && spans[i-1].Mark == doctree.MarkNone {
				t.Errorf("Tokenize(%q) has adjacent plain spans at %d", input, i)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestTokenize_Idempotent - Re-tokenizing the literal is stable
// ---------------------------------------------------------------------------

func TestTokenize_Idempotent(t *testing.T) {
	t.Parallel()

	corpus := []string{
		"plain text",
		"Some *italic* and **bold** text.",
		"mix `code` with __bold__ and _em_",
		"*a **b** c*",
		"`a*b` and *c*",
		"a * b * c",
		"user_id_column",
		"``a`b`` then **x**",
		"**unclosed",
		"trailing *",
		"_a*b_",
		"__a**b__",
		"an _x*y_ here",
		"`x **y` z**",
	}

	for _, input := range corpus {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			first := Tokenize(input)
			second := Tokenize(doctree.Literal(first))
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("re-tokenize of %q mismatch (-first +second):\n%s", input, diff)
			}
		})
	}
}
