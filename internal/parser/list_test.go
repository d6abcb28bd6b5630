package parser

// Notes:
// - parseList: we test nesting in both directions, continuation text,
//   blank-line handling, termination rules and the consumed line count.
// - Deep nesting is exercised well past realistic depths to cover the
//   explicit work-stack.

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-md2doc/doctree"
)

// ---------------------------------------------------------------------------
// TestParseList - Item trees and consumed counts
// ---------------------------------------------------------------------------

func TestParseList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		lines        []string
		want         *doctree.List
		wantConsumed int
	}{
		{
			name:         "flat bullets",
			lines:        []string{"- a", "- b", "- c"},
			want:         bullets(item("a"), item("b"), item("c")),
			wantConsumed: 3,
		},
		{
			name:         "ordered keeps start number",
			lines:        []string{"3. c", "4. d"},
			want:         numbered(3, item("c"), item("d")),
			wantConsumed: 2,
		},
		{
			name:         "ordered nests bullets",
			lines:        []string{"1. step", "   - detail", "   - more", "2. next"},
			want:         numbered(1, item("step", bullets(item("detail"), item("more"))), item("next")),
			wantConsumed: 4,
		},
		{
			name:         "continuation text joins item",
			lines:        []string{"- first line", "  wraps here", "- second"},
			want:         bullets(item("first line wraps here"), item("second")),
			wantConsumed: 3,
		},
		{
			name:         "blank lines between items are skipped",
			lines:        []string{"- a", "", "- b"},
			want:         bullets(item("a"), item("b")),
			wantConsumed: 3,
		},
		{
			name:         "trailing blank lines are not consumed",
			lines:        []string{"- a", "", "", "paragraph"},
			want:         bullets(item("a")),
			wantConsumed: 1,
		},
		{
			name:         "plain text at same indent ends list",
			lines:        []string{"- a", "after"},
			want:         bullets(item("a")),
			wantConsumed: 1,
		},
		{
			name:         "lesser indent ends nested list only",
			lines:        []string{"- a", "    - deep", "  - mid", "- b"},
			want:         bullets(item("a", bullets(item("deep")), bullets(item("mid"))), item("b")),
			wantConsumed: 4,
		},
		{
			name:         "other family at same indent ends list",
			lines:        []string{"- a", "1. b"},
			want:         bullets(item("a")),
			wantConsumed: 1,
		},
		{
			name:         "other family nested under item",
			lines:        []string{"- a", "  - b", "  1. c"},
			want:         bullets(item("a", bullets(item("b")), numbered(1, item("c")))),
			wantConsumed: 3,
		},
		{
			name:         "text aligned with nested items belongs to parent item",
			lines:        []string{"- a", "  - b", "  more"},
			want:         bullets(item("a more", bullets(item("b")))),
			wantConsumed: 3,
		},
		{
			name:         "list stops at heading",
			lines:        []string{"- a", "# Heading"},
			want:         bullets(item("a")),
			wantConsumed: 1,
		},
		{
			name:  "indented fence inside item is item text",
			lines: []string{"- a", "  ```", "  code", "  ```"},
			want: bullets(&doctree.ListItem{Content: []doctree.Span{
				doctree.Plain("a "), doctree.Code(" code "),
			}}),
			wantConsumed: 4,
		},
		{
			name:         "fence body at item indent ends list",
			lines:        []string{"- a", "  ```", "code", "  ```"},
			want:         bullets(item("a ```")),
			wantConsumed: 2,
		},
		{
			name:         "empty item",
			lines:        []string{"-", "- b"},
			want:         bullets(item(""), item("b")),
			wantConsumed: 2,
		},
		{
			name:  "inline formatting in items",
			lines: []string{"- **bold** item"},
			want: bullets(&doctree.ListItem{Content: []doctree.Span{
				doctree.Bold("bold"), doctree.Plain(" item"),
			}}),
			wantConsumed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, consumed, _ := parseList(tt.lines, 0)
			if diff := cmp.Diff(tt.want, got, treeOpts); diff != "" {
				t.Errorf("parseList mismatch (-want +got):\n%s", diff)
			}
			if consumed != tt.wantConsumed {
				t.Errorf("consumed = %d, want %d", consumed, tt.wantConsumed)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseList_StartOffset - Parsing from the middle of the input
// ---------------------------------------------------------------------------

func TestParseList_StartOffset(t *testing.T) {
	t.Parallel()

	lines := []string{"intro", "", "- a", "  - b", "tail"}
	got, consumed, _ := parseList(lines, 2)
	want := bullets(item("a", bullets(item("b"))))
	if diff := cmp.Diff(want, got, treeOpts); diff != "" {
		t.Errorf("parseList mismatch (-want +got):\n%s", diff)
	}
	if consumed != 2 {
		t.Errorf("consumed = %d, want 2", consumed)
	}
}

// ---------------------------------------------------------------------------
// TestParseList_NestingDepths - Alternating families up to depth 5
// ---------------------------------------------------------------------------

// nestedLines builds one item per level, alternating bullet and ordered
// markers, each level indented two more spaces than its parent.
func nestedLines(depth int) []string {
	lines := make([]string, depth)
	for d := 0; d < depth; d++ {
		marker := "-"
		if d%2 == 1 {
			marker = "1."
		}
		lines[d] = fmt.Sprintf("%s%s level%d", strings.Repeat("  ", d), marker, d)
	}
	return lines
}

func TestParseList_NestingDepths(t *testing.T) {
	t.Parallel()

	for depth := 1; depth <= 5; depth++ {
		t.Run(fmt.Sprintf("depth %d", depth), func(t *testing.T) {
			t.Parallel()

			lines := append(nestedLines(depth), "after the list")
			list, consumed, warnings := parseList(lines, 0)

			if consumed != depth {
				t.Errorf("consumed = %d, want %d", consumed, depth)
			}
			if len(warnings) != 0 {
				t.Errorf("unexpected warnings: %v", warnings)
			}
			if got := doctree.Depth(list); got != depth {
				t.Errorf("depth = %d, want %d", got, depth)
			}

			// Walk down the single chain checking family and text.
			cur := list
			for d := 0; d < depth; d++ {
				if cur.Ordered != (d%2 == 1) {
					t.Fatalf("level %d ordered = %v", d, cur.Ordered)
				}
				if len(cur.Items) != 1 {
					t.Fatalf("level %d items = %d, want 1", d, len(cur.Items))
				}
				it := cur.Items[0]
				if it.Text() != fmt.Sprintf("level%d", d) {
					t.Errorf("level %d text = %q", d, it.Text())
				}
				if d == depth-1 {
					if len(it.Lists) != 0 {
						t.Errorf("leaf has %d nested lists", len(it.Lists))
					}
					break
				}
				if len(it.Lists) != 1 {
					t.Fatalf("level %d nested lists = %d, want 1", d, len(it.Lists))
				}
				cur = it.Lists[0]
			}
		})
	}

	t.Run("bullet with numbered sub-list", func(t *testing.T) {
		t.Parallel()

		for depth := 1; depth <= 5; depth++ {
			lines := []string{"- top"}
			for d := 1; d <= depth; d++ {
				lines = append(lines, fmt.Sprintf("%s%d. sub", strings.Repeat("  ", d), d))
			}
			list, consumed, _ := parseList(lines, 0)
			if consumed != len(lines) {
				t.Errorf("depth %d: consumed = %d, want %d", depth, consumed, len(lines))
			}
			nested := list.Items[0].Lists
			if len(nested) != 1 || !nested[0].Ordered {
				t.Errorf("depth %d: want one nested ordered list, got %#v", depth, nested)
			}
		}
	})
}

// ---------------------------------------------------------------------------
// TestParseList_VeryDeep - Work-stack handles pathological depth
// ---------------------------------------------------------------------------

func TestParseList_VeryDeep(t *testing.T) {
	t.Parallel()

	const depth = 5000
	lines := make([]string, depth)
	for d := range lines {
		lines[d] = strings.Repeat(" ", d) + "- x"
	}

	list, consumed, _ := parseList(lines, 0)
	if consumed != depth {
		t.Errorf("consumed = %d, want %d", consumed, depth)
	}
	if got := doctree.Depth(list); got != depth {
		t.Errorf("depth = %d, want %d", got, depth)
	}
}

// ---------------------------------------------------------------------------
// TestParseList_MixedTabs - Tabs and spaces never crash
// ---------------------------------------------------------------------------

func TestParseList_MixedTabs(t *testing.T) {
	t.Parallel()

	lines := []string{"- a", "\t- tab", "  - spaces", "\t \tmixed text"}
	list, consumed, _ := parseList(lines, 0)
	if consumed != len(lines) {
		t.Errorf("consumed = %d, want %d", consumed, len(lines))
	}
	if len(list.Items) != 1 {
		t.Errorf("items = %d, want 1", len(list.Items))
	}
}
