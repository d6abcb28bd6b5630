package parser

import (
	"strings"

	"github.com/alnah/go-md2doc/doctree"
)

// listFrame is one open list on the work-stack.
type listFrame struct {
	list   *doctree.List
	indent int

	item   *doctree.ListItem // current item, receives continuation text and nested lists
	text   []string
	nested int // indentation of the current item's first nested list, -1 if none
}

func newListFrame(l Line) *listFrame {
	f := &listFrame{
		list:   &doctree.List{Ordered: l.Kind == LineOrdered},
		indent: l.Indent,
	}
	if f.list.Ordered {
		f.list.Start = l.Number
	}
	f.openItem(l)
	return f
}

// accepts reports whether l continues this list as a sibling item.
func (f *listFrame) accepts(l Line) bool {
	return l.Indent == f.indent && l.IsListItem() && (l.Kind == LineOrdered) == f.list.Ordered
}

func (f *listFrame) openItem(l Line) {
	f.closeItem()
	f.item = &doctree.ListItem{}
	f.list.Items = append(f.list.Items, f.item)
	f.nested = -1
	if l.Text != "" {
		f.text = append(f.text, l.Text)
	}
}

// closeItem tokenizes the pending text of the current item.
func (f *listFrame) closeItem() {
	if f.item == nil {
		return
	}
	f.item.Content = Tokenize(strings.Join(f.text, " "))
	f.item = nil
	f.text = nil
}

// parseList consumes a run of list lines starting at lines[start], which
// must classify as a list item at indentation D.
//
// Sibling items share indentation D; blank lines are skipped. Below an
// item, more-indented list items open a nested list and more-indented
// plain lines are appended to the item's text. The run ends at the first
// non-blank line indented less than D, or at indentation D that is not an
// item of the same family. Nesting is handled with an explicit stack of
// open lists, so depth is bounded by memory rather than the call stack.
//
// Fences, headings and table rows indented past an item are item text; a
// fence body line at indentation D or less ends the list.
//
// consumed counts lines up to the last one that belonged to the list;
// trailing blank lines are left to the caller.
func parseList(lines []string, start int) (list *doctree.List, consumed int, warnings []Warning) {
	root := newListFrame(Classify(lines[start]))
	stack := []*listFrame{root}
	end := start + 1

scan:
	for i := start + 1; i < len(lines); i++ {
		l := Classify(lines[i])
		if l.Kind == LineBlank {
			continue
		}

		for {
			top := stack[len(stack)-1]
			switch {
			case l.Indent > top.indent && l.IsListItem():
				if top.nested >= 0 && top.nested != l.Indent {
					warnings = append(warnings, warnf(WarnAmbiguousIndent, i+1,
						"nested list at indentation %d, earlier sibling list at %d", l.Indent, top.nested))
				}
				if top.nested < 0 {
					top.nested = l.Indent
				}
				child := newListFrame(l)
				top.item.Lists = append(top.item.Lists, child.list)
				stack = append(stack, child)
			case l.Indent > top.indent:
				top.text = append(top.text, strings.TrimSpace(lines[i]))
			case top.accepts(l):
				top.openItem(l)
			default:
				if len(stack) == 1 {
					break scan
				}
				top.closeItem()
				stack = stack[:len(stack)-1]
				continue
			}
			break
		}
		end = i + 1
	}

	for k := len(stack) - 1; k >= 0; k-- {
		stack[k].closeItem()
	}
	return root.list, end - start, warnings
}
