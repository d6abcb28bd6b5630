package doctree

// WalkStatus tells Walk how to proceed after visiting a node.
type WalkStatus int

const (
	WalkContinue WalkStatus = iota
	WalkSkipChildren
	WalkStop
)

// Walker is called twice per node: once entering, before its children, and
// once leaving, after them.
type Walker func(n Node, entering bool) WalkStatus

// Walk traverses the tree rooted at n depth-first, in document order.
// Returning WalkSkipChildren on entry skips the node's children but still
// delivers the leaving call. WalkStop ends the traversal immediately.
//
// Traversal uses an explicit stack, so arbitrarily deep lists cannot
// exhaust the goroutine stack.
func Walk(n Node, fn Walker) {
	if n == nil {
		return
	}

	type frame struct {
		node    Node
		leaving bool
	}
	stack := []frame{{node: n}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.leaving {
			if fn(top.node, false) == WalkStop {
				return
			}
			continue
		}

		status := fn(top.node, true)
		if status == WalkStop {
			return
		}
		stack = append(stack, frame{node: top.node, leaving: true})
		if status == WalkSkipChildren {
			continue
		}

		children := Children(top.node)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: children[i]})
		}
	}
}

// Children returns the direct child nodes of n. Inline spans and table
// cells are attributes of their owners, not nodes.
func Children(n Node) []Node {
	switch v := n.(type) {
	case *Document:
		out := make([]Node, len(v.Children))
		for i, c := range v.Children {
			out[i] = c
		}
		return out
	case *List:
		out := make([]Node, len(v.Items))
		for i, c := range v.Items {
			out[i] = c
		}
		return out
	case *ListItem:
		out := make([]Node, len(v.Lists))
		for i, c := range v.Lists {
			out[i] = c
		}
		return out
	default:
		return nil
	}
}

// Depth returns the deepest list nesting level in the tree rooted at n.
// A document with a flat list has depth 1.
func Depth(n Node) int {
	depth, deepest := 0, 0
	Walk(n, func(n Node, entering bool) WalkStatus {
		if _, ok := n.(*List); !ok {
			return WalkContinue
		}
		if entering {
			depth++
			if depth > deepest {
				deepest = depth
			}
		} else {
			depth--
		}
		return WalkContinue
	})
	return deepest
}
