package parser

import (
	"strings"

	"github.com/alnah/go-md2doc/doctree"
)

// readFence consumes a fenced code block starting at lines[start], which
// must classify as LineFence. Interior lines are kept verbatim. Without a
// closing fence the block runs to the end of input and terminated is false.
func readFence(lines []string, start int, open Line) (block *doctree.CodeBlock, consumed int, terminated bool) {
	block = &doctree.CodeBlock{Language: fenceLanguage(open.Info)}

	var body []string
	for i := start + 1; i < len(lines); i++ {
		if closesFence(lines[i], open.Fence) {
			block.Text = strings.Join(body, "\n")
			return block, i - start + 1, true
		}
		body = append(body, lines[i])
	}

	block.Text = strings.Join(body, "\n")
	return block, len(lines) - start, false
}

// closesFence reports whether line is a closing fence for the opening
// run: the same character, at least as long, and nothing else.
func closesFence(line, fence string) bool {
	t := strings.TrimSpace(line)
	if len(t) < len(fence) {
		return false
	}
	return runLength(t, 0, fence[0]) == len(t)
}

// fenceLanguage returns the first word of the info string.
func fenceLanguage(info string) string {
	if fields := strings.Fields(info); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
