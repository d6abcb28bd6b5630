package render

import (
	"context"

	"github.com/alnah/go-md2doc/doctree"
)

// Renderer serializes a document tree into one output format.
type Renderer interface {
	Render(ctx context.Context, doc *doctree.Document) ([]byte, error)
}

// Compile-time interface implementation checks.
var (
	_ Renderer = (*ADFRenderer)(nil)
	_ Renderer = (*HTMLRenderer)(nil)
	_ Renderer = (*StorageRenderer)(nil)
)
