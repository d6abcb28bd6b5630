package render

import (
	"context"

	"github.com/alnah/go-md2doc/doctree"
	"github.com/alnah/go-md2doc/internal/pipeline"
)

// StorageRenderer writes the storage markup: the HTML fragment with every
// code block replaced by a structured code macro. Code is never
// highlighted; the target platform colors it itself.
type StorageRenderer struct {
	// Macro names the code macro, pipeline.DefaultCodeMacro when empty.
	Macro string
}

// Render writes the HTML projection of doc and rewrites its code blocks.
func (r *StorageRenderer) Render(ctx context.Context, doc *doctree.Document) ([]byte, error) {
	markup, err := (&HTMLRenderer{}).Render(ctx, doc)
	if err != nil {
		return nil, err
	}

	rewriter := &pipeline.CodeMacroRewrite{Macro: r.Macro}
	out, err := rewriter.RewriteCodeMacros(ctx, string(markup))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
