package render

import (
	"context"
	"strings"
	"testing"

	"github.com/alnah/go-md2doc/doctree"
)

func TestStorageRenderer(t *testing.T) {
	t.Parallel()

	doc := &doctree.Document{Children: []doctree.Block{
		&doctree.Paragraph{Content: []doctree.Span{doctree.Plain("run "), doctree.Code("make")}},
		&doctree.CodeBlock{Language: "sql", Text: "SELECT 1;"},
	}}

	tests := []struct {
		name  string
		macro string
		want  string
	}{
		{
			name: "default macro",
			want: "<p>run <code>make</code></p>\n" +
				`<ac:structured-macro ac:name="code"><ac:parameter ac:name="language">sql</ac:parameter>` +
				"<ac:plain-text-body><![CDATA[SELECT 1;]]></ac:plain-text-body></ac:structured-macro>\n",
		},
		{
			name:  "custom macro",
			macro: "code-block",
			want: "<p>run <code>make</code></p>\n" +
				`<ac:structured-macro ac:name="code-block"><ac:parameter ac:name="language">sql</ac:parameter>` +
				"<ac:plain-text-body><![CDATA[SELECT 1;]]></ac:plain-text-body></ac:structured-macro>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := (&StorageRenderer{Macro: tt.macro}).Render(context.Background(), doc)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if string(out) != tt.want {
				t.Errorf("Render()\n got  %q\n want %q", out, tt.want)
			}
		})
	}
}

func TestStorageRenderer_KeepsStructure(t *testing.T) {
	t.Parallel()

	out, err := (&StorageRenderer{}).Render(context.Background(), sampleDocument())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	s := string(out)
	for _, want := range []string{"<h2>Title</h2>", `<ol start="3">`, "<ul><li>nested</li></ul>", "<thead>", `<![CDATA[SELECT 1;]]>`} {
		if !strings.Contains(s, want) {
			t.Errorf("storage output missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "<pre>") {
		t.Errorf("storage output still has <pre>:\n%s", s)
	}
}
