// Package md2doc converts Markdown documents into a document tree and
// serializes the tree as a JSON document format, HTML, or storage markup.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2doc.NewConverter(md2doc.WithFormat(md2doc.FormatADF))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2doc.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.json", result.Output, 0o644)
//
// The result carries the parsed tree (result.Document) next to the
// serialized output, so callers can inspect structure without re-parsing.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Source preprocessing (byte order mark, line endings, Unicode NFC)
//  2. Parsing into a doctree.Document, collecting warnings
//  3. Rendering to the requested format
//  4. Format post-processing (code macros for storage, page wrapper and
//     stylesheet for standalone HTML)
//
// # Dialect
//
// The parser accepts a constrained Markdown dialect: ATX headings, fenced
// code blocks, bullet and ordered lists nested by indentation, pipe tables,
// and bold, italic and code spans. Input never makes parsing fail.
// Ambiguous or malformed constructs are resolved the lenient way and
// reported as warnings in ConvertResult.Warnings.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2doc.NewConverter(
//	    md2doc.WithFormat(md2doc.FormatHTML),
//	    md2doc.WithHighlighting("monokai"),
//	    md2doc.WithStandaloneHTML("Report"),
//	    md2doc.WithLogger(slog.Default()),
//	)
//
// The output format can also be chosen per call with Input.Format.
//
// # Themes
//
// Standalone HTML pages can carry a page theme. Built-in themes are listed
// by Themes; WithAssetPath points at a directory whose themes/<name>.css
// files take precedence:
//
//	conv, err := md2doc.NewConverter(
//	    md2doc.WithStandaloneHTML("Report"),
//	    md2doc.WithTheme("compact"),
//	)
//
// # Concurrency
//
// A Converter holds no mutable state once built and is safe for concurrent
// use. Trees returned in results are never modified by the converter.
package md2doc
