// Package render serializes document trees.
//
// Every renderer walks one parsed tree and never re-parses source text, so
// all output formats are projections of the same structure:
//   - ADFRenderer writes the JSON document format (type/content/marks)
//   - HTMLRenderer writes an HTML fragment, optionally highlighted
//   - StorageRenderer writes HTML with code blocks as structured macros
//
// Renderers hold no mutable state and may be shared between goroutines.
package render
