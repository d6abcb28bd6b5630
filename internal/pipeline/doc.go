// Package pipeline implements the stages around parsing and rendering.
//
// Stages run in this order for every conversion:
//   - Source preprocessing (byte order mark, line endings, Unicode NFC)
//   - Parsing and rendering (packages parser and render)
//   - Markup post-processing: code macro rewriting for the storage
//     format, standalone document wrapping and CSS injection for HTML
//
// Every stage takes a context and returns early when it is cancelled.
package pipeline
