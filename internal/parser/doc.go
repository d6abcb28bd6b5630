// Package parser turns constrained-dialect Markdown into a doctree.Document.
//
// The parser works line by line. Classify decides what kind of block a line
// starts; the assembler dispatches to a block reader (fenced code, nested
// lists, tables) which consumes a run of lines and reports how many it
// used, so the cursor only ever moves forward. Text runs are split into
// formatted spans by Tokenize.
//
// Malformed or ambiguous input never fails: unterminated fences, tables
// without a separator row, ragged rows and oddly indented lists all resolve
// to a best-effort tree, and each fallback is reported as a Warning. Only a
// missing input source is an error.
package parser
