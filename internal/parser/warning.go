package parser

import "fmt"

// WarningKind classifies a recoverable ambiguity found while parsing.
type WarningKind int

const (
	WarnUnterminatedFence WarningKind = iota + 1
	WarnMissingTableSeparator
	WarnRaggedTableRow
	WarnAmbiguousIndent
	WarnOrphanSeparator
)

func (k WarningKind) String() string {
	switch k {
	case WarnUnterminatedFence:
		return "unterminated_fence"
	case WarnMissingTableSeparator:
		return "missing_table_separator"
	case WarnRaggedTableRow:
		return "ragged_table_row"
	case WarnAmbiguousIndent:
		return "ambiguous_indent"
	case WarnOrphanSeparator:
		return "orphan_separator"
	default:
		return "unknown"
	}
}

// Warning describes a fallback the parser applied. Line is 1-based.
type Warning struct {
	Kind    WarningKind
	Line    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s: %s", w.Line, w.Kind, w.Message)
}

func warnf(kind WarningKind, line int, format string, args ...any) Warning {
	return Warning{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}
