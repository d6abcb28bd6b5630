package md2doc

import (
	"errors"

	"github.com/alnah/go-md2doc/internal/parser"
	"github.com/alnah/go-md2doc/internal/pipeline"
	"github.com/alnah/go-md2doc/internal/render"
)

// Sentinel errors for library operations.
var (
	// Option validation errors.
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrStyleNotFound    = render.ErrStyleNotFound
	ErrInvalidMacroName = errors.New("invalid code macro name")

	// Page theme errors.
	ErrThemeNotFound    = errors.New("page theme not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Input errors.
	ErrNilSource = parser.ErrNilSource
	ErrRead      = parser.ErrRead

	// Output errors.
	ErrRender         = render.ErrRender
	ErrMacroRewrite   = pipeline.ErrMacroRewrite
	ErrDocumentRender = pipeline.ErrDocumentRender

	// ErrInternal reports a defect in the converter, never a problem with
	// the input. It wraps the recovered panic value.
	ErrInternal = errors.New("internal error")
)
