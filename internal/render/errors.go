package render

import "errors"

// Sentinel errors for rendering.
var (
	ErrRender        = errors.New("rendering failed")
	ErrStyleNotFound = errors.New("highlight style not found")
)
