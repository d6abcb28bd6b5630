package md2doc

import (
	"errors"

	"github.com/alnah/go-md2doc/internal/assets"
)

// DefaultTheme is the name of the built-in page theme.
const DefaultTheme = assets.DefaultThemeName

// AssetLoader defines the contract for loading page themes applied to
// standalone HTML. Implementations may load from disk, embedded files,
// or any other store.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to the built-in themes. Implement this interface for custom backends.
type AssetLoader interface {
	// LoadTheme loads a theme stylesheet by name (without .css extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	LoadTheme(name string) (string, error)
}

// Themes lists the built-in page themes.
func Themes() []string {
	return assets.ThemeNames()
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, only the built-in themes are available.
// If basePath is set, {basePath}/themes/{name}.css takes precedence over
// a built-in theme of the same name.
//
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter maps internal asset errors to public sentinels.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadTheme(name string) (string, error) {
	css, err := a.resolver.LoadTheme(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return css, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrThemeNotFound), errors.Is(err, assets.ErrInvalidAssetName):
		return &wrappedAssetError{sentinel: ErrThemeNotFound, original: err}
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
		return &wrappedAssetError{sentinel: ErrInvalidAssetPath, original: err}
	default:
		return err
	}
}

// wrappedAssetError keeps the internal message and matches the public
// sentinel with errors.Is.
type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel. Internal errors are not exposed.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
