package assets

// DefaultThemeName is the built-in theme used when a page asks for one
// without naming it.
const DefaultThemeName = "default"

// AssetLoader defines the contract for loading page themes.
type AssetLoader interface {
	// LoadTheme loads a theme stylesheet by name (without .css extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTheme(name string) (string, error)
}
