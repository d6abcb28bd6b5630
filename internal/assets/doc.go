// Package assets provides the page themes applied to standalone HTML
// output. Themes are plain CSS files loaded from embedded files or from a
// custom directory.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in themes compiled into the binary
//	    ├── FilesystemLoader  - themes from a directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// A custom directory may override a built-in theme by name or add new ones.
//
// # Directory Structure
//
//	{basePath}/
//	└── themes/
//	    └── {name}.css
//
// # Security
//
// Theme names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
