package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// themesDir is the subdirectory of an asset directory holding theme files.
const themesDir = "themes"

// FilesystemLoader reads page themes from {root}/themes/{name}.css.
type FilesystemLoader struct {
	root string
}

// NewFilesystemLoader checks that dir is a readable directory and returns a
// loader rooted at its resolved path. Failures wrap ErrInvalidBasePath.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	root, err := resolvePath(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBasePath, err)
	}

	_, err = os.ReadDir(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, root)
	case err != nil && isNotDir(root):
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, root)
	case err != nil:
		return nil, fmt.Errorf("%w: cannot read directory: %w", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{root: root}, nil
}

// LoadTheme returns the stylesheet of the named theme. A theme file that
// resolves outside the loader's root fails with ErrPathTraversal.
func (f *FilesystemLoader) LoadTheme(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	target, err := resolvePath(filepath.Join(f.root, themesDir, name+".css"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathTraversal, err)
	}
	if !f.contains(target) {
		return "", fmt.Errorf("%w: theme %q leaves %s", ErrPathTraversal, name, f.root)
	}

	data, err := os.ReadFile(target) // #nosec G304 -- target is contained in root
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAssetRead, err)
	}
	return string(data), nil
}

func (f *FilesystemLoader) contains(path string) bool {
	rel, err := filepath.Rel(f.root, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// resolvePath makes p absolute and follows symlinks when p exists. A
// missing path keeps its lexical form so the caller can report it.
func resolvePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

func isNotDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

var _ AssetLoader = (*FilesystemLoader)(nil)
