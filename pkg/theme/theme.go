// Package theme loads everything known about a named theme before rendering.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tableflip.dev/shade/pkg/vars"
)

var (
	// ErrNotFound marks a theme directory that does not exist.
	ErrNotFound = errors.New("theme not found")
	// ErrMissingVariables marks a theme without its colors.toml.
	ErrMissingVariables = errors.New("theme has no colors.toml")
)

// Theme is a fully-loaded descriptor ready for rendering and applying.
// Constructed fresh on every load, read-only afterwards.
type Theme struct {
	Name      string
	Root      string
	Vars      map[string]string
	IsLight   bool
	IconTheme string // empty when the theme sets no icon theme
	// BackgroundsDir is the theme's bundled wallpaper directory, empty
	// when the theme ships none.
	BackgroundsDir string
}

// Load reads a theme's descriptor from dataDir/name. Nothing is cached:
// every call re-reads the filesystem.
func Load(dataDir, name string) (*Theme, error) {
	root := filepath.Join(dataDir, name)
	if !isDir(root) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
	}

	colorsFile := filepath.Join(root, "colors.toml")
	if !isFile(colorsFile) {
		return nil, fmt.Errorf("%w: %q: %s", ErrMissingVariables, name, colorsFile)
	}

	v, err := vars.FromFile(colorsFile)
	if err != nil {
		return nil, fmt.Errorf("build vars for theme %q: %w", name, err)
	}

	icon, err := readTrimmed(filepath.Join(root, "icons.theme"))
	if err != nil {
		return nil, err
	}

	bgDir := filepath.Join(root, "backgrounds")
	if !isDir(bgDir) {
		bgDir = ""
	}

	return &Theme{
		Name:           name,
		Root:           root,
		Vars:           v,
		IsLight:        isFile(filepath.Join(root, "light.mode")),
		IconTheme:      icon,
		BackgroundsDir: bgDir,
	}, nil
}

// List returns the sorted names of all installed themes under dataDir.
func List(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read themes dir %s: %w", dataDir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// readTrimmed reads a file and trims whitespace, returning "" if the file
// is absent or blank.
func readTrimmed(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.TrimSpace(string(b)), nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
