package publish

import (
	"fmt"
	"os"
	"path/filepath"
)

// RemoveAny removes a path regardless of whether it is a file, symlink, or
// directory.
func RemoveAny(path string) error {
	fi, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if fi.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// ForceSymlink creates (or replaces) the symlink link -> target.
//
// Parent directories are created as needed and any existing entry at link
// is removed first. There is a window between removal and creation where
// the link is absent; the link is a convenience pointer, not the
// crash-safety boundary, so that is acceptable.
func ForceSymlink(target, link string) error {
	if parent := filepath.Dir(link); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("create parent dir %s: %w", parent, err)
		}
	}

	if _, err := os.Lstat(link); err == nil {
		if err := RemoveAny(link); err != nil {
			return fmt.Errorf("remove existing entry at %s: %w", link, err)
		}
	}

	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("symlink %s -> %s: %w", link, target, err)
	}
	return nil
}
