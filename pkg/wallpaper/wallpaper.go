// Package wallpaper cycles the background symlink through a theme's
// wallpaper candidates.
package wallpaper

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"tableflip.dev/shade/pkg/paths"
	"tableflip.dev/shade/pkg/publish"
	"tableflip.dev/shade/pkg/theme"
)

// Candidate is one wallpaper file: its original path plus its resolved
// (symlink-free) form. Canonical is empty when resolution failed, which
// means the candidate can never match the current link target.
type Candidate struct {
	Path      string
	Canonical string
}

// Cycle points the background symlink at the next wallpaper and hands it to
// swww. A theme with no wallpapers notifies the user instead of failing.
func Cycle(p *paths.Paths, t *theme.Theme) error {
	candidates := Collect(p.UserBackgroundsDir(t.Name), filepath.Join(p.CurrentLink, "backgrounds"))

	if len(candidates) == 0 {
		notify(fmt.Sprintf("No wallpaper found for theme '%s'", t.Name))
		return nil
	}

	// Resolve the link itself so relative symlink targets compare
	// correctly regardless of the working directory.
	next := Next(candidates, canonical(p.BackgroundLink))

	if err := publish.ForceSymlink(next, p.BackgroundLink); err != nil {
		return err
	}

	changeWallpaper(p.BackgroundLink)
	return nil
}

// Collect lists, deduplicates, and sorts the wallpaper candidates from the
// user override directory and the theme-bundled directory.
func Collect(userDir, themeDir string) []Candidate {
	var all []string
	all = append(all, listFiles(userDir)...)
	all = append(all, listFiles(themeDir)...)

	sort.Strings(all)

	var candidates []Candidate
	for i, path := range all {
		if i > 0 && path == all[i-1] {
			continue
		}
		candidates = append(candidates, Candidate{Path: path, Canonical: canonical(path)})
	}
	return candidates
}

// Next selects the candidate after the one whose canonical path equals
// current, wrapping around. An unmatched or empty current selects the
// first candidate, which self-heals broken or externally replaced links.
func Next(candidates []Candidate, current string) string {
	idx := 0
	if current != "" {
		for i, c := range candidates {
			if c.Canonical != "" && c.Canonical == current {
				idx = (i + 1) % len(candidates)
				break
			}
		}
	}
	return candidates[idx].Path
}

// listFiles returns all regular files directly inside dir (non-recursive).
func listFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			files = append(files, path)
		}
	}
	return files
}

// canonical resolves a path to absolute, symlink-free form, or "" when it
// cannot be resolved.
func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return ""
	}
	return resolved
}

// changeWallpaper hands the link to swww without waiting for it.
func changeWallpaper(path string) {
	_ = exec.Command("swww", "img", path, "--transition-type=none").Start()
}

func notify(msg string) {
	_ = exec.Command("notify-send", msg, "-t", "2000").Run()
}
