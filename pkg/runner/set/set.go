// Package set implements the publish pipeline behind `shade set`.
package set

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"tableflip.dev/shade/pkg/apply"
	"tableflip.dev/shade/pkg/paths"
	"tableflip.dev/shade/pkg/publish"
	"tableflip.dev/shade/pkg/render"
	"tableflip.dev/shade/pkg/store"
	"tableflip.dev/shade/pkg/theme"
	"tableflip.dev/shade/pkg/wallpaper"
)

// Set loads a theme, renders it into a staging directory, commits the
// result atomically, then runs the best-effort apply steps.
type Set struct {
	Paths       *paths.Paths
	ThemeName   string
	Persistence store.Persistence

	NoApply     bool
	NoGnome     bool
	NoIcons     bool
	NoReload    bool
	NoWallpaper bool
}

func (s *Set) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not set, no persistence")
	}

	t, err := theme.Load(s.Paths.DataDir, s.ThemeName)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	// Stage, then commit (atomic rename). Nothing below touches the live
	// tree until Commit.
	txn, err := publish.Begin(s.Paths.GeneratedDir, s.Paths.LiveDir, s.Paths.CurrentLink)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer txn.Discard()

	if err := render.All(s.Paths.TemplatesDir, s.Paths.UserTemplatesDir, txn.Stage(), t.Vars); err != nil {
		return fmt.Errorf("render templates: %w", err)
	}
	if err := stageAssets(t, txn.Stage()); err != nil {
		return fmt.Errorf("stage assets: %w", err)
	}
	if err := txn.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	// Record the name outside the atomic tree, only after the commit
	// landed.
	if err := s.Persistence.RecordTheme(t.Name); err != nil {
		return fmt.Errorf("record current theme: %w", err)
	}

	if s.NoApply {
		return nil
	}

	// Apply steps are best-effort: warn on failure, never abort.
	if !s.NoGnome {
		apply.Gnome(t, s.NoIcons)
	}
	if !s.NoReload {
		apply.Reload(s.Paths, "")
	}
	if !s.NoWallpaper {
		if err := wallpaper.Cycle(s.Paths, t); err != nil {
			warn := color.New(color.FgYellow)
			_, _ = warn.Fprintf(os.Stderr, "warn: wallpaper apply failed: %v\n", err)
		}
	}

	return nil
}

// stageAssets symlinks the per-theme marker files and backgrounds into the
// stage so the live tree is self-contained.
func stageAssets(t *theme.Theme, stage string) error {
	for _, name := range []string{"light.mode", "icons.theme"} {
		src := filepath.Join(t.Root, name)
		if fi, err := os.Stat(src); err != nil || !fi.Mode().IsRegular() {
			continue
		}
		if err := publish.ForceSymlink(src, filepath.Join(stage, name)); err != nil {
			return fmt.Errorf("symlink %s: %w", name, err)
		}
	}

	if t.BackgroundsDir != "" {
		if err := publish.ForceSymlink(t.BackgroundsDir, filepath.Join(stage, "backgrounds")); err != nil {
			return fmt.Errorf("symlink backgrounds: %w", err)
		}
	}

	return nil
}
