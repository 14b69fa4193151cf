// Package render walks the template trees and writes the output tree.
package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"tableflip.dev/shade/pkg/template"
)

// Ext is the filename suffix marking a renderable template. It is stripped
// from the output filename.
const Ext = ".tpl"

// ErrTemplatesDirMissing marks an absent bundled templates root.
var ErrTemplatesDirMissing = errors.New("templates directory not found")

// All renders both template tiers into outDir.
//
// User templates are rendered first and win: a bundled template at the same
// relative path is skipped. Any failure aborts the whole render, which is
// why callers always point outDir at a disposable staging area.
func All(templatesDir, userTemplatesDir, outDir string, vars map[string]string) error {
	if !isDir(templatesDir) {
		return fmt.Errorf("%w: %s", ErrTemplatesDirMissing, templatesDir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	userProvided := make(map[string]struct{})

	if isDir(userTemplatesDir) {
		tpls, err := templatesIn(userTemplatesDir)
		if err != nil {
			return err
		}
		for _, tpl := range tpls {
			rel, err := filepath.Rel(userTemplatesDir, tpl)
			if err != nil {
				return err
			}
			if err := renderOne(tpl, rel, outDir, vars); err != nil {
				return err
			}
			userProvided[rel] = struct{}{}
		}
	}

	tpls, err := templatesIn(templatesDir)
	if err != nil {
		return err
	}
	for _, tpl := range tpls {
		rel, err := filepath.Rel(templatesDir, tpl)
		if err != nil {
			return err
		}
		if _, ok := userProvided[rel]; ok {
			continue
		}
		if err := renderOne(tpl, rel, outDir, vars); err != nil {
			return err
		}
	}

	return nil
}

// renderOne expands a single template to outDir/rel minus the extension.
func renderOne(tplPath, rel string, outDir string, vars map[string]string) error {
	src, err := os.ReadFile(tplPath)
	if err != nil {
		return fmt.Errorf("read template %s: %w", tplPath, err)
	}

	rendered := template.Expand(string(src), vars)

	outPath := filepath.Join(outDir, strings.TrimSuffix(rel, Ext))
	if parent := filepath.Dir(outPath); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("create output subdir %s: %w", parent, err)
		}
	}
	if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}

// templatesIn walks dir and returns the paths of all template files.
func templatesIn(dir string) ([]string, error) {
	var tpls []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), Ext) && d.Name() != Ext {
			tpls = append(tpls, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return tpls, nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
