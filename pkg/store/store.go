// Package store persists the small bits of state shade keeps between
// invocations.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNoCurrentTheme is returned before the first successful `set`.
var ErrNoCurrentTheme = errors.New("current theme is not set")

const currentThemeKey = "current.theme"

// Persistence records which theme is active so follow-up invocations can
// run statelessly.
type Persistence interface {
	CurrentTheme() (string, error)
	RecordTheme(name string) error
}

// Load creates a Persistence backed by diskv rooted at the themes dir. The
// flat transform keeps keys as plain files directly under the base path, so
// the current theme lives at <themes>/current.theme.
func Load(themesDir string) Persistence {
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     themesDir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024,
	}), basePath: themesDir}
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) CurrentTheme() (string, error) {
	val, err := p.d.Read(currentThemeKey)
	if err != nil {
		return "", fmt.Errorf("%w (%s)", ErrNoCurrentTheme, p.basePath)
	}

	name := strings.TrimSpace(string(val))
	if name == "" {
		return "", fmt.Errorf("%w (%s)", ErrNoCurrentTheme, p.basePath)
	}
	return name, nil
}

func (p *persistence) RecordTheme(name string) error {
	if err := p.d.Write(currentThemeKey, []byte(name+"\n")); err != nil {
		return fmt.Errorf("write %s: %w", currentThemeKey, err)
	}
	return nil
}
