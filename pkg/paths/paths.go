// Package paths resolves the on-disk layout shade works against.
package paths

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Paths is the immutable bag of filesystem locations used throughout the
// app. It is constructed once per invocation and never mutated.
type Paths struct {
	ConfigDir        string
	ThemesDir        string
	DataDir          string
	TemplatesDir     string
	UserTemplatesDir string
	GeneratedDir     string
	LiveDir          string
	CurrentLink      string
	CurrentThemeFile string
	BackgroundLink   string
}

// New derives every path from a config root. Split out from Load so tests
// can point the whole layout at a temp directory.
func New(configDir string) *Paths {
	themes := filepath.Join(configDir, "themes")
	generated := filepath.Join(themes, "generated")

	return &Paths{
		ConfigDir:        configDir,
		ThemesDir:        themes,
		DataDir:          filepath.Join(themes, "data"),
		TemplatesDir:     filepath.Join(themes, "templates"),
		UserTemplatesDir: filepath.Join(themes, "user-templates"),
		GeneratedDir:     generated,
		LiveDir:          filepath.Join(generated, "live"),
		CurrentLink:      filepath.Join(themes, "current"),
		CurrentThemeFile: filepath.Join(themes, "current.theme"),
		BackgroundLink:   filepath.Join(themes, "background"),
	}
}

// Load resolves the config root from a .shade config file, SHADE_*
// environment variables, or the XDG default.
func Load() (*Paths, error) {
	viper.SetDefault("path", defaultConfigDir())
	viper.SetConfigName(".shade") // .yaml is implicit
	viper.SetEnvPrefix("SHADE")
	viper.AutomaticEnv()

	if override := os.Getenv("SHADE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	root, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return New(root), nil
}

// UserBackgroundsDir is the per-theme wallpaper override directory.
func (p *Paths) UserBackgroundsDir(theme string) string {
	return filepath.Join(p.ConfigDir, "backgrounds", theme)
}

func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "shade")
	}
	return "~/.config/shade"
}
