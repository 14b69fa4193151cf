// Package options defines shared flag helpers for CLI commands.
package options

import "github.com/spf13/cobra"

// ApplyOptions captures the flags that skip individual apply steps.
type ApplyOptions struct {
	NoApply     bool
	NoGnome     bool
	NoIcons     bool
	NoReload    bool
	NoWallpaper bool
}

// AddApplyArgs wires the apply-step flags on the provided command.
func AddApplyArgs(cmd *cobra.Command, o *ApplyOptions) {
	cmd.Flags().BoolVar(&o.NoApply, "no-apply", false,
		"Publish only; skip every apply step.")
	cmd.Flags().BoolVar(&o.NoGnome, "no-gnome", false,
		"Skip GNOME color-scheme and gtk-theme changes.")
	cmd.Flags().BoolVar(&o.NoIcons, "no-icons", false,
		"Skip the GNOME icon-theme change.")
	cmd.Flags().BoolVar(&o.NoReload, "no-reload", false,
		"Skip reloading running apps.")
	cmd.Flags().BoolVar(&o.NoWallpaper, "no-wallpaper", false,
		"Skip wallpaper rotation.")
}
