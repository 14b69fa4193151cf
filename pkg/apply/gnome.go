// Package apply runs the best-effort desktop side effects after a publish:
// GNOME settings, app reloads. Failures here are reported but never abort
// an already-committed theme change.
package apply

import (
	"os/exec"

	"tableflip.dev/shade/pkg/theme"
)

const gnomeSchema = "org.gnome.desktop.interface"

// Gnome applies color-scheme, gtk-theme, and optionally the icon theme via
// gsettings.
func Gnome(t *theme.Theme, noIcons bool) {
	colorScheme, gtkTheme := "prefer-dark", "adw-gtk3-dark"
	if t.IsLight {
		colorScheme, gtkTheme = "prefer-light", "adw-gtk3"
	}

	gsettingsSet(gnomeSchema, "color-scheme", colorScheme)
	gsettingsSet(gnomeSchema, "gtk-theme", gtkTheme)

	if !noIcons && t.IconTheme != "" {
		gsettingsSet(gnomeSchema, "icon-theme", t.IconTheme)
	}
}

func gsettingsSet(schema, key, value string) {
	_ = exec.Command("gsettings", "set", schema, key, value).Run()
}
