package apply

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"tableflip.dev/shade/pkg/paths"
)

// Reload pokes running apps to pick up the freshly published config:
// waybar, mako, the XDG portals, kitty, and btop. kittyRel overrides the
// kitty config path relative to the current link (default kitty.conf).
func Reload(p *paths.Paths, kittyRel string) {
	pkillSignal("waybar", "SIGUSR2")

	detach(exec.Command("makoctl", "reload"))

	// Start, not Run: systemctl can block on D-Bus activation.
	for _, service := range []string{
		"xdg-desktop-portal.service",
		"xdg-desktop-portal-gtk.service",
	} {
		detach(exec.Command("systemctl", "--user", "restart", service))
	}

	if kittyRel == "" {
		kittyRel = "kitty.conf"
	}
	kittyConf := filepath.Join(p.CurrentLink, kittyRel)
	if fi, err := os.Stat(kittyConf); err == nil && fi.Mode().IsRegular() {
		reloadKitty(kittyConf)
	}

	pkillSignal("btop", "SIGUSR2")
}

func pkillSignal(name, signal string) {
	detach(exec.Command("pkill", "-"+signal, name))
}

func detach(cmd *exec.Cmd) {
	_ = cmd.Start()
}

// reloadKitty sends `set-colors -a <conf>` to every live kitty socket.
func reloadKitty(conf string) {
	for _, sock := range kittySockets() {
		sockURI := fmt.Sprintf("unix:%s", sock)
		err := exec.Command("kitty", "@", "--to", sockURI, "set-colors", "-a", conf).Run()

		// Stale sockets accumulate when kitty windows close without
		// cleanup.
		if err != nil {
			_ = os.Remove(sock)
		}
	}
}

// kittySockets enumerates kitty UNIX sockets under ~/.cache/kitty: the
// plain `kitty` socket plus numbered extras like `kitty-1`.
func kittySockets() []string {
	home := os.Getenv("HOME")
	if home == "" {
		return nil
	}
	base := filepath.Join(home, ".cache", "kitty")

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil
	}

	var socks []string
	for _, e := range entries {
		name := e.Name()
		if name != "kitty" && !strings.HasPrefix(name, "kitty-") {
			continue
		}
		path := filepath.Join(base, name)
		if isSocket(path) {
			socks = append(socks, path)
		}
	}
	return socks
}

func isSocket(path string) bool {
	fi, err := os.Lstat(path)
	return err == nil && fi.Mode()&os.ModeSocket != 0
}
