package wallpaper

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	var paths []string
	for _, name := range names {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(name), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
		paths = append(paths, p)
	}
	return paths
}

func TestCollectSortsAndResolves(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "c.png", "a.png", "b.png")

	got := Collect(dir, filepath.Join(dir, "missing"))
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %#v", got)
	}
	for i, want := range []string{"a.png", "b.png", "c.png"} {
		if filepath.Base(got[i].Path) != want {
			t.Errorf("candidate %d = %s, want %s", i, got[i].Path, want)
		}
		if got[i].Canonical == "" {
			t.Errorf("candidate %d has no resolved path", i)
		}
	}
}

func TestCollectDeduplicatesIdenticalPaths(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.png")

	got := Collect(dir, dir)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate after dedup, got %#v", got)
	}
}

func TestCollectMergesBothDirs(t *testing.T) {
	user := t.TempDir()
	theme := t.TempDir()
	touch(t, user, "z.png")
	touch(t, theme, "a.png")

	got := Collect(user, theme)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %#v", got)
	}
}

func TestCollectSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.png")
	if err := os.MkdirAll(filepath.Join(dir, "thumbs"), 0o755); err != nil {
		t.Fatal(err)
	}

	got := Collect(dir, "")
	if len(got) != 1 || filepath.Base(got[0].Path) != "a.png" {
		t.Fatalf("expected only a.png, got %#v", got)
	}
}

func TestNextCycles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.png", "b.png", "c.png")
	candidates := Collect(dir, "")

	tests := []struct {
		current string
		want    string
	}{
		{current: candidates[1].Canonical, want: "c.png"}, // after b comes c
		{current: candidates[2].Canonical, want: "a.png"}, // wraps around
		{current: candidates[0].Canonical, want: "b.png"},
		{current: "/somewhere/else.png", want: "a.png"}, // unknown restarts
		{current: "", want: "a.png"},                    // broken link restarts
	}

	for _, tc := range tests {
		if got := Next(candidates, tc.current); filepath.Base(got) != tc.want {
			t.Errorf("Next(current=%q) = %s, want %s", tc.current, got, tc.want)
		}
	}
}

func TestNextMatchesThroughSymlinks(t *testing.T) {
	real := t.TempDir()
	linked := t.TempDir()
	targets := touch(t, real, "a.png", "b.png")

	// The candidate dir holds symlinks; matching is on resolved paths.
	for i, name := range []string{"a.png", "b.png"} {
		if err := os.Symlink(targets[i], filepath.Join(linked, name)); err != nil {
			t.Fatal(err)
		}
	}

	candidates := Collect(linked, "")
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %#v", candidates)
	}

	resolvedA, err := filepath.EvalSymlinks(targets[0])
	if err != nil {
		t.Fatal(err)
	}
	if got := Next(candidates, resolvedA); filepath.Base(got) != "b.png" {
		t.Errorf("Next after a.png = %s, want b.png", got)
	}
}
