package publish

import (
	"os"
	"path/filepath"
	"testing"
)

func TestForceSymlinkCreatesParents(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target")
	link := filepath.Join(root, "a", "b", "link")

	if err := ForceSymlink(target, link); err != nil {
		t.Fatalf("ForceSymlink: %v", err)
	}
	if got, err := os.Readlink(link); err != nil || got != target {
		t.Fatalf("link -> %q, %v", got, err)
	}
}

func TestForceSymlinkReplacesExistingEntries(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target")

	tests := []struct {
		name string
		prep func(t *testing.T, link string)
	}{
		{name: "file", prep: func(t *testing.T, link string) {
			if err := os.WriteFile(link, []byte("x"), 0o644); err != nil {
				t.Fatal(err)
			}
		}},
		{name: "directory", prep: func(t *testing.T, link string) {
			if err := os.MkdirAll(filepath.Join(link, "nested"), 0o755); err != nil {
				t.Fatal(err)
			}
		}},
		{name: "broken symlink", prep: func(t *testing.T, link string) {
			if err := os.Symlink(filepath.Join(root, "gone"), link); err != nil {
				t.Fatal(err)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			link := filepath.Join(t.TempDir(), "link")
			tc.prep(t, link)

			if err := ForceSymlink(target, link); err != nil {
				t.Fatalf("ForceSymlink over a %s: %v", tc.name, err)
			}
			if got, err := os.Readlink(link); err != nil || got != target {
				t.Fatalf("link -> %q, %v", got, err)
			}
		})
	}
}

func TestRemoveAny(t *testing.T) {
	root := t.TempDir()

	file := filepath.Join(root, "f")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(root, "d")
	if err := os.MkdirAll(filepath.Join(dir, "deep"), 0o755); err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{file, dir} {
		if err := RemoveAny(p); err != nil {
			t.Fatalf("RemoveAny(%s): %v", p, err)
		}
		if _, err := os.Lstat(p); !os.IsNotExist(err) {
			t.Fatalf("%s still exists", p)
		}
	}

	if err := RemoveAny(filepath.Join(root, "absent")); err == nil {
		t.Fatal("RemoveAny on a missing path must error")
	}
}
