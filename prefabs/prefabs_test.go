package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadBossSpecs(t *testing.T) {
	for _, name := range BossFiles {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadBossSpec(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if spec.Name+".yaml" != name {
				t.Fatalf("expected name to match file, got %q", spec.Name)
			}
			if spec.Health <= 0 || len(spec.Attacks.Base) == 0 {
				t.Fatalf("incomplete profile: %+v", spec)
			}
		})
	}
}

func TestLoadArenaSpec(t *testing.T) {
	spec, err := LoadArenaSpec("arena.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 || len(spec.Targets) == 0 {
		t.Fatalf("incomplete arena: %+v", spec)
	}
}

func TestLoadSpecErrors(t *testing.T) {
	if _, err := LoadBossSpec("nope.yaml"); err == nil || !strings.Contains(err.Error(), "prefabs: load") {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestNamesListsEmbeddedPrefabs(t *testing.T) {
	names := Names()
	for _, want := range append([]string{"arena.yaml"}, BossFiles...) {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %s in %v", want, names)
		}
	}
}

func TestCleanScriptPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"herald_ambient", "scripts/herald_ambient.tengo"},
		{"herald_ambient.tengo", "scripts/herald_ambient.tengo"},
		{"scripts/herald_ambient.tengo", "scripts/herald_ambient.tengo"},
		{"prefabs/scripts/herald_ambient", "scripts/herald_ambient.tengo"},
	}
	for _, tc := range tests {
		if got := cleanScriptPath(tc.in); got != tc.want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsBossProfile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"prefabs/primavera.yaml", true},
		{filepath.Join("x", "l_estate.yaml"), true},
		{"prefabs/arena.yaml", false},
		{"prefabs/scripts/herald_ambient.tengo", false},
	}
	for _, tc := range tests {
		if got := IsBossProfile(tc.path); got != tc.want {
			t.Fatalf("IsBossProfile(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func withDir(t *testing.T, d string) {
	t.Helper()
	prev := Dir()
	SetDir(d)
	t.Cleanup(func() { SetDir(prev) })
}

func TestDiskOverride(t *testing.T) {
	d := t.TempDir()
	withDir(t, d)

	if err := os.WriteFile(filepath.Join(d, "arena.yaml"), []byte("name: override\nwidth: 10\nheight: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(d, "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(d, "scripts", "herald_ambient.tengo"), []byte("ambient := func(engine) {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadArenaSpec("prefabs/arena.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Name != "override" {
		t.Fatalf("expected disk override, got %q", spec.Name)
	}
	src, err := LoadScript("herald_ambient")
	if err != nil || string(src) != "ambient := func(engine) {}" {
		t.Fatalf("expected disk script, got %q err=%v", src, err)
	}

	// Files missing on disk fall back to the embedded copy.
	if _, err := LoadBossSpec("primavera.yaml"); err != nil {
		t.Fatalf("expected embedded fallback: %v", err)
	}

	SetDir("")
	spec, err = LoadArenaSpec("arena.yaml")
	if err != nil || spec.Name == "override" {
		t.Fatalf("expected embedded arena with overrides disabled, got %q err=%v", spec.Name, err)
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	d := t.TempDir()
	w, err := NewWatcher(d)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(d, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(d, "primavera.yaml")
	if err := os.WriteFile(target, []byte("name: primavera\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-w.Events:
		if path != target {
			t.Fatalf("expected %s, got %s", target, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	for range w.Events {
	}
}
