package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeJSON(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func Test_Version_PrefersInstalledCopy(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, filepath.Join(dir, "package.json"),
		`{"dependencies":{"react":"^19.0.0"}}`)
	writeJSON(t, filepath.Join(dir, "node_modules", "react", "package.json"),
		`{"version":"19.2.1"}`)

	if got := Version(dir, "react"); got != "19.2.1" {
		t.Errorf("expected installed version 19.2.1, got %q", got)
	}
}

func Test_Version_FallsBackToManifestRange(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, filepath.Join(dir, "package.json"),
		`{"dependencies":{"react":"^19.2.0"}}`)

	if got := Version(dir, "react"); got != "19.2.0" {
		t.Errorf("expected 19.2.0, got %q", got)
	}
}

func Test_Version_DevDependencies(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, filepath.Join(dir, "package.json"),
		`{"devDependencies":{"vitest":"~3.1.4"}}`)

	if got := Version(dir, "vitest"); got != "3.1.4" {
		t.Errorf("expected 3.1.4, got %q", got)
	}
}

func Test_Version_ScopedPackage(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, filepath.Join(dir, "node_modules", "@prisma", "client", "package.json"),
		`{"version":"6.8.0"}`)

	if got := Version(dir, "@prisma/client"); got != "6.8.0" {
		t.Errorf("expected 6.8.0, got %q", got)
	}
}

func Test_Version_MissingManifest(t *testing.T) {
	if got := Version(t.TempDir(), "react"); got != "" {
		t.Errorf("expected empty version, got %q", got)
	}
}

func Test_Version_UnresolvableRanges(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, filepath.Join(dir, "package.json"),
		`{"dependencies":{"a":"workspace:*","b":"latest","c":"1.0.0 || 2.0.0"}}`)

	for _, pkg := range []string{"a", "b", "c"} {
		if got := Version(dir, pkg); got != "" {
			t.Errorf("expected empty version for %s, got %q", pkg, got)
		}
	}
}

func Test_Version_MalformedManifest(t *testing.T) {
	dir := t.TempDir()
	writeJSON(t, filepath.Join(dir, "package.json"), `{not json`)

	if got := Version(dir, "react"); got != "" {
		t.Errorf("expected empty version for malformed manifest, got %q", got)
	}
}
