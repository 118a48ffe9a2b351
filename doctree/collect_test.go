package doctree

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTestFile(t *testing.T, dir string, relPath string) {
	t.Helper()
	fullPath := filepath.Join(dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(fullPath, []byte("# doc\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func relPaths(files []DocFile) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.RelativePath
	}
	return paths
}

func Test_Collect_MissingDirectoryYieldsEmpty(t *testing.T) {
	files, err := Collect(filepath.Join(t.TempDir(), "nope"), CollectOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected empty result, got %v", files)
	}
}

func Test_Collect_SortedRecursiveEnumeration(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "guide/intro.md")
	writeTestFile(t, dir, "api/reference.md")
	writeTestFile(t, dir, "readme.md")

	files, err := Collect(dir, CollectOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"api/reference.md", "guide/intro.md", "readme.md"}
	if !reflect.DeepEqual(relPaths(files), want) {
		t.Errorf("expected %v, got %v", want, relPaths(files))
	}
}

func Test_Collect_SkipsIndexFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "index.md")
	writeTestFile(t, dir, "guide/index.mdx")
	writeTestFile(t, dir, "guide/intro.md")

	files, err := Collect(dir, CollectOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"guide/intro.md"}
	if !reflect.DeepEqual(relPaths(files), want) {
		t.Errorf("expected %v, got %v", want, relPaths(files))
	}
}

func Test_Collect_ExtensionMatchCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "guide/UPPER.MD")
	writeTestFile(t, dir, "guide/mixed.Mdx")
	writeTestFile(t, dir, "guide/code.go")

	files, err := Collect(dir, CollectOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("expected 2 doc files, got %v", relPaths(files))
	}
}

func Test_Collect_CustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "notes.txt")
	writeTestFile(t, dir, "readme.md")

	files, err := Collect(dir, CollectOptions{Extensions: []string{".txt"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"notes.txt"}
	if !reflect.DeepEqual(relPaths(files), want) {
		t.Errorf("expected %v, got %v", want, relPaths(files))
	}
}

func Test_Collect_ExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "guide/intro.md")
	writeTestFile(t, dir, "internal/secret.md")
	writeTestFile(t, dir, "internal/deep/note.md")

	files, err := Collect(dir, CollectOptions{ExcludeGlobs: []string{"internal/**"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"guide/intro.md"}
	if !reflect.DeepEqual(relPaths(files), want) {
		t.Errorf("expected %v, got %v", want, relPaths(files))
	}
}
