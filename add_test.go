package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_ResolveSpec_CatalogKey(t *testing.T) {
	spec, err := resolveSpec("react", addOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.key != "react" {
		t.Errorf("expected key react, got %q", spec.key)
	}
	if spec.fromRepo {
		t.Error("catalog lookup must not be marked as repo mode")
	}
	if spec.repo == "" || spec.name == "" {
		t.Errorf("expected repo and name from the catalog, got %+v", spec)
	}
}

func Test_ResolveSpec_UnknownKey(t *testing.T) {
	_, err := resolveSpec("no-such-library", addOptions{})
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "no-such-library") {
		t.Errorf("error should name the key: %v", err)
	}
}

func Test_ResolveSpec_RepoMode(t *testing.T) {
	spec, err := resolveSpec("", addOptions{repo: "acme/RocketDocs@v2", docsPath: "guides"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !spec.fromRepo {
		t.Error("expected repo mode")
	}
	if spec.key != "rocketdocs" {
		t.Errorf("expected lowercased repo name as key, got %q", spec.key)
	}
	if spec.docsPath != "guides" {
		t.Errorf("expected docs path from flag, got %q", spec.docsPath)
	}
}

func Test_ResolveSpec_Overrides(t *testing.T) {
	spec, err := resolveSpec("react", addOptions{name: "React 19", docsPath: "docs/api"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.name != "React 19" {
		t.Errorf("expected name override, got %q", spec.name)
	}
	if spec.docsPath != "docs/api" {
		t.Errorf("expected docs path override, got %q", spec.docsPath)
	}
}

func Test_ResolveSpec_RejectsKeyAndRepo(t *testing.T) {
	if _, err := resolveSpec("react", addOptions{repo: "facebook/react"}); err == nil {
		t.Fatal("expected error when both a key and -repo are given")
	}
}

func Test_ResolveSpec_RejectsNeither(t *testing.T) {
	if _, err := resolveSpec("", addOptions{}); err == nil {
		t.Fatal("expected error when neither a key nor -repo is given")
	}
}

func Test_MultiFlag_Repeatable(t *testing.T) {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	var excludes multiFlag
	fs.Var(&excludes, "exclude", "")

	if err := fs.Parse([]string{"-exclude", "**/changelog.md", "-exclude", "internal/**"}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(excludes) != 2 || excludes[0] != "**/changelog.md" || excludes[1] != "internal/**" {
		t.Errorf("unexpected excludes: %v", excludes)
	}
}

func Test_ReadHostDocument_MissingFileIsEmpty(t *testing.T) {
	doc, err := readHostDocument(filepath.Join(t.TempDir(), "AGENTS.md"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != "" {
		t.Errorf("expected empty document, got %q", doc)
	}
}

func Test_WriteHostDocument_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "AGENTS.md")

	if err := writeHostDocument(path, "# Project\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	doc, err := readHostDocument(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if doc != "# Project\n" {
		t.Errorf("unexpected content %q", doc)
	}
}

func Test_WriteHostDocument_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "AGENTS.md")

	if err := writeHostDocument(path, "first\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := writeHostDocument(path, "second\n"); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "AGENTS.md" {
		t.Errorf("expected only AGENTS.md in %s, got %v", dir, entries)
	}
}
