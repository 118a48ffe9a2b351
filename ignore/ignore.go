// Package ignore keeps docdex-generated paths out of version control by
// maintaining a managed stanza in the project's .gitignore.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// stanzaHeader marks the block of entries docdex appended.
const stanzaHeader = "# docdex managed documentation"

// EnsureIgnored appends .gitignore entries for any of the given paths not
// already covered by existing rules. Paths are relative to projectDir,
// forward slashes; directory entries should end with "/". The call is
// idempotent: once a path is matched by the file's rules, later calls leave
// the file untouched. A missing .gitignore is created.
func EnsureIgnored(projectDir string, paths []string) error {
	gitignorePath := filepath.Join(projectDir, ".gitignore")
	matcher := loadIgnoreFile(gitignorePath, projectDir)

	var missing []string
	for _, p := range paths {
		relativePath := strings.TrimSuffix(filepath.ToSlash(p), "/")
		if relativePath == "" {
			continue
		}
		if matcher != nil {
			if match := matcher.Relative(relativePath, true); match != nil && match.Ignore() {
				continue
			}
		}
		missing = append(missing, entryFor(p))
	}
	if len(missing) == 0 {
		return nil
	}

	existing, err := os.ReadFile(gitignorePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", gitignorePath, err)
	}

	var builder strings.Builder
	builder.Write(existing)
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		builder.WriteString("\n")
	}
	if len(existing) > 0 {
		builder.WriteString("\n")
	}
	builder.WriteString(stanzaHeader + "\n")
	for _, entry := range missing {
		builder.WriteString(entry + "\n")
	}

	if err := os.WriteFile(gitignorePath, []byte(builder.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", gitignorePath, err)
	}
	return nil
}

// entryFor anchors the pattern to the project root so a storage directory
// named like a common word doesn't ignore unrelated nested paths.
func entryFor(p string) string {
	entry := filepath.ToSlash(p)
	if !strings.HasPrefix(entry, "/") {
		entry = "/" + entry
	}
	return entry
}

// loadIgnoreFile reads an ignore file and creates a matcher from it.
// Uses the io.Reader form so the file handle is closed promptly.
func loadIgnoreFile(path string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, baseDir, nil)
}
