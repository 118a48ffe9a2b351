package doctree

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExtensions are the file extensions collected when the caller does
// not supply its own set.
var DefaultExtensions = []string{".md", ".mdx", ".markdown", ".rst"}

// CollectOptions configures Collect.
type CollectOptions struct {
	// Extensions overrides DefaultExtensions. Matching is case-insensitive.
	Extensions []string
	// ExcludeGlobs are doublestar patterns matched against the relative path
	// of each file; matches are skipped.
	ExcludeGlobs []string
}

// Collect enumerates documentation files under dir, returning paths relative
// to dir in lexicographic order. Files whose base name starts with "index."
// are treated as navigation-only and skipped. A missing directory yields an
// empty result, not an error.
func Collect(dir string, options CollectOptions) ([]DocFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	extensionSet := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extensionSet[strings.ToLower(ext)] = true
	}

	var files []DocFile
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip entries that can't be read
		}
		if d.IsDir() {
			return nil
		}
		if !extensionSet[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if strings.HasPrefix(strings.ToLower(d.Name()), "index.") {
			return nil
		}
		relativePath, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return nil
		}
		relativePath = filepath.ToSlash(relativePath)
		for _, pattern := range options.ExcludeGlobs {
			if matched, matchErr := doublestar.Match(pattern, relativePath); matchErr == nil && matched {
				return nil
			}
		}
		files = append(files, DocFile{RelativePath: relativePath})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})
	return files, nil
}
