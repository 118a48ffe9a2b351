// Package tools implements the MCP tool handlers that expose downloaded
// documentation sets to connected agents.
package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lexandro/docdex/doctree"
)

// DocSet summarizes one downloaded documentation set.
type DocSet struct {
	Key       string
	FileCount int
}

// ListSets enumerates the documentation sets under storageDir. Every
// subdirectory is one set, keyed by its name.
func ListSets(storageDir string) ([]DocSet, error) {
	entries, err := os.ReadDir(storageDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading storage directory %s: %w", storageDir, err)
	}

	var sets []DocSet
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		files, err := doctree.Collect(filepath.Join(storageDir, entry.Name()), doctree.CollectOptions{})
		if err != nil {
			return nil, err
		}
		sets = append(sets, DocSet{Key: entry.Name(), FileCount: len(files)})
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Key < sets[j].Key })
	return sets, nil
}

// resolveDocPath joins a set key and a relative file path under storageDir,
// rejecting anything that would escape the storage directory.
func resolveDocPath(storageDir string, key string, filePath string) (string, error) {
	if key == "" || strings.ContainsAny(key, "/\\") || key == ".." {
		return "", fmt.Errorf("invalid doc set key %q", key)
	}
	cleaned := filepath.ToSlash(filepath.Clean(filepath.FromSlash(filePath)))
	if filepath.IsAbs(filePath) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("invalid file path %q", filePath)
	}
	return filepath.Join(storageDir, key, filepath.FromSlash(cleaned)), nil
}
