package tools

import (
	"fmt"
	"strings"

	"github.com/lexandro/docdex/doctree"
)

// FormatSets formats the overview of downloaded documentation sets.
func FormatSets(sets []DocSet) string {
	if len(sets) == 0 {
		return "No documentation sets downloaded. Run \"docdex add <library>\" first."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%d documentation sets:\n\n", len(sets)))
	for _, set := range sets {
		builder.WriteString(fmt.Sprintf("  %s  (%d files)\n", set.Key, set.FileCount))
	}
	return builder.String()
}

// FormatFiles formats one set's file listing.
func FormatFiles(key string, files []doctree.DocFile) string {
	if len(files) == 0 {
		return fmt.Sprintf("No documentation files in set %q.", key)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%s: %d files\n\n", key, len(files)))
	for _, file := range files {
		builder.WriteString("  " + file.RelativePath + "\n")
	}
	return builder.String()
}

// FormatFileContent formats a doc file with line numbers, matching the
// "N: content" shape agents already know from their built-in read tools.
func FormatFileContent(filePath string, content string) string {
	lines := strings.Split(content, "\n")

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("── %s (%d lines) ──\n", filePath, len(lines)))

	width := len(fmt.Sprintf("%d", len(lines)))
	for i, line := range lines {
		builder.WriteString(fmt.Sprintf("%*d: %s\n", width, i+1, line))
	}
	return builder.String()
}
