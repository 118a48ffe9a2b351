// Package encode serializes a documentation section tree into the compact
// single-line index format injected into host documents. Downstream agents
// split the output on the structural delimiters, so the format is exact:
// "|"-joined parts, with directory groups of the form dir:{a.md,b.md}.
package encode

import (
	"path"
	"strings"

	"github.com/lexandro/docdex/doctree"
)

// Meta describes the documentation set being encoded.
type Meta struct {
	Name       string // display name, e.g. "React"
	DocsRoot   string // label for the root line, e.g. ".docdex/react"
	Version    string // resolved semantic version, optional
	LibKey     string // registry key that produced this index, if any
	Repo       string // raw repository reference, when no registry key was used
	DocsPath   string // explicit docs sub-path inside the repository, optional
	OutputFile string // host document label, e.g. "AGENTS.md"
	Hint       string // overrides the generated regeneration hint when set
}

// escaper guarantees the output never contains an unescaped structural
// delimiter inside a file name.
var escaper = strings.NewReplacer(
	"|", "%7C",
	",", "%2C",
	"{", "%7B",
	"}", "%7D",
)

// Encode flattens the section tree into directory groups and serializes the
// whole index as one line. It is pure and total: an empty tree still yields
// the header, root, instruction and regeneration parts.
func Encode(sections []doctree.DocSection, meta Meta) string {
	parts := make([]string, 0, len(sections)+4)

	header := "[" + meta.Name + " Docs Index"
	if meta.Version != "" {
		header += " v" + meta.Version
	}
	header += "]"
	parts = append(parts, header)
	parts = append(parts, "root: "+meta.DocsRoot)
	parts = append(parts, "IMPORTANT: before answering questions about "+meta.Name+
		", retrieve the matching files below with your file tools instead of relying on prior knowledge.")
	parts = append(parts, regenerationHint(meta))

	for _, section := range sections {
		appendGroups(&parts, section)
	}
	return strings.Join(parts, "|")
}

// regenerationHint builds the literal invocation that reproduces this index.
func regenerationHint(meta Meta) string {
	if meta.Hint != "" {
		return meta.Hint
	}
	output := meta.OutputFile
	if output == "" {
		output = "AGENTS.md"
	}
	if meta.LibKey != "" {
		return "To regenerate: docdex add " + meta.LibKey + " -output " + output
	}
	hint := "To regenerate: docdex add -repo " + meta.Repo
	if meta.DocsPath != "" {
		hint += " -docs-path " + meta.DocsPath
	}
	return hint + " -output " + output
}

// appendGroups walks the tree depth-first, a section before its subsections,
// emitting one part per directory that directly holds files.
func appendGroups(parts *[]string, section doctree.DocSection) {
	if len(section.Files) > 0 {
		directory := path.Dir(section.Files[0].RelativePath)
		names := make([]string, len(section.Files))
		for i, file := range section.Files {
			names[i] = escaper.Replace(path.Base(file.RelativePath))
		}
		*parts = append(*parts, directory+":{"+strings.Join(names, ",")+"}")
	}
	for _, subsection := range section.Subsections {
		appendGroups(parts, subsection)
	}
}
