// Package doctree turns a flat list of documentation file paths into a
// nested section hierarchy, one section per path segment. The tree is
// rebuilt from scratch on every call; nothing is mutated incrementally.
package doctree

import (
	"sort"
	"strings"
)

// RootSectionName is the synthetic section holding files that live directly
// in the documentation root. When present it always sorts first.
const RootSectionName = "."

// DocFile is a documentation file path relative to the docs root,
// forward-slash delimited.
type DocFile struct {
	RelativePath string
}

// DocSection groups documentation files under one path segment. Files holds
// only entries with exactly one remaining segment relative to the section;
// deeper files live in exactly one subsection keyed by their next segment.
type DocSection struct {
	Name        string
	Files       []DocFile
	Subsections []DocSection
}

// Build groups files into a section hierarchy, recursing until no file spans
// multiple path segments. File paths in the result are always full paths
// relative to the docs root, regardless of nesting depth.
func Build(files []DocFile) []DocSection {
	var rootFiles []DocFile
	grouped := make(map[string][]DocFile)

	for _, file := range files {
		slash := strings.Index(file.RelativePath, "/")
		if slash < 0 {
			rootFiles = append(rootFiles, file)
			continue
		}
		segment := file.RelativePath[:slash]
		grouped[segment] = append(grouped[segment], DocFile{RelativePath: file.RelativePath[slash+1:]})
	}

	sections := make([]DocSection, 0, len(grouped)+1)
	if len(rootFiles) > 0 {
		sortFiles(rootFiles)
		sections = append(sections, DocSection{Name: RootSectionName, Files: rootFiles})
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var direct, deeper []DocFile
		for _, file := range grouped[name] {
			if strings.Contains(file.RelativePath, "/") {
				deeper = append(deeper, file)
			} else {
				direct = append(direct, file)
			}
		}

		section := DocSection{Name: name}
		for _, file := range direct {
			section.Files = append(section.Files, DocFile{RelativePath: name + "/" + file.RelativePath})
		}
		sortFiles(section.Files)

		if len(deeper) > 0 {
			// The recursive call only ever sees path suffixes; restore the
			// consumed segment on everything it produced.
			section.Subsections = Build(deeper)
			restorePrefix(section.Subsections, name)
		}
		sections = append(sections, section)
	}
	return sections
}

// restorePrefix rewrites every descendant file path back to a full path
// relative to the docs root.
func restorePrefix(sections []DocSection, prefix string) {
	for i := range sections {
		for j := range sections[i].Files {
			sections[i].Files[j].RelativePath = prefix + "/" + sections[i].Files[j].RelativePath
		}
		restorePrefix(sections[i].Subsections, prefix)
	}
}

func sortFiles(files []DocFile) {
	sort.Slice(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})
}
