// Package detect locates the most likely documentation root inside a
// repository, given nothing but a flat list of file paths. No file contents
// are read; the heuristic works entirely on names, counts and depth.
package detect

import (
	"path"
	"sort"
	"strings"
)

// minDocFiles is the minimum cumulative number of documentation files a
// directory must hold before it is considered a candidate at all.
const minDocFiles = 3

// docExtensions are the file extensions counted as documentation.
var docExtensions = map[string]bool{
	".md":       true,
	".mdx":      true,
	".markdown": true,
	".rst":      true,
}

// excludedSegments are directory names that disqualify a path entirely.
// A file is discarded if any segment of its directory matches, not just
// the immediate parent.
var excludedSegments = map[string]bool{
	// Dependencies
	"node_modules": true,
	"vendor":       true,
	"third_party":  true,

	// Build output
	"dist":     true,
	"build":    true,
	"out":      true,
	"target":   true,
	"coverage": true,
	"tmp":      true,

	// Tests and fixtures
	"test":      true,
	"tests":     true,
	"__tests__": true,
	"testdata":  true,
	"fixtures":  true,
	"fixture":   true,
	"e2e":       true,

	// Examples and demos
	"example":  true,
	"examples": true,
	"demo":     true,
	"demos":    true,
	"sample":   true,
	"samples":  true,

	// Version control and CI metadata
	".git":      true,
	".github":   true,
	".gitlab":   true,
	".circleci": true,

	// Hidden tooling
	".vscode":    true,
	".idea":      true,
	".husky":     true,
	".changeset": true,
	".storybook": true,

	// Images and assets
	"assets": true,
	"images": true,
	"img":    true,
	"icons":  true,
	"static": true,
	"media":  true,
	"fonts":  true,
}

// bonusNames are directory names that strongly suggest a documentation root.
// Real-world docs roots overwhelmingly use one of these.
var bonusNames = map[string]bool{
	"doc":           true,
	"docs":          true,
	"documentation": true,
	"content":       true,
	"guide":         true,
	"guides":        true,
	"wiki":          true,
	"reference":     true,
	"manual":        true,
	"pages":         true,
	"handbook":      true,
}

// Candidate is one ranked documentation-root candidate.
type Candidate struct {
	Dir   string // directory path, forward slashes, relative to the repo root
	Count int    // cumulative documentation files in the directory's subtree
	Depth int    // number of path segments
	Bonus bool   // directory name suggests documentation
}

// Detect returns the most likely documentation root for the given repository
// paths, or "" when no directory holds enough documentation files.
func Detect(paths []string) string {
	candidates := Candidates(paths)
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0].Dir
}

// Candidates scores every plausible documentation root and returns them
// ranked best-first. Ranking is fully deterministic: name bonus, then
// cumulative count, then depth (shallower wins), then path.
func Candidates(paths []string) []Candidate {
	raw := tallyDirectories(paths)

	// Aggregate each directory's raw count into every ancestor so an
	// umbrella directory is credited with its whole subtree.
	cumulative := make(map[string]int, len(raw))
	for dir, count := range raw {
		segments := strings.Split(dir, "/")
		for i := 1; i <= len(segments); i++ {
			if excludedSegments[strings.ToLower(segments[i-1])] {
				continue
			}
			cumulative[strings.Join(segments[:i], "/")] += count
		}
	}

	candidates := make([]Candidate, 0, len(cumulative))
	for dir, count := range cumulative {
		if count < minDocFiles {
			continue
		}
		candidates = append(candidates, Candidate{
			Dir:   dir,
			Count: count,
			Depth: strings.Count(dir, "/") + 1,
			Bonus: bonusNames[strings.ToLower(path.Base(dir))],
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Bonus != b.Bonus {
			return a.Bonus
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		return a.Dir < b.Dir
	})
	return candidates
}

// tallyDirectories counts documentation files per directory, discarding
// root-level files and anything below an excluded segment.
func tallyDirectories(paths []string) map[string]int {
	raw := make(map[string]int)
	for _, p := range paths {
		p = strings.Trim(strings.TrimSpace(p), "/")
		if !docExtensions[strings.ToLower(path.Ext(p))] {
			continue
		}
		dir := path.Dir(p)
		if dir == "." || dir == "/" {
			continue
		}
		if hasExcludedSegment(dir) {
			continue
		}
		raw[dir]++
	}
	return raw
}

func hasExcludedSegment(dir string) bool {
	for _, segment := range strings.Split(dir, "/") {
		if excludedSegments[strings.ToLower(segment)] {
			return true
		}
	}
	return false
}
