// Package marker maintains namespaced index blocks inside a host text
// document. Each block is bounded by a start/end marker pair embedding the
// namespace key, wrapped in HTML comment syntax so renderers never show it.
// Injection is idempotent, and any corrupted marker state is repaired by
// stripping the offending tokens and appending a fresh block. That policy is
// part of the contract; callers depend on it, so keep it rather than
// attempting smarter partial recovery.
package marker

import "strings"

const markerPrefix = "docdex"

// StartMarker returns the literal start token for a namespace key.
func StartMarker(key string) string {
	return "<!-- " + markerPrefix + ":" + key + "-START -->"
}

// EndMarker returns the literal end token for a namespace key.
func EndMarker(key string) string {
	return "<!-- " + markerPrefix + ":" + key + "-END -->"
}

// Has reports whether doc contains a start marker for key. Key comparison is
// exact and case-sensitive.
func Has(doc string, key string) bool {
	return strings.Contains(doc, StartMarker(key))
}

// Inject returns doc rewritten to contain exactly one up-to-date block for
// key, holding payload verbatim between the markers. Every other namespace's
// block and all surrounding text stay byte-identical. Calling Inject twice
// with the same payload and key yields byte-identical output both times.
func Inject(doc string, payload string, key string) string {
	start := StartMarker(key)
	end := EndMarker(key)
	block := start + "\n" + payload + "\n" + end

	startIndex := strings.Index(doc, start)
	if startIndex < 0 {
		return appendBlock(doc, block)
	}

	endIndex := strings.Index(doc, end)
	if endIndex > startIndex {
		return doc[:startIndex] + block + doc[endIndex+len(end):]
	}

	// Missing or reordered end marker. Strip the tokens and fall back to a
	// clean append, same as the no-block path.
	doc = strings.ReplaceAll(doc, start, "")
	doc = strings.ReplaceAll(doc, end, "")
	return appendBlock(doc, block)
}

// Remove returns doc with the block for key deleted. A well-formed block is
// removed together with one preceding blank line and at most one trailing
// newline, so repeated remove/inject cycles never accumulate runs of blank
// lines. Corrupted marker state is repaired by stripping whichever tokens
// are present; text that followed an orphaned start marker stays in the
// document as ordinary content.
func Remove(doc string, key string) string {
	start := StartMarker(key)
	end := EndMarker(key)

	startIndex := strings.Index(doc, start)
	if startIndex < 0 {
		return doc
	}

	endIndex := strings.Index(doc, end)
	if endIndex <= startIndex {
		doc = strings.ReplaceAll(doc, start, "")
		doc = strings.ReplaceAll(doc, end, "")
		return doc
	}

	from := startIndex
	to := endIndex + len(end)
	if to < len(doc) && doc[to] == '\n' {
		to++
	}
	if from >= 2 && doc[from-1] == '\n' && doc[from-2] == '\n' {
		from -= 2
	}
	return doc[:from] + doc[to:]
}

// appendBlock attaches a block to the end of doc, separated from existing
// content by exactly one blank line.
func appendBlock(doc string, block string) string {
	if doc == "" {
		return block + "\n"
	}
	if strings.HasSuffix(doc, "\n") {
		return doc + "\n" + block + "\n"
	}
	return doc + "\n\n" + block + "\n"
}
