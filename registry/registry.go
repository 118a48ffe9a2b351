// Package registry holds the embedded catalog of well-known libraries, so
// users can run "docdex add react" without knowing where a project keeps
// its documentation.
package registry

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed libraries.yaml
var rawCatalog []byte

// Library is one catalog entry.
type Library struct {
	// Name is the display name used in the index header, e.g. "React".
	Name string `yaml:"name"`
	// Repo is the GitHub repository holding the documentation, owner/repo.
	Repo string `yaml:"repo"`
	// DocsPath pins the documentation directory inside the repository.
	// When empty the docs root is detected from the repository tree.
	DocsPath string `yaml:"docsPath,omitempty"`
	// Package is the npm package name used for version lookup. Defaults to
	// the catalog key.
	Package string `yaml:"package,omitempty"`
}

type catalog struct {
	Libraries map[string]Library `yaml:"libraries"`
}

var libraries map[string]Library

func init() {
	var c catalog
	if err := yaml.Unmarshal(rawCatalog, &c); err != nil {
		panic(fmt.Sprintf("registry: malformed embedded catalog: %v", err))
	}
	libraries = c.Libraries
}

// Lookup returns the catalog entry for key, with Package defaulted.
func Lookup(key string) (Library, bool) {
	lib, ok := libraries[key]
	if ok && lib.Package == "" {
		lib.Package = key
	}
	return lib, ok
}

// Keys returns every catalog key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(libraries))
	for key := range libraries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
