// Package manifest extracts the installed semantic version of a dependency
// from a JavaScript project's package manifests.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// packageJSON mirrors the fields read from a package.json file.
type packageJSON struct {
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Version returns the semantic version of pkgName as used by the project in
// projectDir. The installed copy under node_modules is authoritative; the
// project manifest's (range-stripped) dependency entry is the fallback.
// Returns "" when no version can be determined; that is not an error.
func Version(projectDir string, pkgName string) string {
	if pkgName == "" {
		return ""
	}

	installed := filepath.Join(projectDir, "node_modules", filepath.FromSlash(pkgName), "package.json")
	if pkg, ok := readPackageJSON(installed); ok && pkg.Version != "" {
		return pkg.Version
	}

	pkg, ok := readPackageJSON(filepath.Join(projectDir, "package.json"))
	if !ok {
		return ""
	}
	if v, ok := pkg.Dependencies[pkgName]; ok {
		return stripRange(v)
	}
	if v, ok := pkg.DevDependencies[pkgName]; ok {
		return stripRange(v)
	}
	return ""
}

func readPackageJSON(path string) (packageJSON, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return packageJSON{}, false
	}
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return packageJSON{}, false
	}
	return pkg, true
}

// stripRange reduces a dependency range like "^19.2.0" or ">=1.0.0" to a
// bare version. Ranges that don't resolve to a single version (workspace
// protocols, tags, unions) yield "".
func stripRange(raw string) string {
	v := strings.TrimSpace(raw)
	if strings.ContainsAny(v, " |") {
		return ""
	}
	v = strings.TrimLeft(v, "^~=<>")
	v = strings.TrimPrefix(v, "v")
	if v == "" || v[0] < '0' || v[0] > '9' {
		return ""
	}
	return v
}
