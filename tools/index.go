package tools

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/lexandro/docdex/doctree"
	"github.com/lexandro/docdex/encode"
	"github.com/lexandro/docdex/manifest"
	"github.com/lexandro/docdex/registry"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// IndexArgs defines the input parameters for the docdex_index tool.
type IndexArgs struct {
	Key string `json:"key" jsonschema:"Doc set key to build the index for, e.g. react"`
}

// IndexHandler holds the dependencies for the index tool.
type IndexHandler struct {
	StorageDir string
	// ProjectDir anchors the root label and the package.json version lookup,
	// so the output matches the block the add command injects.
	ProjectDir string
	Logger     *slog.Logger
}

// Handle processes a docdex_index request, returning the same encoded index
// line that docdex injects into the host document.
func (h *IndexHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args IndexArgs) (*mcp.CallToolResult, any, error) {
	if args.Key == "" {
		h.Logger.Warn("docdex_index called with empty key")
		return errorResult("Error: key parameter is required"), nil, nil
	}

	setDir, err := resolveDocPath(h.StorageDir, args.Key, ".")
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	setDir = filepath.Clean(setDir)

	files, err := doctree.Collect(setDir, doctree.CollectOptions{})
	if err != nil {
		h.Logger.Warn("docdex_index failed", "key", args.Key, "error", err)
		return errorResult(fmt.Sprintf("Error collecting files: %v", err)), nil, nil
	}
	if len(files) == 0 {
		return errorResult(fmt.Sprintf("No documentation set %q. Run \"docdex add %s\" first.", args.Key, args.Key)), nil, nil
	}

	meta := encode.Meta{
		Name:     args.Key,
		DocsRoot: h.docsLabel(setDir),
		LibKey:   args.Key,
	}
	if lib, ok := registry.Lookup(args.Key); ok {
		meta.Name = lib.Name
		meta.Version = manifest.Version(h.ProjectDir, lib.Package)
	}
	encoded := encode.Encode(doctree.Build(files), meta)

	h.Logger.Info("docdex_index", "key", args.Key, "files", len(files))
	return textResult(encoded), nil, nil
}

// docsLabel is the root line's path label, relative to the project when the
// set lives inside it.
func (h *IndexHandler) docsLabel(setDir string) string {
	if h.ProjectDir != "" {
		if rel, err := filepath.Rel(h.ProjectDir, setDir); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(setDir)
}
