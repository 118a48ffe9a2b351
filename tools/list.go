package tools

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/lexandro/docdex/doctree"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListArgs defines the input parameters for the docdex_list tool.
type ListArgs struct {
	Key string `json:"key,omitempty" jsonschema:"Doc set key to list files for; omit to list all downloaded sets"`
}

// ListHandler holds the dependencies for the list tool.
type ListHandler struct {
	StorageDir string
	Logger     *slog.Logger
}

// Handle processes a docdex_list request.
func (h *ListHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ListArgs) (*mcp.CallToolResult, any, error) {
	if args.Key == "" {
		sets, err := ListSets(h.StorageDir)
		if err != nil {
			h.Logger.Warn("docdex_list failed", "error", err)
			return errorResult(fmt.Sprintf("Error listing doc sets: %v", err)), nil, nil
		}
		h.Logger.Info("docdex_list", "sets", len(sets))
		return textResult(FormatSets(sets)), nil, nil
	}

	setDir, err := resolveDocPath(h.StorageDir, args.Key, ".")
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	files, err := doctree.Collect(filepath.Clean(setDir), doctree.CollectOptions{})
	if err != nil {
		h.Logger.Warn("docdex_list failed", "key", args.Key, "error", err)
		return errorResult(fmt.Sprintf("Error listing files: %v", err)), nil, nil
	}
	h.Logger.Info("docdex_list", "key", args.Key, "files", len(files))
	return textResult(FormatFiles(args.Key, files)), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
