package tools

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ReadArgs defines the input parameters for the docdex_read tool.
type ReadArgs struct {
	Key      string `json:"key" jsonschema:"Doc set key, e.g. react"`
	FilePath string `json:"filePath" jsonschema:"File path relative to the doc set root, e.g. guide/intro.md"`
}

// ReadHandler holds the dependencies for the read tool.
type ReadHandler struct {
	StorageDir string
	Logger     *slog.Logger
}

// Handle processes a docdex_read request.
func (h *ReadHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ReadArgs) (*mcp.CallToolResult, any, error) {
	if args.Key == "" || args.FilePath == "" {
		h.Logger.Warn("docdex_read called with missing arguments")
		return errorResult("Error: key and filePath parameters are required"), nil, nil
	}

	fullPath, err := resolveDocPath(h.StorageDir, args.Key, args.FilePath)
	if err != nil {
		h.Logger.Warn("docdex_read rejected path", "key", args.Key, "filePath", args.FilePath)
		return errorResult(err.Error()), nil, nil
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		h.Logger.Info("docdex_read file not found", "key", args.Key, "filePath", args.FilePath)
		return errorResult(fmt.Sprintf("File not found: %s/%s", args.Key, args.FilePath)), nil, nil
	}

	h.Logger.Info("docdex_read", "key", args.Key, "filePath", args.FilePath, "bytes", len(content))
	return textResult(FormatFileContent(args.Key+"/"+args.FilePath, string(content))), nil, nil
}
