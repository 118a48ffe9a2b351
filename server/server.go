// Package server wires the MCP server exposing downloaded documentation.
package server

import (
	"github.com/lexandro/docdex/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Setup creates and configures the MCP server with all tool registrations.
func Setup(
	listHandler *tools.ListHandler,
	readHandler *tools.ReadHandler,
	indexHandler *tools.IndexHandler,
	version string,
) *mcp.Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "docdex",
			Version: version,
		},
		&mcp.ServerOptions{
			Instructions: `This server exposes locally downloaded library documentation. When a question concerns one of the downloaded libraries, ALWAYS retrieve the relevant doc file through these tools instead of relying on prior knowledge — the downloaded docs match the project's installed versions.

- Use docdex_list to discover which libraries are available and which files each set contains
- Use docdex_read to read a specific documentation file
- Use docdex_index to get the compact index line for a library (the same line docdex injects into AGENTS.md)`,
		},
	)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "docdex_list",
		Description: `List downloaded documentation sets, or the files of one set.

Without arguments: every downloaded set with its file count.
With key (e.g. "react"): that set's documentation files, paths relative to the set root.`,
	}, listHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "docdex_read",
		Description: `Read one documentation file from a downloaded set. Returns numbered lines (format: "N: content"). Paths come from docdex_list or from the index block in the host document.`,
	}, readHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "docdex_index",
		Description: "Return the compact single-line index for a documentation set, listing every directory group and file.",
	}, indexHandler.Handle)

	return mcpServer
}
