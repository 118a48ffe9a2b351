package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lexandro/docdex/server"
	"github.com/lexandro/docdex/tools"
)

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	storageDir := fs.String("dir", ".docdex", "Directory for downloaded documentation, relative to the project")
	projectDir := fs.String("project", ".", "Project directory")
	logLevel := fs.String("log-level", "info", "Log level: debug|info|warn|error")
	logFile := fs.String("log-file", "", "Log file path (default: stderr; stdout carries the MCP stream)")
	fs.Parse(args)

	logger := setupLogger(*logLevel, *logFile)
	storage := filepath.Join(*projectDir, *storageDir)

	listHandler := &tools.ListHandler{StorageDir: storage, Logger: logger}
	readHandler := &tools.ReadHandler{StorageDir: storage, Logger: logger}
	indexHandler := &tools.IndexHandler{StorageDir: storage, ProjectDir: *projectDir, Logger: logger}

	mcpServer := server.Setup(listHandler, readHandler, indexHandler, version)

	logger.Info("starting MCP server", "storage", storage, "version", version)
	if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("MCP server stopped: %w", err)
	}
	return nil
}
