package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lexandro/docdex/register"
)

const version = "0.3.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "--version", "version":
		fmt.Printf("docdex version %s\n", version)
	case "add":
		err = runAdd(os.Args[2:])
	case "remove":
		err = runRemove(os.Args[2:])
	case "list":
		err = runList(os.Args[2:])
	case "watch":
		err = runWatch(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "register":
		err = register.Run(os.Args[2:])
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `docdex downloads library documentation and keeps a compact index of it
inside your agent instructions file.

Usage:
  docdex add <library>              download docs for a known library
  docdex add -repo <owner/repo>     download docs from any GitHub repository
  docdex remove <library>           remove the index block and downloaded docs
  docdex list                       show known libraries and downloaded sets
  docdex watch <library>            keep the index current while docs change
  docdex serve                      expose downloaded docs over MCP stdio
  docdex register project|user      add the MCP server to a client config
  docdex version                    print the version

Run any command with -h for its flags.
`)
}

// multiFlag collects the values of a repeatable string flag.
type multiFlag []string

func (f *multiFlag) String() string {
	return strings.Join(*f, ",")
}

func (f *multiFlag) Set(value string) error {
	*f = append(*f, value)
	return nil
}

// setupLogger creates an slog.Logger writing to stderr or a file.
func setupLogger(level string, logFile string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var writer *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
			writer = os.Stderr
		} else {
			writer = f
		}
	} else {
		writer = os.Stderr
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
