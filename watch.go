package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lexandro/docdex/doctree"
	"github.com/lexandro/docdex/encode"
	"github.com/lexandro/docdex/manifest"
	"github.com/lexandro/docdex/marker"
	"github.com/lexandro/docdex/registry"
	"github.com/lexandro/docdex/watcher"
)

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	output := fs.String("output", "AGENTS.md", "Host document holding the index block")
	storageDir := fs.String("dir", ".docdex", "Directory for downloaded documentation, relative to the project")
	projectDir := fs.String("project", ".", "Project directory")
	logLevel := fs.String("log-level", "info", "Log level: debug|info|warn|error")
	var excludes multiFlag
	fs.Var(&excludes, "exclude", "Doublestar pattern of files to leave out of the index, relative to the docs root (repeatable)")
	fs.Parse(args)

	key := fs.Arg(0)
	if key == "" {
		return fmt.Errorf("a library key is required (see \"docdex list\")")
	}

	logger := setupLogger(*logLevel, "")

	setDir := filepath.Join(*projectDir, *storageDir, key)
	if _, err := os.Stat(setDir); err != nil {
		return fmt.Errorf("no documentation set %q; run \"docdex add %s\" first", key, key)
	}

	reindex := func() error {
		files, err := doctree.Collect(setDir, doctree.CollectOptions{ExcludeGlobs: excludes})
		if err != nil {
			return err
		}

		meta := encode.Meta{
			Name:       key,
			DocsRoot:   *storageDir + "/" + key,
			OutputFile: *output,
		}
		if lib, ok := registry.Lookup(key); ok {
			meta.Name = lib.Name
			meta.LibKey = key
			meta.Version = manifest.Version(*projectDir, lib.Package)
		}
		encoded := encode.Encode(doctree.Build(files), meta)

		outputPath := filepath.Join(*projectDir, *output)
		doc, err := readHostDocument(outputPath)
		if err != nil {
			return err
		}
		if err := writeHostDocument(outputPath, marker.Inject(doc, encoded, key)); err != nil {
			return err
		}
		logger.Info("index refreshed", "key", key, "files", len(files))
		return nil
	}

	if err := reindex(); err != nil {
		return err
	}

	w, err := watcher.New(setDir, doctree.DefaultExtensions, logger)
	if err != nil {
		return fmt.Errorf("starting watcher on %s: %w", setDir, err)
	}
	defer w.Close()
	go w.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	logger.Info("watching documentation", "dir", setDir)
	for {
		select {
		case changes := <-w.Events():
			logger.Debug("documentation changed", "changes", len(changes))
			if err := reindex(); err != nil {
				logger.Error("reindex failed", "error", err)
			}
		case <-stop:
			logger.Info("shutting down")
			return nil
		}
	}
}
