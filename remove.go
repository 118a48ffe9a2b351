package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lexandro/docdex/marker"
)

func runRemove(args []string) error {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	output := fs.String("output", "AGENTS.md", "Host document holding the index block")
	storageDir := fs.String("dir", ".docdex", "Directory for downloaded documentation, relative to the project")
	projectDir := fs.String("project", ".", "Project directory")
	keepFiles := fs.Bool("keep-files", false, "Remove only the index block, keep the downloaded docs")
	fs.Parse(args)

	key := fs.Arg(0)
	if key == "" {
		return fmt.Errorf("a library key is required (see \"docdex list\")")
	}

	outputPath := filepath.Join(*projectDir, *output)
	doc, err := readHostDocument(outputPath)
	if err != nil {
		return err
	}

	cleaned := marker.Remove(doc, key)
	if cleaned != doc {
		if err := writeHostDocument(outputPath, cleaned); err != nil {
			return err
		}
		fmt.Printf("Removed index block %q from %s\n", key, *output)
	} else {
		fmt.Printf("No index block %q in %s\n", key, *output)
	}

	if *keepFiles {
		return nil
	}
	setDir := filepath.Join(*projectDir, *storageDir, key)
	if _, err := os.Stat(setDir); err == nil {
		if err := os.RemoveAll(setDir); err != nil {
			return fmt.Errorf("removing %s: %w", setDir, err)
		}
		fmt.Printf("Removed %s\n", setDir)
	}
	return nil
}
