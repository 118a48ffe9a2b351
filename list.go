package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/lexandro/docdex/registry"
	"github.com/lexandro/docdex/tools"
)

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	storageDir := fs.String("dir", ".docdex", "Directory for downloaded documentation, relative to the project")
	projectDir := fs.String("project", ".", "Project directory")
	fs.Parse(args)

	sets, err := tools.ListSets(filepath.Join(*projectDir, *storageDir))
	if err != nil {
		return err
	}

	downloaded := make(map[string]int, len(sets))
	for _, set := range sets {
		downloaded[set.Key] = set.FileCount
	}

	fmt.Println("Known libraries:")
	for _, key := range registry.Keys() {
		if count, ok := downloaded[key]; ok {
			fmt.Printf("  %-16s downloaded (%d files)\n", key, count)
			delete(downloaded, key)
		} else {
			fmt.Printf("  %s\n", key)
		}
	}

	if len(downloaded) > 0 {
		fmt.Println("\nOther downloaded sets:")
		for _, set := range sets {
			if count, ok := downloaded[set.Key]; ok {
				fmt.Printf("  %-16s (%d files)\n", set.Key, count)
			}
		}
	}
	return nil
}
