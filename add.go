package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lexandro/docdex/detect"
	"github.com/lexandro/docdex/doctree"
	"github.com/lexandro/docdex/encode"
	"github.com/lexandro/docdex/fetch"
	"github.com/lexandro/docdex/ignore"
	"github.com/lexandro/docdex/manifest"
	"github.com/lexandro/docdex/marker"
	"github.com/lexandro/docdex/prompt"
	"github.com/lexandro/docdex/registry"
)

// addOptions collects the flags of the add subcommand.
type addOptions struct {
	repo        string
	docsPath    string
	output      string
	storageDir  string
	projectDir  string
	name        string
	interactive bool
	noGitignore bool
	logLevel    string
	excludes    multiFlag
}

// docSetSpec is the fully resolved description of what to download.
type docSetSpec struct {
	key      string // namespace key and storage subdirectory
	name     string // display name for the index header
	repo     string // owner/repo[@ref]
	docsPath string // pinned docs dir, empty means detect
	pkg      string // npm package name for version lookup
	fromRepo bool   // true when -repo was used instead of a catalog key
}

func runAdd(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	var opts addOptions
	fs.StringVar(&opts.repo, "repo", "", "GitHub repository (owner/repo[@ref]) instead of a catalog key")
	fs.StringVar(&opts.docsPath, "docs-path", "", "Documentation directory inside the repository (default: detected)")
	fs.StringVar(&opts.output, "output", "AGENTS.md", "Host document receiving the index block")
	fs.StringVar(&opts.storageDir, "dir", ".docdex", "Directory for downloaded documentation, relative to the project")
	fs.StringVar(&opts.projectDir, "project", ".", "Project directory")
	fs.StringVar(&opts.name, "name", "", "Display name override for the index header")
	fs.BoolVar(&opts.interactive, "interactive", false, "Pick the documentation directory interactively")
	fs.BoolVar(&opts.noGitignore, "no-gitignore", false, "Skip updating .gitignore")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	fs.Var(&opts.excludes, "exclude", "Doublestar pattern of files to leave out of the index, relative to the docs root (repeatable)")
	fs.Parse(args)

	logger := setupLogger(opts.logLevel, "")

	spec, err := resolveSpec(fs.Arg(0), opts)
	if err != nil {
		return err
	}
	ref, err := fetch.ParseRef(spec.repo)
	if err != nil {
		return err
	}

	logger.Info("cloning repository", "repo", ref.String(), "ref", ref.Ref)
	repo, err := fetch.Clone(context.Background(), ref)
	if err != nil {
		return err
	}

	docsRoot := spec.docsPath
	if docsRoot == "" {
		docsRoot, err = chooseDocsRoot(repo, opts.interactive)
		if err != nil {
			return err
		}
		logger.Info("documentation root selected", "root", docsRoot)
	}

	destDir := filepath.Join(opts.projectDir, opts.storageDir, spec.key)
	if _, statErr := os.Stat(destDir); statErr == nil {
		if opts.interactive {
			overwrite, confirmErr := prompt.Confirm(
				fmt.Sprintf("Documentation for %q already exists, overwrite?", spec.key), true)
			if confirmErr != nil {
				return confirmErr
			}
			if !overwrite {
				return nil
			}
		}
		if err := os.RemoveAll(destDir); err != nil {
			return fmt.Errorf("clearing %s: %w", destDir, err)
		}
	}

	written, err := repo.DownloadDocs(docsRoot, destDir, doctree.DefaultExtensions)
	if err != nil {
		return err
	}
	if written == 0 {
		return fmt.Errorf("no documentation files under %s in %s", docsRoot, ref)
	}
	logger.Info("documentation downloaded", "files", written, "dest", destDir)

	files, err := doctree.Collect(destDir, doctree.CollectOptions{ExcludeGlobs: opts.excludes})
	if err != nil {
		return err
	}

	meta := encode.Meta{
		Name:       spec.name,
		DocsRoot:   opts.storageDir + "/" + spec.key,
		Version:    manifest.Version(opts.projectDir, spec.pkg),
		OutputFile: opts.output,
	}
	if spec.fromRepo {
		meta.Repo = spec.repo
		meta.DocsPath = opts.docsPath
	} else {
		meta.LibKey = spec.key
	}
	encoded := encode.Encode(doctree.Build(files), meta)

	outputPath := filepath.Join(opts.projectDir, opts.output)
	doc, err := readHostDocument(outputPath)
	if err != nil {
		return err
	}
	if err := writeHostDocument(outputPath, marker.Inject(doc, encoded, spec.key)); err != nil {
		return err
	}

	if !opts.noGitignore {
		if err := ignore.EnsureIgnored(opts.projectDir, []string{opts.storageDir + "/"}); err != nil {
			logger.Warn("could not update .gitignore", "error", err)
		}
	}

	fmt.Printf("Indexed %d files from %s into %s (key %q)\n", len(files), ref, opts.output, spec.key)
	return nil
}

// resolveSpec turns a catalog key or a -repo flag into a full docSetSpec.
func resolveSpec(key string, opts addOptions) (docSetSpec, error) {
	if key == "" && opts.repo == "" {
		return docSetSpec{}, fmt.Errorf("a library key or -repo is required (see \"docdex list\")")
	}
	if key != "" && opts.repo != "" {
		return docSetSpec{}, fmt.Errorf("pass either a library key or -repo, not both")
	}

	if key != "" {
		lib, ok := registry.Lookup(key)
		if !ok {
			return docSetSpec{}, fmt.Errorf(
				"unknown library %q; run \"docdex list\" for known keys, or use -repo owner/repo", key)
		}
		spec := docSetSpec{
			key:      key,
			name:     lib.Name,
			repo:     lib.Repo,
			docsPath: lib.DocsPath,
			pkg:      lib.Package,
		}
		if opts.docsPath != "" {
			spec.docsPath = opts.docsPath
		}
		if opts.name != "" {
			spec.name = opts.name
		}
		return spec, nil
	}

	ref, err := fetch.ParseRef(opts.repo)
	if err != nil {
		return docSetSpec{}, err
	}
	spec := docSetSpec{
		key:      strings.ToLower(ref.Name),
		name:     ref.Name,
		repo:     opts.repo,
		docsPath: opts.docsPath,
		pkg:      strings.ToLower(ref.Name),
		fromRepo: true,
	}
	if opts.name != "" {
		spec.name = opts.name
	}
	return spec, nil
}

// chooseDocsRoot detects the docs root from the repository tree, falling
// back to an interactive pick when requested or when several directories
// are plausible.
func chooseDocsRoot(repo *fetch.Repo, interactive bool) (string, error) {
	paths, err := repo.ListPaths()
	if err != nil {
		return "", err
	}
	candidates := detect.Candidates(paths)
	if len(candidates) == 0 {
		return "", fmt.Errorf("could not detect a documentation directory; pass -docs-path")
	}
	if interactive && len(candidates) > 1 {
		return prompt.PickCandidate(candidates)
	}
	return candidates[0].Dir, nil
}
