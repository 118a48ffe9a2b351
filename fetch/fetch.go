// Package fetch downloads documentation trees from GitHub repositories.
// Clones are shallow and held in memory; only the files under the chosen
// documentation root ever touch the disk.
package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
)

// RepoRef identifies a GitHub repository and an optional ref (tag or branch).
type RepoRef struct {
	Owner string
	Name  string
	Ref   string // empty means the default branch
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// CloneURL returns the https clone URL for the repository.
func (r RepoRef) CloneURL() string {
	return "https://github.com/" + r.Owner + "/" + r.Name + ".git"
}

// ParseRef parses a repository reference. Accepted forms:
//
//	owner/repo
//	github.com/owner/repo
//	https://github.com/owner/repo
//
// each optionally suffixed with "@ref" to pin a tag or branch.
func ParseRef(raw string) (RepoRef, error) {
	ref := RepoRef{}
	s := strings.TrimSpace(raw)
	if at := strings.LastIndex(s, "@"); at > 0 {
		if at == len(s)-1 {
			return RepoRef{}, fmt.Errorf("invalid repository reference %q (empty ref after @)", raw)
		}
		ref.Ref = s[at+1:]
		s = s[:at]
	}
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "github.com/")
	s = strings.TrimSuffix(s, ".git")
	s = strings.Trim(s, "/")

	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepoRef{}, fmt.Errorf("invalid repository reference %q (want owner/repo)", raw)
	}
	ref.Owner = parts[0]
	ref.Name = parts[1]
	return ref, nil
}

// Repo wraps the tree of a shallow in-memory clone.
type Repo struct {
	ref  RepoRef
	tree *object.Tree
}

// Clone performs a shallow in-memory clone of the repository. When the ref
// names a tag or branch, that ref is cloned; otherwise the default branch.
func Clone(ctx context.Context, ref RepoRef) (*Repo, error) {
	repo, err := shallowClone(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("cloning %s: %w", ref, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD of %s: %w", ref, err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("reading HEAD commit of %s: %w", ref, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("reading tree of %s: %w", ref, err)
	}
	return &Repo{ref: ref, tree: tree}, nil
}

// shallowClone clones at depth 1. A pinned ref is tried as a tag first,
// then as a branch.
func shallowClone(ctx context.Context, ref RepoRef) (*git.Repository, error) {
	clone := func(referenceName plumbing.ReferenceName) (*git.Repository, error) {
		return git.CloneContext(ctx, memory.NewStorage(), nil, &git.CloneOptions{
			URL:           ref.CloneURL(),
			Depth:         1,
			SingleBranch:  true,
			Tags:          git.NoTags,
			ReferenceName: referenceName,
		})
	}

	if ref.Ref == "" {
		return clone("")
	}
	repo, tagErr := clone(plumbing.NewTagReferenceName(ref.Ref))
	if tagErr == nil {
		return repo, nil
	}
	repo, branchErr := clone(plumbing.NewBranchReferenceName(ref.Ref))
	if branchErr == nil {
		return repo, nil
	}
	return nil, fmt.Errorf("ref %q not found as tag or branch: %w", ref.Ref, tagErr)
}

// ListPaths returns every file path in the cloned tree, forward-slash
// delimited and sorted. This is the input for docs-root detection.
func (r *Repo) ListPaths() ([]string, error) {
	var paths []string
	err := r.tree.Files().ForEach(func(f *object.File) error {
		paths = append(paths, f.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing tree of %s: %w", r.ref, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// DownloadDocs writes every file with a matching extension under docsRoot
// into destDir, with the docsRoot prefix stripped. Returns the number of
// files written.
func (r *Repo) DownloadDocs(docsRoot string, destDir string, extensions []string) (int, error) {
	extensionSet := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extensionSet[strings.ToLower(ext)] = true
	}

	prefix := strings.Trim(docsRoot, "/") + "/"
	written := 0
	err := r.tree.Files().ForEach(func(f *object.File) error {
		if !strings.HasPrefix(f.Name, prefix) {
			return nil
		}
		if len(extensionSet) > 0 && !extensionSet[strings.ToLower(path.Ext(f.Name))] {
			return nil
		}
		relativePath := strings.TrimPrefix(f.Name, prefix)
		if err := writeBlob(f, filepath.Join(destDir, filepath.FromSlash(relativePath))); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("downloading docs from %s: %w", r.ref, err)
	}
	return written, nil
}

func writeBlob(f *object.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
	}
	reader, err := f.Reader()
	if err != nil {
		return fmt.Errorf("opening blob %s: %w", f.Name, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("reading blob %s: %w", f.Name, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}
