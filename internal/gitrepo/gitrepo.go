// Package gitrepo locates the git repository that contains a directory and
// maps directories onto repository-relative paths.
package gitrepo

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

var (
	// ErrNotRepository is returned when no repository contains the path.
	ErrNotRepository = errors.New("not a git repository")
	// ErrOutsideWorktree is returned for directories outside the worktree root.
	ErrOutsideWorktree = errors.New("directory is outside the repository worktree")
)

// Repo is a discovered repository together with its worktree root.
type Repo struct {
	repo *git.Repository
	root string
}

// Discover opens the repository containing path, searching parent
// directories the way git does.
func Discover(path string) (*Repo, error) {
	r, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotRepository)
		}
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	return Open(r, wt.Filesystem.Root())
}

// Open wraps an already opened repository whose worktree lives at root.
func Open(r *git.Repository, root string) (*Repo, error) {
	abs, err := canonical(root)
	if err != nil {
		return nil, fmt.Errorf("resolving worktree root: %w", err)
	}
	return &Repo{repo: r, root: abs}, nil
}

// Git returns the underlying repository handle.
func (r *Repo) Git() *git.Repository {
	return r.repo
}

// Root returns the absolute worktree root.
func (r *Repo) Root() string {
	return r.root
}

// RelativeDir returns dir as a slash-separated path relative to the
// worktree root, or "" when dir is the root itself.
func (r *Repo) RelativeDir(dir string) (string, error) {
	abs, err := canonical(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return "", fmt.Errorf("%s: %w", dir, ErrOutsideWorktree)
	}
	if rel == "." {
		return "", nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", dir, ErrOutsideWorktree)
	}
	return filepath.ToSlash(rel), nil
}

// canonical returns the absolute, symlink-free form of path.
func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
