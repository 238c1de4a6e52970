package history

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/sirupsen/logrus"
)

// Walker enumerates commits reachable from HEAD, newest first by committer
// time, and emits one Fact per changed top-level component of Dir.
type Walker struct {
	Repo *git.Repository
	Dir  string             // slash-separated, relative to the repository root; "" for the root
	Log  logrus.FieldLogger // if nil, logging is discarded
}

// Walk runs the history walk, calling emit for every fact in walk order.
// Any repository error, data-integrity error, or error returned by emit
// aborts the walk and is returned.
func (w *Walker) Walk(emit func(Fact) error) error {
	log := w.logger()
	dir := strings.Trim(w.Dir, "/")

	if _, err := w.Repo.Head(); err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			log.Debug("HEAD is unborn, no history to walk")
			return nil
		}
		return fmt.Errorf("resolving HEAD: %w", err)
	}

	iter, err := w.Repo.Log(&git.LogOptions{Order: git.LogOrderCommitterTime})
	if err != nil {
		return fmt.Errorf("walking history: %w", err)
	}
	defer iter.Close()

	for {
		c, err := iter.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("walking history: %w", err)
		}
		if err := w.visit(c, dir, log, emit); err != nil {
			return err
		}
	}
}

func (w *Walker) visit(c *object.Commit, dir string, log logrus.FieldLogger, emit func(Fact) error) error {
	clog := log.WithField("commit", c.Hash.String()[:7])

	switch n := c.NumParents(); {
	case n == 1:
		return w.visitOrdinary(c, dir, emit)
	case n == 0:
		clog.Debug("root commit, enumerating tree")
		return w.visitRoot(c, dir, clog, emit)
	default:
		clog.WithField("parents", n).Debug("skipping merge commit")
		return nil
	}
}

func (w *Walker) visitOrdinary(c *object.Commit, dir string, emit func(Fact) error) error {
	base, err := stamp(c)
	if err != nil {
		return err
	}

	tree, err := c.Tree()
	if err != nil {
		return fmt.Errorf("reading tree of commit %s: %w", c.Hash, err)
	}
	parent, err := c.Parent(0)
	if err != nil {
		return fmt.Errorf("reading parent of commit %s: %w", c.Hash, err)
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return fmt.Errorf("reading tree of commit %s: %w", parent.Hash, err)
	}

	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return fmt.Errorf("diffing commit %s: %w", c.Hash, err)
	}

	for _, ch := range changes {
		// Deletions have no post-change path; use the path they were removed from.
		path := ch.To.Name
		if path == "" {
			path = ch.From.Name
		}
		component, kind, ok := Component(dir, path)
		if !ok {
			continue
		}
		a := base
		a.Kind = kind
		if err := emit(Fact{Component: component, Attribution: a}); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) visitRoot(c *object.Commit, dir string, log logrus.FieldLogger, emit func(Fact) error) error {
	base, err := stamp(c)
	if err != nil {
		return err
	}

	tree, err := c.Tree()
	if err != nil {
		return fmt.Errorf("reading tree of commit %s: %w", c.Hash, err)
	}

	if dir != "" {
		sub, ok, err := w.subtree(tree, dir)
		if err != nil {
			return fmt.Errorf("resolving %s in commit %s: %w", dir, c.Hash, err)
		}
		if !ok {
			log.WithField("dir", dir).Debug("directory absent from root commit")
			return nil
		}
		tree = sub
	}

	for _, e := range tree.Entries {
		a := base
		if e.Mode == filemode.Dir {
			a.Kind = Directory
		}
		if err := emit(Fact{Component: e.Name, Attribution: a}); err != nil {
			return err
		}
	}
	return nil
}

// subtree descends into dir one component at a time. It reports ok=false
// when a component is missing or is not a directory.
func (w *Walker) subtree(tree *object.Tree, dir string) (*object.Tree, bool, error) {
	for _, name := range strings.Split(dir, "/") {
		var next *object.TreeEntry
		for i := range tree.Entries {
			if tree.Entries[i].Name == name {
				next = &tree.Entries[i]
				break
			}
		}
		if next == nil || next.Mode != filemode.Dir {
			return nil, false, nil
		}
		sub, err := w.Repo.TreeObject(next.Hash)
		if err != nil {
			return nil, false, err
		}
		tree = sub
	}
	return tree, true, nil
}

func (w *Walker) logger() logrus.FieldLogger {
	if w.Log != nil {
		return w.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// stamp extracts the summary and committer time shared by every fact of c.
func stamp(c *object.Commit) (Attribution, error) {
	summary, err := Summary(c.Message)
	if err != nil {
		return Attribution{}, fmt.Errorf("commit %s: %w", c.Hash, err)
	}
	if c.Committer.When.IsZero() {
		return Attribution{}, fmt.Errorf("commit %s: %w", c.Hash, ErrMissingTime)
	}
	return Attribution{Summary: summary, Time: c.Committer.When.Unix()}, nil
}

// Summary returns the first non-blank line of a commit message.
func Summary(message string) (string, error) {
	for _, line := range strings.Split(message, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s, nil
		}
	}
	return "", ErrMissingSummary
}

// Component maps a changed path to the top-level component of dir that
// contains it. Paths outside dir, or naming dir itself, report ok=false.
func Component(dir, path string) (component string, kind EntryKind, ok bool) {
	dir = strings.Trim(dir, "/")
	if dir != "" {
		rest, found := strings.CutPrefix(path, dir+"/")
		if !found {
			return "", File, false
		}
		path = rest
	}
	if path == "" {
		return "", File, false
	}
	first, _, nested := strings.Cut(path, "/")
	if nested {
		return first, Directory, true
	}
	return first, File, true
}
