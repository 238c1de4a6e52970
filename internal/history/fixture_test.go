package history

import (
	"io"
	"path"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/require"
)

// testingT is satisfied by both *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

// fixture is an in-memory repository with a worktree used to build histories.
type fixture struct {
	t    testingT
	repo *git.Repository
	fs   billy.Filesystem
	wt   *git.Worktree
}

func newFixture(t testingT) *fixture {
	t.Helper()
	fs := memfs.New()
	repo, err := git.Init(memory.NewStorage(), fs)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	return &fixture{t: t, repo: repo, fs: fs, wt: wt}
}

// write creates or overwrites p and stages it.
func (f *fixture) write(p, content string) {
	f.t.Helper()
	if dir := path.Dir(p); dir != "." {
		require.NoError(f.t, f.fs.MkdirAll(dir, 0o755))
	}
	require.NoError(f.t, util.WriteFile(f.fs, p, []byte(content), 0o644))
	_, err := f.wt.Add(p)
	require.NoError(f.t, err)
}

// remove deletes p from the worktree and the index.
func (f *fixture) remove(p string) {
	f.t.Helper()
	_, err := f.wt.Remove(p)
	require.NoError(f.t, err)
}

// commit records the index as a commit at the given unix time. With no
// explicit parents, HEAD is used.
func (f *fixture) commit(msg string, unix int64, parents ...plumbing.Hash) plumbing.Hash {
	f.t.Helper()
	sig := &object.Signature{Name: "Test", Email: "test@example.com", When: time.Unix(unix, 0)}
	h, err := f.wt.Commit(msg, &git.CommitOptions{Author: sig, Parents: parents})
	require.NoError(f.t, err)
	return h
}

// rawCommit stores body verbatim as a commit object and points master at it.
func (f *fixture) rawCommit(body string) plumbing.Hash {
	f.t.Helper()
	obj := f.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.CommitObject)
	w, err := obj.Writer()
	require.NoError(f.t, err)
	_, err = io.WriteString(w, body)
	require.NoError(f.t, err)
	require.NoError(f.t, w.Close())
	h, err := f.repo.Storer.SetEncodedObject(obj)
	require.NoError(f.t, err)
	require.NoError(f.t, f.repo.Storer.SetReference(plumbing.NewHashReference(plumbing.Master, h)))
	return h
}

// collect runs a walk over dir and returns every emitted fact in order.
func (f *fixture) collect(dir string) ([]Fact, error) {
	var facts []Fact
	w := &Walker{Repo: f.repo, Dir: dir}
	err := w.Walk(func(fact Fact) error {
		facts = append(facts, fact)
		return nil
	})
	return facts, err
}

func (f *fixture) resolve(dir string) *Resolver {
	f.t.Helper()
	r, err := Resolve(&Walker{Repo: f.repo, Dir: dir})
	require.NoError(f.t, err)
	return r
}
