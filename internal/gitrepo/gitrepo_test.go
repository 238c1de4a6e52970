package gitrepo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return dir
}

func TestDiscoverFromSubdirectory(t *testing.T) {
	root := initRepo(t)
	sub := filepath.Join(root, "docs", "api")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	r, err := Discover(sub)
	require.NoError(t, err)

	wantRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, r.Root())
	assert.NotNil(t, r.Git())

	rel, err := r.RelativeDir(sub)
	require.NoError(t, err)
	assert.Equal(t, "docs/api", rel)

	rel, err = r.RelativeDir(root)
	require.NoError(t, err)
	assert.Equal(t, "", rel)
}

func TestDiscoverNotRepository(t *testing.T) {
	_, err := Discover(t.TempDir())
	assert.ErrorIs(t, err, ErrNotRepository)
}

func TestRelativeDirOutsideWorktree(t *testing.T) {
	root := initRepo(t)
	r, err := Discover(root)
	require.NoError(t, err)

	_, err = r.RelativeDir(t.TempDir())
	assert.ErrorIs(t, err, ErrOutsideWorktree)
}
