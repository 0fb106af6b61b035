package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_ReferenceProvider(t *testing.T) {
	zenodo, err := NewRepository("10.5281/zenodo.46266", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Zenodo", zenodo.ReferenceProvider())
	assert.Equal(t, "10.5281/zenodo.46266", zenodo.Reference())

	other, err := NewRepository("10.1000/other", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "", other.ReferenceProvider())
}

func TestRepository_RefersTo(t *testing.T) {
	archive, err := NewRepository("10.1000/x", "", "http://x/y.zip", "")
	require.NoError(t, err)
	assert.Equal(t, RefersToArchive, archive.RefersTo())

	file, err := NewRepository("10.1000/x", "", "http://x/y.pdb", "")
	require.NoError(t, err)
	assert.Equal(t, RefersToFile, file.RefersTo())

	bare, err := NewRepository("10.1000/x", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, RefersToOther, bare.RefersTo())
}

func TestRepository_Key(t *testing.T) {
	a, err := NewRepository("10.1000/x", "/checkout/a", "http://x/y.zip", "top-a")
	require.NoError(t, err)
	b, err := NewRepository("10.1000/x", "/checkout/b", "http://x/y.zip", "top-b")
	require.NoError(t, err)
	c, err := NewRepository("10.1000/x", "", "http://x/z.zip", "")
	require.NoError(t, err)

	assert.Equal(t, a.Key(), b.Key(), "root and top directory are not part of the identity")
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestRepository_RootIsAbsolute(t *testing.T) {
	repo, err := NewRepository("10.1000/x", ".", "", "")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(repo.Root()))

	bare, err := NewRepository("10.1000/x", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "", bare.Root())
}

func TestRepository_FullPath(t *testing.T) {
	topped, err := NewRepository("10.1000/x", "", "", "repo-abc123")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("repo-abc123", "sub", "file.dat"), topped.FullPath(filepath.Join("sub", "file.dat")))

	bare, err := NewRepository("10.1000/x", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("sub", "file.dat"), bare.FullPath(filepath.Join("sub", "file.dat")))
}

func TestResolveInRepositories_PrefersShortestPath(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, filepath.Join("proj", "sub", "file.txt"), "content")

	shallow, err := NewRepository("10.1000/shallow", filepath.Join(dir, "proj"), "", "")
	require.NoError(t, err)
	deep, err := NewRepository("10.5281/zenodo.46266", filepath.Join(dir, "proj", "sub"), "", "")
	require.NoError(t, err)

	loc, err := NewInputFileLocation(path, nil, "")
	require.NoError(t, err)

	resolved, bound := ResolveInRepositories(loc, []*Repository{shallow, deep})
	assert.True(t, bound)
	assert.Same(t, deep, resolved.Repo)
	assert.Equal(t, "file.txt", resolved.Path)
	// the size measured at construction survives resolution
	assert.Equal(t, int64(7), resolved.FileSize)

	// the input location is left untouched
	assert.Nil(t, loc.Repo)
	assert.True(t, filepath.IsAbs(loc.Path))
}

func TestResolveInRepositories_FirstSeenWinsTies(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, filepath.Join("proj", "file.txt"), "x")

	first, err := NewRepository("10.1000/first", filepath.Join(dir, "proj"), "", "")
	require.NoError(t, err)
	second, err := NewRepository("10.1000/second", filepath.Join(dir, "proj"), "", "")
	require.NoError(t, err)

	loc, err := NewInputFileLocation(path, nil, "")
	require.NoError(t, err)

	resolved, bound := ResolveInRepositories(loc, []*Repository{first, second})
	assert.True(t, bound)
	assert.Same(t, first, resolved.Repo, "equal-length candidates never replace the first match")
}

func TestResolveInRepositories_AlreadyBound(t *testing.T) {
	repo, err := NewRepository("10.1000/x", "", "", "")
	require.NoError(t, err)
	loc, err := NewInputFileLocation("sub/file.dat", repo, "")
	require.NoError(t, err)

	other, err := NewRepository("10.1000/y", t.TempDir(), "", "")
	require.NoError(t, err)

	resolved, bound := ResolveInRepositories(loc, []*Repository{other})
	assert.True(t, bound)
	assert.Same(t, loc, resolved, "bound locations pass through unchanged")
	assert.Same(t, repo, resolved.Repo)
	assert.Equal(t, "sub/file.dat", resolved.Path)
}

func TestResolveInRepositories_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, filepath.Join("proj", "file.txt"), "x")

	repo, err := NewRepository("10.1000/x", filepath.Join(dir, "proj"), "", "")
	require.NoError(t, err)

	loc, err := NewInputFileLocation(path, nil, "")
	require.NoError(t, err)

	once, bound := ResolveInRepositories(loc, []*Repository{repo})
	require.True(t, bound)
	twice, bound := ResolveInRepositories(once, []*Repository{repo})
	require.True(t, bound)
	assert.Same(t, once, twice)
	assert.Equal(t, "file.txt", twice.Path)
}

func TestResolveInRepositories_NoMatch(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "file.txt", "x")

	elsewhere, err := NewRepository("10.1000/x", filepath.Join(dir, "unrelated"), "", "")
	require.NoError(t, err)
	rootless, err := NewRepository("10.1000/y", "", "", "")
	require.NoError(t, err)

	loc, err := NewInputFileLocation(path, nil, "")
	require.NoError(t, err)

	resolved, bound := ResolveInRepositories(loc, []*Repository{elsewhere, rootless})
	assert.False(t, bound)
	assert.Same(t, loc, resolved)
	assert.Nil(t, resolved.Repo)
	assert.True(t, filepath.IsAbs(resolved.Path))
}
