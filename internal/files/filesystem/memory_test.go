package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_WalkOrderAndRelativePaths(t *testing.T) {
	mfs := NewMemoryFileSystem("/repo")
	mfs.AddFile("NASA/NumericalData/ACE/b.xml", "<b/>")
	mfs.AddFile("NASA/NumericalData/ACE/a.xml", "<a/>")
	mfs.AddFile("SMWG/Person/J.Smith.xml", "<p/>")

	dir, err := mfs.Open("NASA")
	require.NoError(t, err)

	var files []string
	err = dir.Walk(func(f File, err error) error {
		require.NoError(t, err)
		if !f.Info().IsDir() {
			files = append(files, f.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"NumericalData/ACE/a.xml", "NumericalData/ACE/b.xml"}, files)
}

func TestMemoryFileSystem_ReadFileAndStat(t *testing.T) {
	mfs := NewMemoryFileSystem("/repo")
	mfs.AddFile("SMWG/Person/J.Smith.xml", "<Spase/>")

	content, err := mfs.ReadFile("/repo/SMWG/Person/J.Smith.xml")
	require.NoError(t, err)
	assert.Equal(t, "<Spase/>", string(content))

	info, err := mfs.Stat("SMWG/Person")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = mfs.ReadFile("SMWG/Person/Missing.xml")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = mfs.ReadFile("SMWG")
	assert.Error(t, err, "directories have no content")
}

func TestMemoryFileSystem_OpenFileIsNotDirectory(t *testing.T) {
	mfs := NewMemoryFileSystem("/repo")
	mfs.AddFile("a.xml", "<a/>")

	_, err := mfs.Open("a.xml")
	assert.ErrorContains(t, err, "not a directory")

	_, err = mfs.Open("missing")
	assert.ErrorContains(t, err, "not found")
}

func TestMemoryFileSystem_WalkRecoversPanic(t *testing.T) {
	mfs := NewMemoryFileSystem("/repo")
	mfs.AddFile("a.xml", "<a/>")

	dir, err := mfs.Open(".")
	require.NoError(t, err)

	err = dir.Walk(func(f File, err error) error {
		if f.RelativePath() == "a.xml" {
			panic("boom")
		}
		return nil
	})
	assert.ErrorContains(t, err, "panicked")
}
