package util

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestDoesFileExist_FileExists(t *testing.T) {
	require.True(t, DoesFileExist("file_test.go"))
}
func TestDoesFileExist_DirExists(t *testing.T) {
	require.True(t, DoesFileExist("../util"))
}
func TestDoesFileExist_DoesntExist(t *testing.T) {
	require.False(t, DoesFileExist("foobarfile"))
}

func TestMakeDirectoriesIfNotExist(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	newDir1 := filepath.Join(dir, "test1")
	newDir2 := filepath.Join(newDir1, "test2")

	a.Nil(MakeDirectoriesIfNotExist(dir, newDir2))
	a.True(DoesFileExist(newDir1))
	a.True(DoesFileExist(newDir2))

	a.Nil(MakeDirectoriesIfNotExist(dir, newDir2))
}

func TestMakeDirectoriesIfNotExist_OutsideBase(t *testing.T) {
	dir := t.TempDir()

	err := MakeDirectoriesIfNotExist(filepath.Join(dir, "base"), filepath.Join(dir, "other"))

	assert.ErrorIs(t, err, os.ErrInvalid)
}
