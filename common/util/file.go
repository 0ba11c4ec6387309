package util

import (
	"os"
	"path/filepath"
	"strings"
)

func DoesFileExist(fileName string) bool {
	_, err := os.Stat(fileName)
	return !os.IsNotExist(err)
}

// MakeDirectoriesIfNotExist creates directory under baseDir. The
// directory must be inside baseDir.
func MakeDirectoriesIfNotExist(baseDir string, directory string) error {
	rel, err := filepath.Rel(baseDir, directory)
	if err != nil {
		return err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return os.ErrInvalid
	}
	return os.MkdirAll(directory, 0755)
}
