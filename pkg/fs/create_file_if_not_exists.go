package fs

import (
	"os"
	"path/filepath"
)

// CreateFileIfNotExists creates a file with initial content if it doesn't exist.
func (f *realFS) CreateFileIfNotExists(filename string, initialContent []byte, perm os.FileMode) error {
	exists, err := f.Exists(filename)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := f.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return f.WriteFileAtomic(filename, initialContent, perm)
}
