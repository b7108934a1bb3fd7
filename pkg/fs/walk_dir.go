package fs

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
)

// WalkDir walks the file tree rooted at root, calling fn for each file or directory.
// The root must be a directory.
func (f *realFS) WalkDir(root string, fn iofs.WalkDirFunc) error {
	isDir, err := f.IsDir(root)
	if err != nil {
		return err
	}
	if !isDir {
		return fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	return filepath.WalkDir(root, fn)
}
