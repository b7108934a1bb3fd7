package fs

import (
	"errors"
	iofs "io/fs"
	"os"
)

// Exists reports whether a source root, build file or config file is present.
// Any stat error other than "not found" is returned as is.
func (f *realFS) Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if f.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsDir reports whether path is a directory. It fails when path is missing.
func (f *realFS) IsDir(path string) (bool, error) {
	info, err := f.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// IsNotExist matches both wrapped and bare "not found" errors.
func (f *realFS) IsNotExist(err error) bool {
	return errors.Is(err, iofs.ErrNotExist)
}

func (f *realFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (f *realFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f *realFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
