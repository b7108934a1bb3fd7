package fs

import (
	iofs "io/fs"
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the file system operations needed to scan a project and rewrite its build file.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// Stat returns the file info of the given path.
	Stat(path string) (os.FileInfo, error)

	// WalkDir walks the file tree rooted at root, calling fn for each file or directory.
	WalkDir(root string, fn iofs.WalkDirFunc) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// IsNotExist checks if an error indicates that a file or directory doesn't exist.
	IsNotExist(err error) bool

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// CreateFileIfNotExists creates a file with initial content if it doesn't exist.
	CreateFileIfNotExists(filename string, initialContent []byte, perm os.FileMode) error
}

type realFS struct{}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
