package symbols

import (
	"bytes"
	"errors"
	iofs "io/fs"
	"path/filepath"

	"github.com/lerenn/dep-pruner/pkg/fs"
	"github.com/lerenn/dep-pruner/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=scanner.go -destination=mocks/scanner.gen.go -package=mocks

// Scanner extracts the set of symbols imported anywhere under a source root.
type Scanner interface {
	// Scan walks root recursively. A missing root, or one without source
	// files, yields an empty set. Unreadable files are skipped with a warning.
	Scan(root string) (Set, Stats, error)
}

// Stats summarizes a scan.
type Stats struct {
	FilesScanned int
	FilesSkipped int
	Imports      int
}

// NewScannerParams contains parameters for creating a new Scanner.
type NewScannerParams struct {
	FS        fs.FS
	Logger    logger.Logger
	Extension string
}

type realScanner struct {
	fs        fs.FS
	logger    logger.Logger
	extension string
}

// NewScanner creates a new Scanner for files with the given extension (e.g. ".java").
func NewScanner(params NewScannerParams) Scanner {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	return &realScanner{
		fs:        params.FS,
		logger:    l,
		extension: params.Extension,
	}
}

// Scan walks root recursively and collects imported symbols.
func (s *realScanner) Scan(root string) (Set, Stats, error) {
	used := Set{}
	var stats Stats

	exists, err := s.fs.Exists(root)
	if err != nil {
		return nil, stats, err
	}
	if !exists {
		s.logger.Debugf("Source directory %s does not exist, nothing to scan", root)
		return used, stats, nil
	}

	err = s.fs.WalkDir(root, func(path string, d iofs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			s.logger.Warnf("Skipping unreadable path %s: %v", path, walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || filepath.Ext(path) != s.extension {
			return nil
		}

		imports, err := s.scanFile(path)
		if err != nil {
			stats.FilesSkipped++
			s.logger.Warnf("Skipping unreadable file %s: %v", path, err)
			return nil
		}

		stats.FilesScanned++
		for _, symbol := range imports {
			s.logger.Debugf("Found import %s in %s", symbol, path)
			used.Add(symbol)
		}
		stats.Imports += len(imports)
		return nil
	})
	if errors.Is(err, fs.ErrNotADirectory) {
		s.logger.Warnf("Source path %s is not a directory, nothing to scan", root)
		return used, stats, nil
	}
	if err != nil {
		return nil, stats, err
	}

	return used, stats, nil
}

func (s *realScanner) scanFile(path string) ([]string, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ExtractImports(bytes.NewReader(data))
}
