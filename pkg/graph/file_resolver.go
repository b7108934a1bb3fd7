package graph

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/dep-pruner/pkg/fs"
	"gopkg.in/yaml.v3"
)

// resolvedFile is the on-disk shape of an already resolved dependency graph.
type resolvedFile struct {
	Dependencies map[string][]string `yaml:"dependencies"`
}

type fileResolver struct {
	fs   fs.FS
	path string
}

// NewFileResolver creates a Resolver reading a YAML document of the form
//
//	dependencies:
//	  com.acme:widgets-lib:
//	    - widgets-core
//	    - widgets-extra
//
// A relative path is resolved against the project directory.
func NewFileResolver(fsys fs.FS, path string) Resolver {
	return &fileResolver{
		fs:   fsys,
		path: path,
	}
}

// Resolve reads the resolved dependencies file. A missing file yields an empty map.
func (r *fileResolver) Resolve(projectDir string) (DependencyModuleMap, error) {
	path := r.path
	if !filepath.IsAbs(path) {
		path = filepath.Join(projectDir, path)
	}

	data, err := r.fs.ReadFile(path)
	if err != nil {
		if r.fs.IsNotExist(err) {
			return DependencyModuleMap{}, nil
		}
		return nil, fmt.Errorf("failed to read resolved dependencies file: %w", err)
	}

	return ParseResolvedFile(data)
}

// ParseResolvedFile decodes a resolved dependencies YAML document.
// Module lists keep their order and are de-duplicated.
func ParseResolvedFile(data []byte) (DependencyModuleMap, error) {
	var file resolvedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolvedFileParse, err)
	}

	deps := make(DependencyModuleMap, len(file.Dependencies))
	for key, modules := range file.Dependencies {
		if len(splitCoordinate(key)) < 2 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDependencyID, key)
		}

		deps[DependencyID(key)] = appendUnique(nil, modules...)
	}

	return deps, nil
}

func appendUnique(dst []ModuleID, modules ...string) []ModuleID {
	for _, module := range modules {
		id := ModuleID(module)
		if id == "" || containsModule(dst, id) {
			continue
		}
		dst = append(dst, id)
	}
	if dst == nil {
		dst = []ModuleID{}
	}
	return dst
}

func containsModule(modules []ModuleID, module ModuleID) bool {
	for _, m := range modules {
		if m == module {
			return true
		}
	}
	return false
}
