// Package file loads catalogs from YAML or JSON files in a directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/oncoscreen/pkg/catalog"
)

// Extensions lists the file types picked up by the loader.
var Extensions = []string{".yaml", ".yml", ".json"}

// Loader implements ports.CatalogLoader over a directory of catalog files.
type Loader struct {
	dir string
}

// NewLoader creates a loader for dir.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// LoadCatalogs decodes every catalog file of the directory, ordered by file name.
// Files that fail to decode are reported together.
func (l *Loader) LoadCatalogs(ctx context.Context) (*catalog.Set, error) {
	paths, err := l.Files()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files in %s", l.dir)
	}

	var (
		list []*catalog.Catalog
		errs []error
	)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		list = append(list, c)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return catalog.NewSet(list...)
}

// Files lists the catalog files of the directory, sorted by name.
func (l *Loader) Files() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !isCatalogFile(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(l.dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadFile decodes a single catalog file.
func LoadFile(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	c, err := catalog.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return c, nil
}

func isCatalogFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
