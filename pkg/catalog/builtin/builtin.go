// Package builtin ships the screening catalogs embedded in the binary.
package builtin

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/aretw0/oncoscreen/pkg/catalog"
)

// IDs of the embedded catalogs, in display order.
const (
	Cervical = "cervical"
	Breast   = "breast"
)

//go:embed catalogs/*.yaml
var files embed.FS

// Load decodes every embedded catalog, ordered by file name.
func Load() (*catalog.Set, error) {
	entries, err := fs.ReadDir(files, "catalogs")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalogs: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var list []*catalog.Catalog
	for _, e := range entries {
		name := path.Join("catalogs", e.Name())
		data, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		c, err := catalog.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("embedded catalog %s: %w", e.Name(), err)
		}
		list = append(list, c)
	}
	return catalog.NewSet(list...)
}

// MustLoad is like Load but panics on error.
func MustLoad() *catalog.Set {
	set, err := Load()
	if err != nil {
		panic(err)
	}
	return set
}

// Loader implements ports.CatalogLoader over the embedded catalogs.
type Loader struct{}

// NewLoader creates a loader for the embedded catalogs.
func NewLoader() *Loader { return &Loader{} }

// LoadCatalogs returns the embedded catalogs.
func (Loader) LoadCatalogs(ctx context.Context) (*catalog.Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Load()
}
