package memory

import (
	"context"
	"fmt"

	"github.com/aretw0/oncoscreen/pkg/catalog"
)

// Loader implements ports.CatalogLoader over catalogs built in code.
type Loader struct {
	defs []catalog.Definition
}

// NewLoader creates a loader that validates the given definitions on load.
func NewLoader(defs ...catalog.Definition) *Loader {
	return &Loader{defs: defs}
}

// LoadCatalogs validates every definition and returns them as a set,
// in the order given.
func (l *Loader) LoadCatalogs(ctx context.Context) (*catalog.Set, error) {
	list := make([]*catalog.Catalog, 0, len(l.defs))
	for i, def := range l.defs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := catalog.New(def)
		if err != nil {
			return nil, fmt.Errorf("catalog #%d: %w", i+1, err)
		}
		list = append(list, c)
	}
	return catalog.NewSet(list...)
}
