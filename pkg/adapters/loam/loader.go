// Package loam reads catalogs from a Loam document repository.
//
// Each catalog is a Markdown document whose front matter holds the catalog
// definition (id, title, questions, recommendations) and whose body is the
// description shown on the selection screen.
package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/oncoscreen/pkg/catalog"
)

// Loader adapts the Loam library to the ports.CatalogLoader interface.
type Loader struct {
	Repo *loam.TypedRepository[CatalogMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[CatalogMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at path.
func Open(path string) (*Loader, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog path: %w", err)
	}
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open loam repository: %w", err)
	}
	return New(loam.NewTypedRepository[CatalogMetadata](repo)), nil
}

// LoadCatalogs reads every document of the repository, ordered by document ID.
func (l *Loader) LoadCatalogs(ctx context.Context) (*catalog.Set, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	list := make([]*catalog.Catalog, 0, len(docs))
	for _, doc := range docs {
		def := toDefinition(doc.ID, doc.Data, doc.Content)
		c, err := catalog.New(def)
		if err != nil {
			return nil, fmt.Errorf("catalog document %s: %w", doc.ID, err)
		}
		list = append(list, c)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("loam repository has no catalog documents")
	}
	return catalog.NewSet(list...)
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
