package ports

import (
	"context"

	"github.com/aretw0/oncoscreen/pkg/catalog"
)

// CatalogLoader retrieves the screening catalogs offered by a host.
// Implementations return only validated catalogs.
type CatalogLoader interface {
	LoadCatalogs(ctx context.Context) (*catalog.Set, error)
}
