package catalog

import (
	"fmt"

	"github.com/aretw0/oncoscreen/pkg/domain"
)

// Set is the ordered collection of catalogs offered on the selection screen.
type Set struct {
	catalogs []*Catalog
	byID     map[string]*Catalog
}

// NewSet builds a Set, rejecting duplicate catalog IDs.
func NewSet(catalogs ...*Catalog) (*Set, error) {
	s := &Set{byID: make(map[string]*Catalog, len(catalogs))}
	for _, c := range catalogs {
		if c == nil {
			return nil, fmt.Errorf("nil catalog in set")
		}
		if _, dup := s.byID[c.ID()]; dup {
			return nil, fmt.Errorf("duplicate catalog id %q", c.ID())
		}
		s.byID[c.ID()] = c
		s.catalogs = append(s.catalogs, c)
	}
	return s, nil
}

// Get returns the catalog with the given ID.
func (s *Set) Get(id string) (*Catalog, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// All returns the catalogs in declaration order.
func (s *Set) All() []*Catalog {
	return append([]*Catalog(nil), s.catalogs...)
}

// Len returns the number of catalogs.
func (s *Set) Len() int { return len(s.catalogs) }

// Summaries lists the catalogs for the selection screen.
func (s *Set) Summaries() []domain.CatalogSummary {
	out := make([]domain.CatalogSummary, 0, len(s.catalogs))
	for _, c := range s.catalogs {
		out = append(out, c.Summary())
	}
	return out
}
