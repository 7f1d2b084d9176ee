package dsl

import (
	"fmt"

	"github.com/aretw0/oncoscreen/pkg/adapters/memory"
	"github.com/aretw0/oncoscreen/pkg/catalog"
)

// Builder manages the catalog construction.
type Builder struct {
	def       catalog.Definition
	questions []*QuestionBuilder
	index     map[string]*QuestionBuilder
}

// New creates a new catalog builder. The first question added is the entry point.
func New(id string) *Builder {
	return &Builder{
		def: catalog.Definition{
			ID:              id,
			Title:           id,
			Recommendations: make(map[string]string),
		},
		index: make(map[string]*QuestionBuilder),
	}
}

// Title sets the display title.
func (b *Builder) Title(title string) *Builder {
	b.def.Title = title
	return b
}

// Description sets the one-line description shown on the selection screen.
func (b *Builder) Description(description string) *Builder {
	b.def.Description = description
	return b
}

// Default overrides the text used for terminal paths without a recommendation.
func (b *Builder) Default(text string) *Builder {
	b.def.DefaultRecommendation = text
	return b
}

// Add creates a new question in the catalog.
// If the question already exists, it returns the existing builder.
func (b *Builder) Add(id string) *QuestionBuilder {
	if qb, ok := b.index[id]; ok {
		return qb
	}
	qb := &QuestionBuilder{builder: b}
	qb.question.ID = id
	b.questions = append(b.questions, qb)
	b.index[id] = qb
	return qb
}

// Definition returns the unvalidated catalog document.
func (b *Builder) Definition() catalog.Definition {
	def := b.def
	def.Questions = nil
	for _, qb := range b.questions {
		def.Questions = append(def.Questions, qb.Build())
	}
	def.Recommendations = make(map[string]string, len(b.def.Recommendations))
	for k, v := range b.def.Recommendations {
		def.Recommendations[k] = v
	}
	return def
}

// Build validates the catalog.
func (b *Builder) Build() (*catalog.Catalog, error) {
	c, err := catalog.New(b.Definition())
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog %s: %w", b.def.ID, err)
	}
	return c, nil
}

// Loader serves the built catalogs, in the given order, as a ports.CatalogLoader.
func Loader(builders ...*Builder) *memory.Loader {
	defs := make([]catalog.Definition, 0, len(builders))
	for _, b := range builders {
		defs = append(defs, b.Definition())
	}
	return memory.NewLoader(defs...)
}
