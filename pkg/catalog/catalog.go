package catalog

import (
	"fmt"

	"github.com/aretw0/oncoscreen/pkg/domain"
)

// DefaultRecommendation is shown when a terminal path has no mapped text.
const DefaultRecommendation = "Please consult a doctor."

// Definition is the raw, unvalidated form of a catalog document.
type Definition struct {
	ID          string `json:"id" yaml:"id" mapstructure:"id"`
	Title       string `json:"title" yaml:"title" mapstructure:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`

	Questions []domain.Question `json:"questions" yaml:"questions" mapstructure:"questions"`

	// Recommendations maps path keys ("questionId:optionId") to text.
	Recommendations map[string]string `json:"recommendations,omitempty" yaml:"recommendations,omitempty" mapstructure:"recommendations"`

	// DefaultRecommendation overrides the package-level default for this catalog.
	DefaultRecommendation string `json:"default_recommendation,omitempty" yaml:"default_recommendation,omitempty" mapstructure:"default_recommendation"`
}

// Catalog is a validated, indexed question catalog.
// It must not be modified after construction.
type Catalog struct {
	def   Definition
	index map[string]int
}

// New validates the definition and builds a Catalog.
func New(def Definition) (*Catalog, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}

	c := &Catalog{
		def:   clone(def),
		index: make(map[string]int, len(def.Questions)),
	}
	for i, q := range c.def.Questions {
		c.index[q.ID] = i
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for static data and tests.
func MustNew(def Definition) *Catalog {
	c, err := New(def)
	if err != nil {
		panic(fmt.Sprintf("catalog %q: %v", def.ID, err))
	}
	return c
}

func (c *Catalog) ID() string          { return c.def.ID }
func (c *Catalog) Title() string       { return c.def.Title }
func (c *Catalog) Description() string { return c.def.Description }

// First returns the ID of the entry question.
func (c *Catalog) First() string {
	return c.def.Questions[0].ID
}

// Questions returns the questions in declaration order.
func (c *Catalog) Questions() []domain.Question {
	return clone(c.def).Questions
}

// Question looks up a question by ID.
func (c *Catalog) Question(id string) (domain.Question, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Question{}, false
	}
	q := c.def.Questions[i]
	q.Options = append([]domain.Option(nil), q.Options...)
	return q, true
}

// Recommendation returns the text for a terminal path, or the default.
// A missing key is not an error.
func (c *Catalog) Recommendation(questionID, optionID string) string {
	if text, ok := c.def.Recommendations[domain.PathKey(questionID, optionID)]; ok {
		return text
	}
	return c.Default()
}

// HasRecommendation reports whether the path key has a mapped text.
func (c *Catalog) HasRecommendation(questionID, optionID string) bool {
	_, ok := c.def.Recommendations[domain.PathKey(questionID, optionID)]
	return ok
}

// Default returns the fallback recommendation of the catalog.
func (c *Catalog) Default() string {
	if c.def.DefaultRecommendation != "" {
		return c.def.DefaultRecommendation
	}
	return DefaultRecommendation
}

// Summary describes the catalog for the selection screen.
func (c *Catalog) Summary() domain.CatalogSummary {
	return domain.CatalogSummary{
		ID:          c.def.ID,
		Title:       c.def.Title,
		Description: c.def.Description,
	}
}

// Definition returns a copy of the underlying document.
func (c *Catalog) Definition() Definition {
	return clone(c.def)
}

// MarshalJSON serializes the catalog as its definition.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return marshalDefinition(c.def)
}

func clone(def Definition) Definition {
	out := def
	out.Questions = make([]domain.Question, len(def.Questions))
	for i, q := range def.Questions {
		q.Options = append([]domain.Option(nil), q.Options...)
		out.Questions[i] = q
	}
	if def.Recommendations != nil {
		out.Recommendations = make(map[string]string, len(def.Recommendations))
		for k, v := range def.Recommendations {
			out.Recommendations[k] = v
		}
	}
	return out
}
