package loam

import (
	"strings"

	"github.com/aretw0/oncoscreen/pkg/catalog"
	"github.com/aretw0/oncoscreen/pkg/domain"
)

// CatalogMetadata is the front matter of a catalog document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type CatalogMetadata struct {
	ID          string `json:"id" mapstructure:"id"`
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`

	Questions []QuestionMetadata `json:"questions" mapstructure:"questions"`

	Recommendations       map[string]string `json:"recommendations" mapstructure:"recommendations"`
	DefaultRecommendation string            `json:"default_recommendation" mapstructure:"default_recommendation"`
}

type QuestionMetadata struct {
	ID      string           `json:"id" mapstructure:"id"`
	Text    string           `json:"text" mapstructure:"text"`
	Options []OptionMetadata `json:"options" mapstructure:"options"`
}

type OptionMetadata struct {
	ID    string `json:"id" mapstructure:"id"`
	Label string `json:"label" mapstructure:"label"`
	// Text is accepted as an alias of Label.
	Text string `json:"text" mapstructure:"text"`
	Next string `json:"next" mapstructure:"next"`
	// NextFull is accepted as an alias of Next.
	NextFull string `json:"next_question_id" mapstructure:"next_question_id"`
}

// toDefinition converts a document into a catalog definition.
// The document ID is used when the front matter has none, and the Markdown
// body becomes the description when the front matter has none.
func toDefinition(docID string, meta CatalogMetadata, content string) catalog.Definition {
	def := catalog.Definition{
		ID:                    meta.ID,
		Title:                 meta.Title,
		Description:           meta.Description,
		Recommendations:       meta.Recommendations,
		DefaultRecommendation: meta.DefaultRecommendation,
	}
	if def.ID == "" {
		def.ID = trimExtension(docID)
	}
	if def.Description == "" {
		def.Description = strings.TrimSpace(content)
	}

	for _, q := range meta.Questions {
		question := domain.Question{ID: q.ID, Text: q.Text}
		for _, o := range q.Options {
			label := o.Label
			if label == "" {
				label = o.Text
			}
			next := o.Next
			if next == "" {
				next = o.NextFull
			}
			question.Options = append(question.Options, domain.Option{
				ID:             o.ID,
				Label:          label,
				NextQuestionID: next,
			})
		}
		def.Questions = append(def.Questions, question)
	}
	return def
}
