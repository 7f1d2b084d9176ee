package domain

// Option is one selectable answer of a Question.
type Option struct {
	ID    string `json:"id" yaml:"id" mapstructure:"id"`
	Label string `json:"label" yaml:"label" mapstructure:"label"`

	// NextQuestionID points to the question shown after this option.
	// Empty marks a terminal branch that ends with a recommendation.
	NextQuestionID string `json:"next,omitempty" yaml:"next,omitempty" mapstructure:"next"`
}

// IsTerminal reports whether choosing the option ends the traversal.
func (o Option) IsTerminal() bool {
	return o.NextQuestionID == ""
}

// Question is a single step of a screening catalog.
type Question struct {
	ID      string   `json:"id" yaml:"id" mapstructure:"id"`
	Text    string   `json:"text" yaml:"text" mapstructure:"text"`
	Options []Option `json:"options" yaml:"options" mapstructure:"options"`
}

// Option returns the option with the given ID.
func (q Question) Option(id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}
