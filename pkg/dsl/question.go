package dsl

import "github.com/aretw0/oncoscreen/pkg/domain"

// QuestionBuilder provides a fluent API for configuring a question.
type QuestionBuilder struct {
	question domain.Question
	builder  *Builder
}

// Text sets the question text.
func (q *QuestionBuilder) Text(text string) *QuestionBuilder {
	q.question.Text = text
	return q
}

// Go adds an option that leads to the next question.
func (q *QuestionBuilder) Go(optionID, label, next string) *QuestionBuilder {
	q.question.Options = append(q.question.Options, domain.Option{
		ID:             optionID,
		Label:          label,
		NextQuestionID: next,
	})
	return q
}

// Recommend adds a terminal option mapped to a recommendation.
func (q *QuestionBuilder) Recommend(optionID, label, text string) *QuestionBuilder {
	q.Terminal(optionID, label)
	q.builder.def.Recommendations[domain.PathKey(q.question.ID, optionID)] = text
	return q
}

// Terminal adds a terminal option without a mapped recommendation; the
// catalog default is shown.
func (q *QuestionBuilder) Terminal(optionID, label string) *QuestionBuilder {
	q.question.Options = append(q.question.Options, domain.Option{
		ID:    optionID,
		Label: label,
	})
	return q
}

// Build returns the underlying domain.Question.
// This is primarily used by the Builder, but exposed for advanced usage.
func (q *QuestionBuilder) Build() domain.Question {
	out := q.question
	out.Options = append([]domain.Option(nil), q.question.Options...)
	return out
}
