package runtime

import (
	"github.com/aretw0/oncoscreen/pkg/catalog"
	"github.com/aretw0/oncoscreen/pkg/domain"
)

// Recommender resolves the recommendation of a terminal answer.
// *catalog.Catalog implements it.
type Recommender interface {
	Recommendation(questionID, optionID string) string
}

// RecordAnswer records optionID for questionID.
//
// Any previous answer for the question is dropped before appending, so the
// history never holds two answers for the same question. When nextID is set
// traversal continues there; otherwise the returned recommendation ends it and
// the current question stays on questionID.
func RecordAnswer(history domain.History, questionID, optionID, nextID string, recs Recommender) (domain.History, string, string) {
	next := append(history.Without(questionID), domain.Answer{QuestionID: questionID, OptionID: optionID})
	if nextID != "" {
		return next, nextID, ""
	}
	return next, questionID, recs.Recommendation(questionID, optionID)
}

// GoBack pops the most recent answer and makes its question current again.
// On an empty history it returns an empty history and firstID.
func GoBack(history domain.History, firstID string) (domain.History, string) {
	last, ok := history.Last()
	if !ok {
		return domain.History{}, firstID
	}
	next := history[:len(history)-1].Clone()
	if last.QuestionID == "" {
		return next, firstID
	}
	return next, last.QuestionID
}

// Reset returns the starting position of a catalog: no answers, the first
// question current and no recommendation.
func Reset(c *catalog.Catalog) (domain.History, string, string) {
	return domain.History{}, c.First(), ""
}

// RenderList returns the questions to display: every answered question in
// answer order, then the current question if it exists and is unanswered.
// Answers naming unknown questions are skipped.
func RenderList(c *catalog.Catalog, history domain.History, currentID string) []domain.QuestionView {
	out := make([]domain.QuestionView, 0, len(history)+1)
	for _, a := range history {
		q, ok := c.Question(a.QuestionID)
		if !ok {
			continue
		}
		out = append(out, domain.QuestionView{Question: q, SelectedOptionID: a.OptionID})
	}

	if current, ok := c.Question(currentID); ok && !history.Contains(currentID) {
		out = append(out, domain.QuestionView{Question: current})
	}
	return out
}

// SelectedOption returns the option chosen for questionID, if any.
func SelectedOption(history domain.History, questionID string) (string, bool) {
	return history.Selected(questionID)
}
