package domain

// PathKeySeparator joins question and option IDs in a path key.
const PathKeySeparator = ":"

// PathKey builds the "questionId:optionId" key used to look up recommendations.
func PathKey(questionID, optionID string) string {
	return questionID + PathKeySeparator + optionID
}

// Answer records the option a user chose for a question.
type Answer struct {
	QuestionID string `json:"question_id"`
	OptionID   string `json:"option_id"`
}

// PathKey returns the recommendation key of the answer.
func (a Answer) PathKey() string {
	return PathKey(a.QuestionID, a.OptionID)
}

// History is the ordered list of answers, oldest first.
// It holds at most one Answer per question.
type History []Answer

// Selected returns the option chosen for questionID, if any.
func (h History) Selected(questionID string) (string, bool) {
	for _, a := range h {
		if a.QuestionID == questionID {
			return a.OptionID, true
		}
	}
	return "", false
}

// Contains reports whether questionID has been answered.
func (h History) Contains(questionID string) bool {
	_, ok := h.Selected(questionID)
	return ok
}

// Without returns a copy of the history with any answer for questionID removed.
func (h History) Without(questionID string) History {
	out := make(History, 0, len(h))
	for _, a := range h {
		if a.QuestionID != questionID {
			out = append(out, a)
		}
	}
	return out
}

// Last returns the most recent answer.
func (h History) Last() (Answer, bool) {
	if len(h) == 0 {
		return Answer{}, false
	}
	return h[len(h)-1], true
}

// Clone returns an independent copy. A nil history clones to an empty one.
func (h History) Clone() History {
	out := make(History, len(h))
	copy(out, h)
	return out
}
