package domain

import "fmt"

// ActionType enumerates user interactions.
type ActionType string

const (
	// ActionSelectTest opens a catalog. Payload: CatalogID.
	ActionSelectTest ActionType = "select_test"
	// ActionAnswer chooses an option. Payload: QuestionID, OptionID.
	ActionAnswer ActionType = "answer"
	// ActionBack undoes the most recent answer.
	ActionBack ActionType = "back"
	// ActionReset restarts the current test.
	ActionReset ActionType = "reset"
	// ActionExit returns to the selection screen.
	ActionExit ActionType = "exit"
)

// Action is a discrete interaction fed back by the host.
type Action struct {
	Type       ActionType `json:"type" validate:"required,oneof=select_test answer back reset exit"`
	CatalogID  string     `json:"catalog_id,omitempty" validate:"required_if=Type select_test"`
	QuestionID string     `json:"question_id,omitempty" validate:"required_if=Type answer"`
	OptionID   string     `json:"option_id,omitempty" validate:"required_if=Type answer"`
}

// SelectTest builds an ActionSelectTest.
func SelectTest(catalogID string) Action {
	return Action{Type: ActionSelectTest, CatalogID: catalogID}
}

// AnswerWith builds an ActionAnswer.
func AnswerWith(questionID, optionID string) Action {
	return Action{Type: ActionAnswer, QuestionID: questionID, OptionID: optionID}
}

// Back builds an ActionBack.
func Back() Action { return Action{Type: ActionBack} }

// Reset builds an ActionReset.
func Reset() Action { return Action{Type: ActionReset} }

// Exit builds an ActionExit.
func Exit() Action { return Action{Type: ActionExit} }

func (a Action) String() string {
	switch a.Type {
	case ActionSelectTest:
		return fmt.Sprintf("%s(%s)", a.Type, a.CatalogID)
	case ActionAnswer:
		return fmt.Sprintf("%s(%s)", a.Type, PathKey(a.QuestionID, a.OptionID))
	default:
		return string(a.Type)
	}
}
