package runtime

import (
	"fmt"

	"github.com/aretw0/oncoscreen/pkg/catalog"
	"github.com/aretw0/oncoscreen/pkg/domain"
)

// Transition applies an action to a state and returns the resulting state.
// The input state is never modified; on error it remains the valid state.
// A nil state is treated as a fresh session on the selection screen.
func Transition(catalogs *catalog.Set, state *domain.State, action domain.Action) (*domain.State, error) {
	if state == nil {
		state = domain.NewState("")
	}

	switch action.Type {
	case domain.ActionSelectTest:
		c, ok := catalogs.Get(action.CatalogID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCatalog, action.CatalogID)
		}
		next := state.Snapshot()
		next.Screen = domain.TestScreen(c.ID())
		next.History, next.CurrentQuestionID, next.Recommendation = Reset(c)
		return next, nil

	case domain.ActionAnswer:
		c, err := activeCatalog(catalogs, state)
		if err != nil {
			return nil, err
		}
		return answer(c, state, action.QuestionID, action.OptionID)

	case domain.ActionBack:
		c, err := activeCatalog(catalogs, state)
		if err != nil {
			return nil, err
		}
		next := state.Snapshot()
		next.History, next.CurrentQuestionID = GoBack(state.History, c.First())
		next.Recommendation = ""
		return next, nil

	case domain.ActionReset:
		c, err := activeCatalog(catalogs, state)
		if err != nil {
			return nil, err
		}
		next := state.Snapshot()
		next.History, next.CurrentQuestionID, next.Recommendation = Reset(c)
		return next, nil

	case domain.ActionExit:
		next := state.Snapshot()
		next.Screen = domain.ScreenSelection
		next.History = domain.History{}
		next.CurrentQuestionID = ""
		next.Recommendation = ""
		return next, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, action.Type)
	}
}

func activeCatalog(catalogs *catalog.Set, state *domain.State) (*catalog.Catalog, error) {
	id := state.Screen.CatalogID()
	if id == "" {
		return nil, domain.ErrNoActiveTest
	}
	c, ok := catalogs.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCatalog, id)
	}
	return c, nil
}

// answer accepts an option only for the pending question: the current one,
// while unanswered and before a recommendation is reached.
func answer(c *catalog.Catalog, state *domain.State, questionID, optionID string) (*domain.State, error) {
	q, ok := c.Question(questionID)
	if !ok {
		return nil, fmt.Errorf("%w: %q in catalog %q", domain.ErrUnknownQuestion, questionID, c.ID())
	}
	if state.Terminated() || questionID != state.CurrentQuestionID || state.History.Contains(questionID) {
		return nil, fmt.Errorf("%w: %q", domain.ErrQuestionLocked, questionID)
	}
	opt, ok := q.Option(optionID)
	if !ok {
		return nil, fmt.Errorf("%w: %q for question %q", domain.ErrUnknownOption, optionID, questionID)
	}

	next := state.Snapshot()
	next.History, next.CurrentQuestionID, next.Recommendation = RecordAnswer(state.History, q.ID, opt.ID, opt.NextQuestionID, c)
	return next, nil
}
