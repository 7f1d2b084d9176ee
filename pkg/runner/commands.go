package runner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/oncoscreen/pkg/domain"
)

var (
	// ErrQuit is returned by ParseInput when the user asks to leave.
	ErrQuit = errors.New("quit requested")
	// ErrInvalidCommand is returned for input that maps to no action.
	ErrInvalidCommand = errors.New("invalid command")
)

// Command shortcuts accepted on every screen.
const (
	CommandBack  = "b"
	CommandReset = "r"
	CommandMenu  = "m"
	CommandQuit  = "q"
)

// ParseInput turns one line of input into an action for the given view.
//
// A line starting with '{' is decoded as a JSON Action. Otherwise the line is
// matched in this order: the exact ID of a listed test or pending option, a
// command (b, r, m, q and their long forms), then a 1-based number picking a
// listed test or option. An option whose ID is "b" or "2" is therefore chosen
// by ID before the command or the index with the same text.
func ParseInput(view *domain.View, input string) (domain.Action, error) {
	in := strings.TrimSpace(input)
	if strings.HasPrefix(in, "{") {
		var action domain.Action
		if err := json.Unmarshal([]byte(in), &action); err != nil {
			return domain.Action{}, fmt.Errorf("%w: %v", ErrInvalidCommand, err)
		}
		return action, nil
	}
	if in == "" {
		return domain.Action{}, fmt.Errorf("%w: empty input", ErrInvalidCommand)
	}

	pending, hasPending := view.Pending()
	if view.Screen.IsSelection() {
		for _, c := range view.Catalogs {
			if in == c.ID {
				return domain.SelectTest(c.ID), nil
			}
		}
	} else if hasPending {
		for _, opt := range pending.Options {
			if in == opt.ID {
				return domain.AnswerWith(pending.ID, opt.ID), nil
			}
		}
	}

	switch strings.ToLower(in) {
	case CommandQuit, "quit", "exit":
		return domain.Action{}, ErrQuit
	case CommandBack, "back":
		return domain.Back(), nil
	case CommandReset, "reset", "restart":
		return domain.Reset(), nil
	case CommandMenu, "menu":
		return domain.Exit(), nil
	}

	n, err := strconv.Atoi(in)
	if view.Screen.IsSelection() {
		if err == nil && n >= 1 && n <= len(view.Catalogs) {
			return domain.SelectTest(view.Catalogs[n-1].ID), nil
		}
		return domain.Action{}, fmt.Errorf("%w: no test %q", ErrInvalidCommand, in)
	}

	if !hasPending {
		return domain.Action{}, fmt.Errorf("%w: no question is awaiting an answer", ErrInvalidCommand)
	}
	if err == nil && n >= 1 && n <= len(pending.Options) {
		return domain.AnswerWith(pending.ID, pending.Options[n-1].ID), nil
	}
	return domain.Action{}, fmt.Errorf("%w: no option %q", ErrInvalidCommand, in)
}
