package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a session ID cannot be found in the store.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExists is returned when creating a session under an ID already in use.
	ErrSessionExists = errors.New("session already exists")
)

var (
	// ErrUnknownCatalog is returned when an action names a catalog that is not loaded.
	ErrUnknownCatalog = errors.New("unknown catalog")
	// ErrUnknownQuestion is returned when an answer names a question outside the active catalog.
	ErrUnknownQuestion = errors.New("unknown question")
	// ErrUnknownOption is returned when an answer names an option the question does not offer.
	ErrUnknownOption = errors.New("unknown option")
	// ErrQuestionLocked is returned when answering anything but the pending question.
	ErrQuestionLocked = errors.New("question is not awaiting an answer")
	// ErrNoActiveTest is returned for test actions on the selection screen.
	ErrNoActiveTest = errors.New("no active test")
	// ErrUnknownAction is returned for unsupported action types.
	ErrUnknownAction = errors.New("unknown action")
)
