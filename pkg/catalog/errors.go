package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single catalog consistency failure.
type ValidationError struct {
	Catalog  string // Catalog ID
	Question string // Question ID, if the failure is scoped to a question
	Option   string // Option ID, if the failure is scoped to an option
	Reason   string // Human-readable reason for failure
}

func (e *ValidationError) Error() string {
	var loc []string
	if e.Catalog != "" {
		loc = append(loc, fmt.Sprintf("catalog %q", e.Catalog))
	}
	if e.Question != "" {
		loc = append(loc, fmt.Sprintf("question %q", e.Question))
	}
	if e.Option != "" {
		loc = append(loc, fmt.Sprintf("option %q", e.Option))
	}
	if len(loc) == 0 {
		return e.Reason
	}
	return strings.Join(loc, " ") + ": " + e.Reason
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all validation errors if err wraps an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
