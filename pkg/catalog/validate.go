package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/oncoscreen/pkg/domain"
)

// Validate checks the structural consistency of a definition.
// Returns an *AggregateError with every failure found.
func Validate(def Definition) error {
	v := &validator{def: def}
	v.checkHeader()
	if len(def.Questions) == 0 {
		v.fail("", "", "catalog has no questions")
		return v.result()
	}

	known := v.checkQuestions()
	v.checkReferences(known)
	if v.clean() {
		// Graph checks assume unique IDs and resolvable references.
		v.checkCycles()
		v.checkReachability()
	}
	v.checkRecommendations()

	return v.result()
}

type validator struct {
	def  Definition
	errs []error
}

func (v *validator) fail(question, option, format string, args ...any) {
	v.errs = append(v.errs, &ValidationError{
		Catalog:  v.def.ID,
		Question: question,
		Option:   option,
		Reason:   fmt.Sprintf(format, args...),
	})
}

func (v *validator) clean() bool { return len(v.errs) == 0 }

func (v *validator) result() error {
	if len(v.errs) == 0 {
		return nil
	}
	return &AggregateError{Errors: v.errs}
}

func (v *validator) checkHeader() {
	if strings.TrimSpace(v.def.ID) == "" {
		v.fail("", "", "catalog id is required")
	}
	if domain.Screen(v.def.ID) == domain.ScreenSelection {
		v.fail("", "", "catalog id %q is reserved for the selection screen", v.def.ID)
	}
	if strings.TrimSpace(v.def.Title) == "" {
		v.fail("", "", "catalog title is required")
	}
}

func (v *validator) checkQuestions() map[string]domain.Question {
	known := make(map[string]domain.Question, len(v.def.Questions))

	for i, q := range v.def.Questions {
		if strings.TrimSpace(q.ID) == "" {
			v.fail("", "", "question #%d has no id", i+1)
			continue
		}
		if strings.Contains(q.ID, domain.PathKeySeparator) {
			v.fail(q.ID, "", "id must not contain %q", domain.PathKeySeparator)
		}
		if _, dup := known[q.ID]; dup {
			v.fail(q.ID, "", "duplicate question id")
			continue
		}
		known[q.ID] = q

		if strings.TrimSpace(q.Text) == "" {
			v.fail(q.ID, "", "question text is required")
		}
		if len(q.Options) == 0 {
			v.fail(q.ID, "", "question has no options")
		}

		seen := make(map[string]bool, len(q.Options))
		for j, opt := range q.Options {
			if strings.TrimSpace(opt.ID) == "" {
				v.fail(q.ID, "", "option #%d has no id", j+1)
				continue
			}
			if strings.Contains(opt.ID, domain.PathKeySeparator) {
				v.fail(q.ID, opt.ID, "id must not contain %q", domain.PathKeySeparator)
			}
			if seen[opt.ID] {
				v.fail(q.ID, opt.ID, "duplicate option id")
				continue
			}
			seen[opt.ID] = true
			if strings.TrimSpace(opt.Label) == "" {
				v.fail(q.ID, opt.ID, "option label is required")
			}
		}
	}
	return known
}

func (v *validator) checkReferences(known map[string]domain.Question) {
	for _, q := range v.def.Questions {
		for _, opt := range q.Options {
			if opt.IsTerminal() {
				continue
			}
			if _, ok := known[opt.NextQuestionID]; !ok {
				v.fail(q.ID, opt.ID, "next question %q does not exist", opt.NextQuestionID)
			}
		}
	}
}

// checkCycles runs a depth-first search with three colours over the
// question graph and reports every back edge as a cycle.
func (v *validator) checkCycles() {
	const (
		white = iota
		grey
		black
	)

	color := make(map[string]int, len(v.def.Questions))
	byID := make(map[string]domain.Question, len(v.def.Questions))
	for _, q := range v.def.Questions {
		byID[q.ID] = q
	}

	var stack []string
	var visit func(id string)
	visit = func(id string) {
		color[id] = grey
		stack = append(stack, id)
		for _, opt := range byID[id].Options {
			next := opt.NextQuestionID
			if next == "" {
				continue
			}
			switch color[next] {
			case grey:
				v.fail(id, opt.ID, "cycle detected: %s", cyclePath(stack, next))
			case white:
				visit(next)
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
	}

	for _, q := range v.def.Questions {
		if color[q.ID] == white {
			visit(q.ID)
		}
	}
}

func cyclePath(stack []string, target string) string {
	start := 0
	for i, id := range stack {
		if id == target {
			start = i
			break
		}
	}
	path := append(append([]string(nil), stack[start:]...), target)
	return strings.Join(path, " -> ")
}

func (v *validator) checkReachability() {
	byID := make(map[string]domain.Question, len(v.def.Questions))
	for _, q := range v.def.Questions {
		byID[q.ID] = q
	}

	first := v.def.Questions[0].ID
	reached := map[string]bool{first: true}
	queue := []string{first}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, opt := range byID[id].Options {
			if opt.IsTerminal() || reached[opt.NextQuestionID] {
				continue
			}
			reached[opt.NextQuestionID] = true
			queue = append(queue, opt.NextQuestionID)
		}
	}

	for _, q := range v.def.Questions {
		if !reached[q.ID] {
			v.fail(q.ID, "", "question is unreachable from %q", first)
		}
	}
}

func (v *validator) checkRecommendations() {
	if len(v.def.Recommendations) == 0 {
		return
	}

	byID := make(map[string]domain.Question, len(v.def.Questions))
	for _, q := range v.def.Questions {
		if _, dup := byID[q.ID]; !dup {
			byID[q.ID] = q
		}
	}

	keys := make([]string, 0, len(v.def.Recommendations))
	for k := range v.def.Recommendations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.TrimSpace(v.def.Recommendations[key]) == "" {
			v.fail("", "", "recommendation %q is empty", key)
		}
		qid, oid, ok := strings.Cut(key, domain.PathKeySeparator)
		if !ok {
			v.fail("", "", "recommendation key %q is not of the form question:option", key)
			continue
		}
		q, ok := byID[qid]
		if !ok {
			v.fail("", "", "recommendation key %q names an unknown question", key)
			continue
		}
		opt, ok := q.Option(oid)
		if !ok {
			v.fail(qid, "", "recommendation key %q names an unknown option", key)
			continue
		}
		if !opt.IsTerminal() {
			v.fail(qid, oid, "recommendation key %q names a non-terminal option", key)
		}
	}
}
