package catalog_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/oncoscreen/pkg/catalog"
	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoStep() catalog.Definition {
	return catalog.Definition{
		ID:    "demo",
		Title: "Demo",
		Questions: []domain.Question{
			{ID: "q1", Text: "First?", Options: []domain.Option{
				{ID: "A", Label: "A", NextQuestionID: "q2"},
				{ID: "B", Label: "B"},
			}},
			{ID: "q2", Text: "Second?", Options: []domain.Option{
				{ID: "C", Label: "C"},
				{ID: "D", Label: "D"},
			}},
		},
		Recommendations: map[string]string{
			"q1:B": "Screen every year.",
			"q2:D": "Talk to a specialist.",
		},
	}
}

func TestNew_IndexesQuestions(t *testing.T) {
	c, err := catalog.New(twoStep())
	require.NoError(t, err)

	assert.Equal(t, "demo", c.ID())
	assert.Equal(t, "q1", c.First())

	q, ok := c.Question("q2")
	require.True(t, ok)
	assert.Equal(t, "Second?", q.Text)

	_, ok = c.Question("missing")
	assert.False(t, ok)
}

func TestRecommendation_FallsBackToDefault(t *testing.T) {
	c := catalog.MustNew(twoStep())

	assert.Equal(t, "Screen every year.", c.Recommendation("q1", "B"))
	assert.Equal(t, catalog.DefaultRecommendation, c.Recommendation("q2", "C"))
	assert.True(t, c.HasRecommendation("q2", "D"))
	assert.False(t, c.HasRecommendation("q2", "C"))

	def := twoStep()
	def.DefaultRecommendation = "Ask your GP."
	c = catalog.MustNew(def)
	assert.Equal(t, "Ask your GP.", c.Recommendation("q2", "C"))
}

func TestCatalog_IsImmutable(t *testing.T) {
	def := twoStep()
	c := catalog.MustNew(def)

	def.Questions[0].Text = "changed"
	def.Recommendations["q1:B"] = "changed"
	qs := c.Questions()
	qs[0].Options[0].Label = "changed"

	q, _ := c.Question("q1")
	assert.Equal(t, "First?", q.Text)
	assert.Equal(t, "A", q.Options[0].Label)
	assert.Equal(t, "Screen every year.", c.Recommendation("q1", "B"))
}

func TestCatalog_MarshalJSON(t *testing.T) {
	c := catalog.MustNew(twoStep())
	b, err := json.Marshal(c)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "demo", out["id"])
	assert.Len(t, out["questions"], 2)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*catalog.Definition)
		reason string
	}{
		{
			name:   "empty catalog",
			mutate: func(d *catalog.Definition) { d.Questions = nil },
			reason: "no questions",
		},
		{
			name:   "dangling next",
			mutate: func(d *catalog.Definition) { d.Questions[1].Options[0].NextQuestionID = "q9" },
			reason: `next question "q9" does not exist`,
		},
		{
			name:   "cycle",
			mutate: func(d *catalog.Definition) { d.Questions[1].Options[0].NextQuestionID = "q1" },
			reason: "cycle detected: q1 -> q2 -> q1",
		},
		{
			name:   "self loop",
			mutate: func(d *catalog.Definition) { d.Questions[0].Options[1].NextQuestionID = "q1" },
			reason: "cycle detected: q1 -> q1",
		},
		{
			name:   "unreachable",
			mutate: func(d *catalog.Definition) { d.Questions[0].Options[0].NextQuestionID = "" },
			reason: "unreachable",
		},
		{
			name: "duplicate question",
			mutate: func(d *catalog.Definition) {
				d.Questions = append(d.Questions, d.Questions[1])
			},
			reason: "duplicate question id",
		},
		{
			name: "duplicate option",
			mutate: func(d *catalog.Definition) {
				d.Questions[1].Options = append(d.Questions[1].Options, domain.Option{ID: "C", Label: "again"})
			},
			reason: "duplicate option id",
		},
		{
			name:   "question without options",
			mutate: func(d *catalog.Definition) { d.Questions[1].Options = nil },
			reason: "no options",
		},
		{
			name:   "empty label",
			mutate: func(d *catalog.Definition) { d.Questions[1].Options[1].Label = " " },
			reason: "label is required",
		},
		{
			name:   "separator in id",
			mutate: func(d *catalog.Definition) { d.Questions[1].Options[1].ID = "x:y" },
			reason: "must not contain",
		},
		{
			name:   "recommendation on non-terminal option",
			mutate: func(d *catalog.Definition) { d.Recommendations["q1:A"] = "never shown" },
			reason: "non-terminal",
		},
		{
			name:   "recommendation on unknown question",
			mutate: func(d *catalog.Definition) { d.Recommendations["q7:A"] = "never shown" },
			reason: "unknown question",
		},
		{
			name:   "malformed recommendation key",
			mutate: func(d *catalog.Definition) { d.Recommendations["q1"] = "never shown" },
			reason: "not of the form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := twoStep()
			tt.mutate(&def)

			err := catalog.Validate(def)
			require.Error(t, err)

			var aggr *catalog.AggregateError
			require.True(t, errors.As(err, &aggr))
			assert.Contains(t, err.Error(), tt.reason)

			var verr *catalog.ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.Equal(t, "demo", verr.Catalog)
		})
	}
}

func TestValidate_ReservedID(t *testing.T) {
	def := twoStep()
	def.ID = string(domain.ScreenSelection)

	errs := catalog.ValidationErrors(catalog.Validate(def))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "reserved for the selection screen")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	def := twoStep()
	def.Title = ""
	def.Questions[1].Text = ""
	def.Questions[1].Options[0].Label = ""

	errs := catalog.ValidationErrors(catalog.Validate(def))
	assert.Len(t, errs, 3)
	assert.Nil(t, catalog.ValidationErrors(errors.New("plain")))
}

func TestValidationError_Error(t *testing.T) {
	err := &catalog.ValidationError{Catalog: "c", Question: "q", Option: "o", Reason: "bad"}
	assert.Equal(t, `catalog "c" question "q" option "o": bad`, err.Error())
	assert.Equal(t, "bad", (&catalog.ValidationError{Reason: "bad"}).Error())
}

func TestNewSet(t *testing.T) {
	a := catalog.MustNew(twoStep())
	def := twoStep()
	def.ID = "other"
	def.Title = "Other"
	b := catalog.MustNew(def)

	set, err := catalog.NewSet(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	summaries := set.Summaries()
	assert.Equal(t, "demo", summaries[0].ID)
	assert.Equal(t, "other", summaries[1].ID)

	got, ok := set.Get("other")
	require.True(t, ok)
	assert.Same(t, b, got)

	_, err = catalog.NewSet(a, a)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "duplicate catalog id"))
}
