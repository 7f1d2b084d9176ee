package runtime_test

import (
	"math/rand"
	"testing"

	"github.com/aretw0/oncoscreen/internal/runtime"
	"github.com/aretw0/oncoscreen/pkg/catalog"
	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario builds q1 (A -> q2, B terminal), q2 (C, D terminal).
func scenario(t testing.TB, recs map[string]string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Definition{
		ID:    "scenario",
		Title: "Scenario",
		Questions: []domain.Question{
			{ID: "q1", Text: "One", Options: []domain.Option{
				{ID: "A", Label: "A", NextQuestionID: "q2"},
				{ID: "B", Label: "B"},
			}},
			{ID: "q2", Text: "Two", Options: []domain.Option{
				{ID: "C", Label: "C"},
				{ID: "D", Label: "D"},
			}},
		},
		Recommendations: recs,
	})
	require.NoError(t, err)
	return c
}

func TestRecordAnswer_DefaultRecommendationOnUnmappedPath(t *testing.T) {
	c := scenario(t, nil)

	h, current, rec := runtime.RecordAnswer(domain.History{}, "q1", "A", "q2", c)
	assert.Equal(t, "q2", current)
	assert.Empty(t, rec)

	h, current, rec = runtime.RecordAnswer(h, "q2", "C", "", c)
	assert.Equal(t, "q2", current, "terminal answers keep the pointer on the answered question")
	assert.Equal(t, catalog.DefaultRecommendation, rec)
	assert.Equal(t, domain.History{{QuestionID: "q1", OptionID: "A"}, {QuestionID: "q2", OptionID: "C"}}, h)
}

func TestRecordAnswer_MappedRecommendation(t *testing.T) {
	c := scenario(t, map[string]string{"q1:B": "Mapped text."})

	_, _, rec := runtime.RecordAnswer(domain.History{}, "q1", "B", "", c)
	assert.Equal(t, "Mapped text.", rec)
}

func TestRecordAnswer_ReplacesPreviousAnswer(t *testing.T) {
	c := scenario(t, nil)
	h := domain.History{{QuestionID: "q1", OptionID: "A"}, {QuestionID: "q2", OptionID: "C"}}

	next, _, _ := runtime.RecordAnswer(h, "q1", "B", "", c)
	assert.Equal(t, domain.History{{QuestionID: "q2", OptionID: "C"}, {QuestionID: "q1", OptionID: "B"}}, next)
	assert.Equal(t, "A", h[0].OptionID, "input history must not change")
}

func TestRecordAnswer_Uniqueness(t *testing.T) {
	c := scenario(t, nil)
	rng := rand.New(rand.NewSource(42))
	questions := []string{"q1", "q2"}
	options := []string{"A", "B", "C", "D"}

	h := domain.History{}
	for i := 0; i < 500; i++ {
		q := questions[rng.Intn(len(questions))]
		o := options[rng.Intn(len(options))]
		h, _, _ = runtime.RecordAnswer(h, q, o, "", c)

		seen := map[string]bool{}
		for _, a := range h {
			require.False(t, seen[a.QuestionID], "duplicate answer for %s after step %d", a.QuestionID, i)
			seen[a.QuestionID] = true
		}
	}
}

func TestGoBack_InvertsRecordAnswer(t *testing.T) {
	c := scenario(t, nil)
	prior := domain.History{{QuestionID: "q1", OptionID: "A"}}

	h, _, rec := runtime.RecordAnswer(prior, "q2", "D", "", c)
	require.NotEmpty(t, rec)

	back, current := runtime.GoBack(h, c.First())
	assert.Equal(t, prior, back)
	assert.Equal(t, "q2", current)
}

func TestGoBack_EmptyHistoryIsIdempotent(t *testing.T) {
	h, current := runtime.GoBack(domain.History{}, "q1")
	assert.Empty(t, h)
	assert.Equal(t, "q1", current)

	h, current = runtime.GoBack(h, "q1")
	assert.Empty(t, h)
	assert.Equal(t, "q1", current)

	h, _ = runtime.GoBack(nil, "q1")
	assert.NotNil(t, h)
}

func TestReset(t *testing.T) {
	c := scenario(t, nil)
	h, current, rec := runtime.Reset(c)
	assert.Empty(t, h)
	assert.Equal(t, "q1", current)
	assert.Empty(t, rec)
}

func TestRenderList(t *testing.T) {
	c := scenario(t, nil)

	list := runtime.RenderList(c, domain.History{}, "q1")
	require.Len(t, list, 1)
	assert.Equal(t, "q1", list[0].ID)
	assert.False(t, list[0].Locked())

	h := domain.History{{QuestionID: "q1", OptionID: "A"}}
	list = runtime.RenderList(c, h, "q2")
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].SelectedOptionID)
	assert.Equal(t, "q2", list[1].ID)
	assert.Empty(t, list[1].SelectedOptionID)

	// Terminal: current question is already answered and not repeated.
	h = append(h, domain.Answer{QuestionID: "q2", OptionID: "C"})
	list = runtime.RenderList(c, h, "q2")
	assert.Len(t, list, 2)

	// Unknown IDs are skipped.
	h = domain.History{{QuestionID: "ghost", OptionID: "x"}}
	list = runtime.RenderList(c, h, "nowhere")
	assert.Empty(t, list)
}

func TestSelectedOption(t *testing.T) {
	h := domain.History{{QuestionID: "q1", OptionID: "A"}}
	opt, ok := runtime.SelectedOption(h, "q1")
	assert.True(t, ok)
	assert.Equal(t, "A", opt)

	_, ok = runtime.SelectedOption(h, "q2")
	assert.False(t, ok)
}
