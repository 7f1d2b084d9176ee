package domain

// CatalogSummary describes a test offered on the selection screen.
type CatalogSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// QuestionView is a question as it should be rendered.
type QuestionView struct {
	Question

	// SelectedOptionID is the chosen option, empty while unanswered.
	SelectedOptionID string `json:"selected_option_id,omitempty"`
}

// Locked reports whether the question's options are disabled.
func (q QuestionView) Locked() bool {
	return q.SelectedOptionID != ""
}

// View is the presentation derived from a State. It is never stored.
type View struct {
	Screen Screen `json:"screen"`

	// Catalogs lists the available tests (selection screen only).
	Catalogs []CatalogSummary `json:"catalogs,omitempty"`

	// CatalogID and Title describe the active test.
	CatalogID string `json:"catalog_id,omitempty"`
	Title     string `json:"title,omitempty"`

	// Questions is the render list: answered questions in history order,
	// then the current question if it is still unanswered.
	Questions []QuestionView `json:"questions,omitempty"`

	Recommendation string `json:"recommendation,omitempty"`

	CanGoBack bool `json:"can_go_back"`
	CanReset  bool `json:"can_reset"`
}

// Terminal reports whether the view shows a final recommendation.
func (v *View) Terminal() bool {
	return v.Recommendation != ""
}

// Pending returns the unanswered question awaiting input, if any.
func (v *View) Pending() (QuestionView, bool) {
	if v.Terminal() || len(v.Questions) == 0 {
		return QuestionView{}, false
	}
	last := v.Questions[len(v.Questions)-1]
	if last.Locked() {
		return QuestionView{}, false
	}
	return last, true
}
