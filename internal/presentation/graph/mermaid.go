package graph

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/oncoscreen/pkg/catalog"
	"github.com/aretw0/oncoscreen/pkg/domain"
)

// maxLeafLabel caps the recommendation text shown on leaf nodes.
const maxLeafLabel = 48

// Overlay contains session data to highlight on the graph.
type Overlay struct {
	History         domain.History
	CurrentQuestion string
	Terminated      bool
}

// OverlayFromState builds an overlay from a session state.
func OverlayFromState(s *domain.State) *Overlay {
	return &Overlay{
		History:         s.History,
		CurrentQuestion: s.CurrentQuestionID,
		Terminated:      s.Terminated(),
	}
}

// GenerateMermaid produces a Mermaid flowchart of a catalog.
// It applies semantic styling:
// - First question: (["Stadium"])
// - Question: ["Rectangle"]
// - Recommendation leaf: [/"Parallelogram"/]
// Options are labelled edges. Overlay styles (answered/current) are applied if provided.
func GenerateMermaid(c *catalog.Catalog, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	first := c.First()
	for _, q := range c.Questions() {
		safeID := sanitizeMermaidID(q.ID)

		opener, closer := "[", "]"
		if q.ID == first {
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, escape(q.Text), closer)

		for _, opt := range q.Options {
			label := escape(opt.Label)
			if !opt.IsTerminal() {
				fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", safeID, label, sanitizeMermaidID(opt.NextQuestionID))
				continue
			}
			leaf := leafID(q.ID, opt.ID)
			text := truncate(c.Recommendation(q.ID, opt.ID), maxLeafLabel)
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s[/\"%s\"/]\n", safeID, label, leaf, escape(text))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef answered fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		for _, a := range overlay.History {
			if _, ok := c.Question(a.QuestionID); !ok {
				continue
			}
			fmt.Fprintf(&sb, "    class %s answered;\n", sanitizeMermaidID(a.QuestionID))
		}

		switch last, ok := overlay.History.Last(); {
		case overlay.Terminated && ok:
			fmt.Fprintf(&sb, "    class %s current;\n", leafID(last.QuestionID, last.OptionID))
		case overlay.CurrentQuestion != "":
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentQuestion))
		}
	}

	return sb.String()
}

func leafID(questionID, optionID string) string {
	return sanitizeMermaidID(questionID) + "__" + sanitizeMermaidID(optionID)
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
