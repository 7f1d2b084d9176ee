package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/oncoscreen/internal/presentation/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "v1.2.3")
	assert.Contains(t, buf.String(), "screening questionnaire v1.2.3")
}

func TestNewRenderer(t *testing.T) {
	render := tui.NewRenderer(60)
	out, err := render("**Recommendation**\n\nSee a doctor.")
	require.NoError(t, err)
	assert.Contains(t, out, "Recommendation")
	assert.Contains(t, out, "See a doctor.")
}
