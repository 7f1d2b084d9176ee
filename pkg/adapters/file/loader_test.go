package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/oncoscreen/pkg/adapters/file"
	"github.com/aretw0/oncoscreen/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lungYAML = `
id: lung
title: Lung cancer screening
questions:
  - id: l1
    text: Do you smoke?
    options:
      - id: "yes"
        label: "Yes"
      - id: "no"
        label: "No"
recommendations:
  "l1:yes": Ask about low-dose CT.
`

const skinJSON = `{"id":"skin","title":"Skin check","questions":[{"id":"s1","text":"New moles?","options":[{"id":"y","label":"Yes"}]}]}`

const brokenYAML = `
id: broken
title: Broken
questions:
  - id: x
    text: Where next?
    options:
      - id: o
        label: O
        next: missing
`

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoader_LoadCatalogs(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "b-skin.json", skinJSON)
	write(t, dir, "a-lung.yaml", lungYAML)
	write(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	set, err := file.NewLoader(dir).LoadCatalogs(context.Background())
	require.NoError(t, err)

	summaries := set.Summaries()
	require.Len(t, summaries, 2)
	assert.Equal(t, "lung", summaries[0].ID)
	assert.Equal(t, "skin", summaries[1].ID)

	lung, _ := set.Get("lung")
	assert.Equal(t, "Ask about low-dose CT.", lung.Recommendation("l1", "yes"))
	assert.Equal(t, catalog.DefaultRecommendation, lung.Recommendation("l1", "no"))
}

func TestLoader_ReportsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.yaml", lungYAML)
	write(t, dir, "b.yaml", brokenYAML)
	write(t, dir, "c.yml", "{{{")

	_, err := file.NewLoader(dir).LoadCatalogs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b.yaml")
	assert.Contains(t, err.Error(), "c.yml")
	assert.NotEmpty(t, catalog.ValidationErrors(err))
}

func TestLoader_DuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.yaml", lungYAML)
	write(t, dir, "b.yaml", lungYAML)

	_, err := file.NewLoader(dir).LoadCatalogs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate catalog id")
}

func TestLoader_EmptyOrMissingDir(t *testing.T) {
	_, err := file.NewLoader(t.TempDir()).LoadCatalogs(context.Background())
	assert.ErrorContains(t, err, "no catalog files")

	_, err = file.NewLoader(filepath.Join(t.TempDir(), "missing")).LoadCatalogs(context.Background())
	assert.Error(t, err)
}
