// Package testutils holds fixtures shared by adapter and CLI tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/require"
)

// LungDocument is a small, valid catalog written as a Loam Markdown document.
const LungDocument = `---
id: lung
title: Lung cancer screening
questions:
  - id: l1
    text: Have you smoked in the last 15 years?
    options:
      - id: "yes"
        label: "Yes"
        next: l2
      - id: "no"
        label: "No"
  - id: l2
    text: Are you between 50 and 80?
    options:
      - id: "yes"
        text: "Yes"
      - id: "no"
        text: "No"
recommendations:
  "l1:no": Routine screening is not indicated.
  "l2:yes": Ask about a yearly low-dose CT.
---
For current and former smokers.
`

// SetupTestRepo creates a temporary directory and initializes a Loam repository in it.
// It returns the absolute path to the temp dir and the initialized repository.
// It fails the test immediately on error.
func SetupTestRepo(t *testing.T, opts ...loam.Option) (string, core.Repository) {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	opts = append([]loam.Option{loam.WithVersioning(false)}, opts...)
	repo, err := loam.Init(absPath, opts...)
	require.NoError(t, err, "Failed to init loam repo")

	return absPath, repo
}

// WriteFiles seeds dir with the given file name to content pairs.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}
