package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadPrompt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "review.prompty")

	content := `---
name: code-review
description: Review code
version: 1.2.3
category: engineering
model:
  api: chat
  parameters:
    max_tokens: 1024
    temperature: 0.2
tags: [review, go]
sample:
  language: go
---
Review this {{language}} code.
`
	writeFile(t, path, content)

	p, err := LoadPrompt(path)
	require.NoError(t, err)

	require.Equal(t, "code-review", p.ID)
	require.Equal(t, path, p.Path)
	require.Equal(t, "1.2.3", p.Meta.Version)
	require.Equal(t, "engineering", p.Meta.Category)
	require.Equal(t, []string{"review", "go"}, p.Meta.Tags)
	require.NotNil(t, p.Meta.Model)
	require.Equal(t, "chat", p.Meta.Model.API)
	require.Equal(t, 1024, p.Meta.Model.Parameters.MaxTokens)
	require.Equal(t, map[string]any{"language": "go"}, p.Meta.Sample)
	require.Equal(t, "Review this {{language}} code.\n", p.Body)
	require.Equal(t, content, p.Raw)
}

func TestLoadPromptFallsBackToFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.prompty")
	writeFile(t, path, "Just a body")

	p, err := LoadPrompt(path)
	require.NoError(t, err)
	require.Equal(t, "plain", p.ID)
	require.Empty(t, p.Frontmatter)
	require.Equal(t, "Just a body", p.Body)
}

func TestLoadPromptMismatchedTypes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "odd.prompty")
	writeFile(t, path, "---\nname: odd\ntags: not-a-list\n---\nbody")

	p, err := LoadPrompt(path)
	require.NoError(t, err)
	require.Equal(t, "odd", p.ID)
	require.Empty(t, p.Meta.Tags)
}

func TestDiscoverRecursiveSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.prompty"), "b")
	writeFile(t, filepath.Join(dir, "nested", "a.prompty"), "a")
	writeFile(t, filepath.Join(dir, "notes.md"), "ignored")

	paths, err := Discover(dir, Extension)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "b.prompty"),
		filepath.Join(dir, "nested", "a.prompty"),
	}, paths)
}

func TestDiscoverMatchesExtensionCase(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lower.prompty"), "a")
	writeFile(t, filepath.Join(dir, "UPPER.PROMPTY"), "b")
	writeFile(t, filepath.Join(dir, "Mixed.Prompty"), "c")

	paths, err := Discover(dir, Extension)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "lower.prompty")}, paths)
}

func TestScanPromptsFromDirCollectsErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.prompty"), "---\nname: alpha\n---\nbody")
	writeFile(t, filepath.Join(dir, "broken.prompty"), "---\nname: [unclosed\n---\nbody")
	writeFile(t, filepath.Join(dir, "c.prompty"), "plain body")

	result, err := ScanPromptsFromDir(dir)
	require.NoError(t, err)
	require.Len(t, result.Prompts, 2)
	require.Equal(t, "alpha", result.Prompts[0].ID)
	require.Equal(t, "c", result.Prompts[1].ID)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0], "broken.prompty")

	_, err = LoadPromptsFromDir(dir)
	require.Error(t, err)
}

func TestDiscoverMissingDir(t *testing.T) {
	paths, err := Discover(filepath.Join(t.TempDir(), "missing"), Extension)
	require.NoError(t, err)
	require.Empty(t, paths)
}

func TestLoadFragmentsFromDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "fragments", "tone", "friendly.md"), "\nBe friendly.\n")

	fragments, err := LoadFragmentsFromDir(root, filepath.Join(root, "fragments"))
	require.NoError(t, err)
	require.Len(t, fragments, 1)

	f := fragments[0]
	require.Equal(t, "tone/friendly", f.ID)
	require.Equal(t, "fragments/tone/friendly.md", f.Path)
	require.Equal(t, "tone", f.Category)
	require.Equal(t, "friendly", f.Name)
	require.Equal(t, "Be friendly.", f.Content)
}
