package index

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBuildAndWrite(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "prompts", "a.prompty"), "---\nname: alpha\ncategory: writing\ntags: [draft, edit]\n---\n\nAlpha body\n")
	writeFile(t, filepath.Join(root, "prompts", "b", "beta.prompty"), "---\ncategory: writing\ntags: [edit, review]\n---\nBeta body")
	writeFile(t, filepath.Join(root, "fragments", "tone", "formal.md"), "Be formal.\n")

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	idx, err := Build(Options{
		Root:         root,
		PromptsDir:   filepath.Join(root, "prompts"),
		FragmentsDir: filepath.Join(root, "fragments"),
		Now:          func() time.Time { return fixed },
	})
	require.NoError(t, err)

	require.Len(t, idx.Prompts, 2)
	require.Equal(t, "alpha", idx.Prompts[0].ID)
	require.Equal(t, "prompts/a.prompty", idx.Prompts[0].Path)
	require.Equal(t, "Alpha body", idx.Prompts[0].Content)
	require.Equal(t, "beta", idx.Prompts[1].ID)
	require.Equal(t, []string{"draft", "edit", "review"}, idx.Tags)
	require.Equal(t, []string{"writing"}, idx.Categories)
	require.Equal(t, "2026-01-02T03:04:05Z", idx.GeneratedAt)

	require.Len(t, idx.Fragments, 1)
	require.Equal(t, "tone/formal", idx.Fragments[0].ID)
	require.Equal(t, "fragments/tone/formal.md", idx.Fragments[0].Path)

	out := filepath.Join(root, "web", "src", "data", "index.json")
	require.NoError(t, Write(out, idx))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Contains(t, decoded, "generatedAt")
	require.Len(t, decoded["prompts"], 2)
}

func TestBuildEmptyLibrary(t *testing.T) {
	root := t.TempDir()

	idx, err := Build(Options{
		Root:         root,
		PromptsDir:   filepath.Join(root, "prompts"),
		FragmentsDir: filepath.Join(root, "fragments"),
	})
	require.NoError(t, err)
	require.Empty(t, idx.Prompts)
	require.Empty(t, idx.Fragments)
	require.NotNil(t, idx.Tags)
	require.NotNil(t, idx.Categories)
}
