package validate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/djahlor/prompt-library/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestValidator() *Validator {
	return New(WithLogger(zerolog.Nop()))
}

func messages(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.Message)
	}
	return out
}

func TestValidateContentValid(t *testing.T) {
	issues := newTestValidator().ValidateContent("a.prompty", "---\nname: code-review\ndescription: Review code\nversion: 1.0.0\n---\nbody")
	require.Empty(t, issues)
}

func TestValidateContentShortVersion(t *testing.T) {
	issues := newTestValidator().ValidateContent("a.prompty", "---\nname: code-review\ndescription: d\nversion: \"1.2\"\n---\nbody")
	require.Equal(t, []string{MsgInvalidVersion}, messages(issues))
	require.Equal(t, "a.prompty: "+MsgInvalidVersion, issues[0].String())
}

func TestValidateContentUppercaseName(t *testing.T) {
	issues := newTestValidator().ValidateContent("a.prompty", "---\nname: \"My-Prompt\"\ndescription: d\nversion: 1.0.0\n---\nbody")
	require.Equal(t, []string{MsgInvalidName}, messages(issues))
}

func TestValidateContentMissingFields(t *testing.T) {
	issues := newTestValidator().ValidateContent("a.prompty", "---\ntags: [x]\n---\nbody")
	require.Equal(t, []string{
		"Missing required field 'name'",
		"Missing required field 'description'",
		"Missing required field 'version'",
	}, messages(issues))
}

func TestValidateContentNonStringValues(t *testing.T) {
	issues := newTestValidator().ValidateContent("a.prompty", "---\nname: 42\ndescription: d\nversion: 1.2\n---\nbody")
	require.Equal(t, []string{MsgInvalidVersion, MsgInvalidName}, messages(issues))
}

func TestValidateContentMissingOrBrokenFrontmatter(t *testing.T) {
	inputs := []string{
		"no header at all",
		"---\nname: [broken\n---\nbody",
		"---\n---\nbody",
		"---\n- a list\n---\nbody",
	}
	for _, input := range inputs {
		issues := newTestValidator().ValidateContent("a.prompty", input)
		require.Equal(t, []string{MsgMissingFrontmatter}, messages(issues), "input %q", input)
	}
}

func TestValidateDirCollectsAcrossFiles(t *testing.T) {
	root := t.TempDir()
	prompts := filepath.Join(root, "prompts")
	writeFile(t, filepath.Join(prompts, "good.prompty"), "---\nname: good\ndescription: d\nversion: 1.0.0\n---\nbody")
	writeFile(t, filepath.Join(prompts, "bad", "version.prompty"), "---\nname: bad\ndescription: d\nversion: \"1.2\"\n---\nbody")
	writeFile(t, filepath.Join(prompts, "broken.prompty"), "---\nname: [x\n---\nbody")
	schemaPath := filepath.Join(root, "schemas", "prompt.schema.json")
	writeFile(t, schemaPath, `{"title": "Prompt", "type": "object"}`)

	report, err := newTestValidator().ValidateDir(prompts, schemaPath)
	require.NoError(t, err)
	require.True(t, report.SchemaLoaded)
	require.Equal(t, 3, report.Checked)
	require.False(t, report.OK())
	require.Equal(t, []Issue{
		{Path: filepath.Join(prompts, "bad", "version.prompty"), Message: MsgInvalidVersion},
		{Path: filepath.Join(prompts, "broken.prompty"), Message: MsgMissingFrontmatter},
	}, report.Issues)
}

func TestValidateDirMissingSchemaWarns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "prompts", "good.prompty"), "---\nname: good\ndescription: d\nversion: 1.0.0\n---\nbody")

	var buf bytes.Buffer
	v := New(WithLogger(logging.New(&buf, logging.Config{Format: "json"})))

	report, err := v.ValidateDir(filepath.Join(root, "prompts"), filepath.Join(root, "schemas", "missing.json"))
	require.NoError(t, err)
	require.False(t, report.SchemaLoaded)
	require.True(t, report.OK())
	require.Equal(t, 1, report.Checked)
	require.Contains(t, buf.String(), "Schema not found")
}

func TestValidateDirInvalidSchema(t *testing.T) {
	root := t.TempDir()
	schemaPath := filepath.Join(root, "schema.json")
	writeFile(t, schemaPath, "{not json")

	_, err := newTestValidator().ValidateDir(filepath.Join(root, "prompts"), schemaPath)
	require.Error(t, err)
}
