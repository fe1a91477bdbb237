// Package prompt provides the prompt library model and file discovery.
package prompt

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Extension is the file extension of prompt files.
const Extension = ".prompty"

// FragmentExtension is the file extension of include fragments.
const FragmentExtension = ".md"

// Prompt represents a single prompty file.
type Prompt struct {
	// ID is the frontmatter name, or the file base name when unnamed.
	ID string

	// Path is the file path as discovered.
	Path string

	// Meta is the typed view of the frontmatter.
	Meta Frontmatter

	// Frontmatter is the raw decoded header.
	Frontmatter map[string]any

	// Body is the template text after the header.
	Body string

	// Raw is the full file content.
	Raw string
}

// Frontmatter is the typed prompt header.
type Frontmatter struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Authors     []string       `yaml:"authors,omitempty" json:"authors,omitempty"`
	Version     string         `yaml:"version" json:"version"`
	Category    string         `yaml:"category,omitempty" json:"category,omitempty"`
	Model       *Model         `yaml:"model,omitempty" json:"model,omitempty"`
	Tags        []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Fragments   []string       `yaml:"fragments,omitempty" json:"fragments,omitempty"`
	Variables   []string       `yaml:"variables,omitempty" json:"variables,omitempty"`
	Sample      map[string]any `yaml:"sample,omitempty" json:"sample,omitempty"`
}

// Model describes the target model API and its parameters.
type Model struct {
	API        string           `yaml:"api,omitempty" json:"api,omitempty"`
	Parameters *ModelParameters `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// ModelParameters are sampling parameters for the model.
type ModelParameters struct {
	MaxTokens   int     `yaml:"max_tokens,omitempty" json:"max_tokens,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty" json:"temperature,omitempty"`
}

// Fragment is a reusable text snippet referenced by include directives.
type Fragment struct {
	// ID is "<category>/<name>".
	ID string

	// Path is the fragment path relative to the library root.
	Path string

	// Category is the name of the directory containing the fragment.
	Category string

	// Name is the file base name without extension.
	Name string

	// Content is the trimmed fragment text.
	Content string
}

// decodeMeta re-decodes a raw header into the typed view. Fields whose types
// do not match are left zero; the validator reports on the raw mapping.
func decodeMeta(raw map[string]any) Frontmatter {
	var meta Frontmatter
	if len(raw) == 0 {
		return meta
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return meta
	}
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return lenientMeta(raw)
	}
	return meta
}

func lenientMeta(raw map[string]any) Frontmatter {
	var meta Frontmatter
	meta.Name, _ = raw["name"].(string)
	meta.Description, _ = raw["description"].(string)
	meta.Version, _ = raw["version"].(string)
	meta.Category, _ = raw["category"].(string)
	meta.Tags = stringList(raw["tags"])
	if sample, ok := raw["sample"].(map[string]any); ok {
		meta.Sample = sample
	}
	return meta
}

func stringList(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
