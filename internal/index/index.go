// Package index builds the JSON catalogue of prompts and fragments consumed
// by the web browser UI.
package index

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/djahlor/prompt-library/internal/prompt"
	"github.com/goccy/go-json"
)

// Index is the catalogue written to disk.
type Index struct {
	Prompts     []Prompt   `json:"prompts"`
	Fragments   []Fragment `json:"fragments"`
	Tags        []string   `json:"tags"`
	Categories  []string   `json:"categories"`
	GeneratedAt string     `json:"generatedAt"`
}

// Prompt is a prompt entry.
type Prompt struct {
	ID          string         `json:"id"`
	Path        string         `json:"path"`
	Frontmatter map[string]any `json:"frontmatter"`
	Content     string         `json:"content"`
	RawContent  string         `json:"rawContent"`
}

// Fragment is a fragment entry.
type Fragment struct {
	ID       string `json:"id"`
	Path     string `json:"path"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Content  string `json:"content"`
}

// Options select the directories to index.
type Options struct {
	Root         string
	PromptsDir   string
	FragmentsDir string

	// Now overrides the generation timestamp. Default: time.Now.
	Now func() time.Time
}

// Build loads every prompt and fragment and assembles the index.
func Build(opts Options) (*Index, error) {
	prompts, err := prompt.LoadPromptsFromDir(opts.PromptsDir)
	if err != nil {
		return nil, err
	}
	fragments, err := prompt.LoadFragmentsFromDir(opts.Root, opts.FragmentsDir)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	idx := &Index{
		Prompts:     make([]Prompt, 0, len(prompts)),
		Fragments:   make([]Fragment, 0, len(fragments)),
		Tags:        []string{},
		Categories:  []string{},
		GeneratedAt: now().UTC().Format(time.RFC3339),
	}

	seenTags := make(map[string]struct{})
	seenCategories := make(map[string]struct{})

	for _, p := range prompts {
		idx.Prompts = append(idx.Prompts, Prompt{
			ID:          p.ID,
			Path:        prompt.RelPath(opts.Root, p.Path),
			Frontmatter: p.Frontmatter,
			Content:     strings.TrimSpace(p.Body),
			RawContent:  p.Raw,
		})

		for _, tag := range p.Meta.Tags {
			if _, ok := seenTags[tag]; ok {
				continue
			}
			seenTags[tag] = struct{}{}
			idx.Tags = append(idx.Tags, tag)
		}

		if category := p.Meta.Category; category != "" {
			if _, ok := seenCategories[category]; !ok {
				seenCategories[category] = struct{}{}
				idx.Categories = append(idx.Categories, category)
			}
		}
	}

	for _, f := range fragments {
		idx.Fragments = append(idx.Fragments, Fragment(*f))
	}

	return idx, nil
}

// Write encodes idx as indented JSON at path, creating parent directories.
func Write(path string, idx *Index) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write index %s: %w", path, err)
	}
	return nil
}
