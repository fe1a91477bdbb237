package prompt

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/djahlor/prompt-library/internal/frontmatter"
)

// LoadPrompt reads and splits a single prompt file.
func LoadPrompt(path string) (*Prompt, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("prompt path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompt %s: %w", path, err)
	}

	p, err := parsePrompt(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse prompt %s: %w", path, err)
	}
	p.Path = path
	if p.ID == "" {
		p.ID = strings.TrimSuffix(filepath.Base(path), Extension)
	}
	return p, nil
}

// LoadPromptsFromDir loads every prompt under dir, recursively, sorted by path.
// A missing directory yields no prompts.
func LoadPromptsFromDir(dir string) ([]*Prompt, error) {
	paths, err := Discover(dir, Extension)
	if err != nil {
		return nil, err
	}

	prompts := make([]*Prompt, 0, len(paths))
	for _, path := range paths {
		p, err := LoadPrompt(path)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, p)
	}
	return prompts, nil
}

// ScanResult holds the prompts that loaded and a diagnostic for each file
// that did not.
type ScanResult struct {
	Prompts []*Prompt
	Errors  []string
}

// ScanPromptsFromDir loads every prompt under dir like LoadPromptsFromDir, but
// a file that cannot be read or parsed is recorded in Errors and skipped
// instead of aborting the scan.
func ScanPromptsFromDir(dir string) (*ScanResult, error) {
	paths, err := Discover(dir, Extension)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{Prompts: make([]*Prompt, 0, len(paths))}
	for _, path := range paths {
		p, err := LoadPrompt(path)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		result.Prompts = append(result.Prompts, p)
	}
	return result, nil
}

// Discover returns the files under dir with the given extension, recursively
// and sorted. A missing directory yields an empty list.
func Discover(dir, ext string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return []string{}, nil
	}

	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}

	paths := make([]string, 0)
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if filepath.Ext(entry.Name()) == ext {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// LoadFragment reads a fragment. Its Path is made relative to root when
// possible.
func LoadFragment(root, path string) (*Fragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fragment %s: %w", path, err)
	}

	category := filepath.Base(filepath.Dir(path))
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return &Fragment{
		ID:       category + "/" + name,
		Path:     RelPath(root, path),
		Category: category,
		Name:     name,
		Content:  strings.TrimSpace(string(data)),
	}, nil
}

// LoadFragmentsFromDir loads every fragment under dir, recursively.
func LoadFragmentsFromDir(root, dir string) ([]*Fragment, error) {
	paths, err := Discover(dir, FragmentExtension)
	if err != nil {
		return nil, err
	}

	fragments := make([]*Fragment, 0, len(paths))
	for _, path := range paths {
		fragment, err := LoadFragment(root, path)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fragment)
	}
	return fragments, nil
}

// RelPath returns path relative to root using forward slashes, or path
// unchanged when it cannot be made relative.
func RelPath(root, path string) string {
	if root == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func parsePrompt(content string) (*Prompt, error) {
	doc, err := frontmatter.Parse(content)
	if err != nil {
		return nil, err
	}

	meta := decodeMeta(doc.Frontmatter)
	return &Prompt{
		ID:          strings.TrimSpace(meta.Name),
		Meta:        meta,
		Frontmatter: doc.Frontmatter,
		Body:        doc.Body,
		Raw:         content,
	}, nil
}
