package render

import (
	"fmt"
	"os"

	"github.com/djahlor/prompt-library/internal/frontmatter"
)

// FileOptions configure RenderFile.
type FileOptions struct {
	// IncludeRoot is the directory include paths are joined onto.
	IncludeRoot string

	// Vars are user bindings; they override sample values.
	Vars []Var

	// UseSample binds the frontmatter "sample" mapping before Vars.
	UseSample bool

	// Options are passed to the Renderer.
	Options []Option
}

// RenderFile renders the prompty file at path. A missing file returns an
// error wrapping ErrFileNotFound; a malformed header is returned as is.
func RenderFile(path string, opts FileOptions) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := frontmatter.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	vars, err := NewBindings(doc.Frontmatter["sample"], opts.UseSample, opts.Vars)
	if err != nil {
		return nil, fmt.Errorf("bind variables for %s: %w", path, err)
	}

	return New(opts.IncludeRoot, opts.Options...).Render(doc.Body, vars)
}
