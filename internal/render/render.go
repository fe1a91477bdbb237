// Package render expands include directives and placeholder tokens in
// prompty template bodies.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/djahlor/prompt-library/internal/logging"
	"github.com/rs/zerolog"
	"github.com/valyala/fasttemplate"
)

// Token delimiters.
const (
	DirectiveStart   = "{%"
	DirectiveEnd     = "%}"
	PlaceholderStart = "{{"
	PlaceholderEnd   = "}}"
)

// ErrFileNotFound reports a render target that does not exist.
var ErrFileNotFound = errors.New("file not found")

// Result is the outcome of a render.
type Result struct {
	// Text is the rendered output.
	Text string

	// MissingIncludes lists include targets that did not exist, in the order
	// first seen. Their directives are left verbatim in Text.
	MissingIncludes []string
}

// Renderer resolves includes against a fixed root and substitutes
// placeholders.
type Renderer struct {
	includeRoot string
	logger      zerolog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger that receives missing-include warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

// New creates a Renderer. Include paths are joined onto includeRoot, so a
// directive naming 'fragments/tone.md' expects includeRoot to be the parent of
// the fragments directory.
func New(includeRoot string, opts ...Option) *Renderer {
	r := &Renderer{
		includeRoot: includeRoot,
		logger:      logging.Component("render"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render expands include directives found in body, then substitutes bound
// placeholders in the expanded text. Includes are resolved in a single pass
// over body: included text is never scanned for further directives. Unbound
// placeholders and missing includes are left verbatim.
func (r *Renderer) Render(body string, vars Bindings) (*Result, error) {
	result := &Result{}

	expanded, err := r.expandIncludes(body, result)
	if err != nil {
		return nil, err
	}

	text, err := Substitute(expanded, vars)
	if err != nil {
		return nil, err
	}
	result.Text = text
	return result, nil
}

func (r *Renderer) expandIncludes(body string, result *Result) (string, error) {
	cache := make(map[string]string)
	missing := make(map[string]struct{})

	return fasttemplate.ExecuteFuncStringWithErr(body, DirectiveStart, DirectiveEnd, func(w io.Writer, tag string) (int, error) {
		prefix, tag := splitNestedStart(tag, DirectiveStart)
		n, err := io.WriteString(w, prefix)
		if err != nil {
			return n, err
		}

		rel, ok := parseInclude(tag)
		if !ok {
			m, err := io.WriteString(w, DirectiveStart+tag+DirectiveEnd)
			return n + m, err
		}

		path := filepath.Join(r.includeRoot, rel)
		content, found := cache[path]
		if !found {
			data, err := os.ReadFile(path)
			switch {
			case err == nil:
				content = string(data)
				cache[path] = content
			case errors.Is(err, os.ErrNotExist):
				r.logger.Warn().Str("path", path).Msgf("Include not found: %s", path)
				if _, seen := missing[path]; !seen {
					missing[path] = struct{}{}
					result.MissingIncludes = append(result.MissingIncludes, path)
				}
				m, err := io.WriteString(w, DirectiveStart+tag+DirectiveEnd)
				return n + m, err
			default:
				return n, fmt.Errorf("read include %s: %w", path, err)
			}
		}

		m, err := io.WriteString(w, content)
		return n + m, err
	})
}

// parseInclude recognises `include '<path>'` with optional surrounding
// whitespace.
func parseInclude(tag string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(tag), "include")
	if !ok {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	if len(rest) < 3 || rest[0] != '\'' || rest[len(rest)-1] != '\'' {
		return "", false
	}
	path := rest[1 : len(rest)-1]
	if strings.Contains(path, "'") {
		return "", false
	}
	return path, true
}

// splitNestedStart handles a tag that itself contains the start delimiter,
// as in "{% a {% include 'x' %}". The token begins at the last start
// delimiter; everything before it is returned as verbatim prefix.
func splitNestedStart(tag, start string) (string, string) {
	idx := strings.LastIndex(tag, start)
	if idx < 0 {
		return "", tag
	}
	return start + tag[:idx], tag[idx+len(start):]
}
