// Package frontmatter splits prompty documents into a YAML header and a body.
//
// Splitting runs in two phases. Extract finds the header lines and never
// fails; Parse decodes the header and reports malformed YAML. Keeping them
// apart lets callers that only need the body (duplicate detection) ignore
// header problems that validation must report.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter is the marker line that opens and closes a frontmatter block.
const Delimiter = "---"

// ErrMalformed reports a header that is present but is not a YAML mapping.
var ErrMalformed = errors.New("malformed frontmatter")

// Document is a split prompty file.
type Document struct {
	// Frontmatter is the decoded header. Never nil.
	Frontmatter map[string]any

	// Body is the template text following the header.
	Body string

	// HasFrontmatter reports whether a delimited header block was found.
	HasFrontmatter bool
}

// Extract locates a leading frontmatter block. The first line must be exactly
// the delimiter and the block ends at a later line that is exactly the
// delimiter; a trailing carriage return is tolerated on both. The line right
// after the opening marker always belongs to the header, so "---\n---\n"
// does not form a block. When no block exists ok is false and body is the
// input unchanged.
func Extract(content string) (header string, body string, ok bool) {
	first, rest, found := strings.Cut(content, "\n")
	if !found || !isDelimiter(first) {
		return "", content, false
	}

	end := strings.IndexByte(rest, '\n')
	if end < 0 {
		return "", content, false
	}
	offset := end + 1
	for offset <= len(rest) {
		line := rest[offset:]
		end := strings.IndexByte(line, '\n')
		next := len(rest) + 1
		if end >= 0 {
			line = line[:end]
			next = offset + end + 1
		}

		if isDelimiter(line) {
			header = strings.TrimSuffix(rest[:offset], "\n")
			header = strings.TrimSuffix(header, "\r")
			if next > len(rest) {
				return header, "", true
			}
			return header, rest[next:], true
		}

		if end < 0 {
			break
		}
		offset = next
	}

	return "", content, false
}

// Parse splits content and decodes its header. Documents without a header
// yield an empty mapping and the full content as body. A header that fails to
// decode returns an error wrapping ErrMalformed.
func Parse(content string) (*Document, error) {
	header, body, ok := Extract(content)
	doc := &Document{
		Frontmatter:    map[string]any{},
		Body:           body,
		HasFrontmatter: ok,
	}
	if !ok {
		return doc, nil
	}

	fm, err := Decode(header)
	if err != nil {
		return nil, err
	}
	doc.Frontmatter = fm
	return doc, nil
}

// Decode parses a header as a YAML mapping. Empty or null headers decode to
// an empty mapping.
func Decode(header string) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal([]byte(header), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	switch v := raw.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: expected a mapping, got %T", ErrMalformed, raw)
	}
}

func isDelimiter(line string) bool {
	return strings.TrimSuffix(line, "\r") == Delimiter
}
