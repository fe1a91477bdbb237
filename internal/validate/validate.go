// Package validate checks prompt frontmatter against the library's required
// fields and format rules.
package validate

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/djahlor/prompt-library/internal/frontmatter"
	"github.com/djahlor/prompt-library/internal/logging"
	"github.com/djahlor/prompt-library/internal/prompt"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// RequiredFields must be present in every prompt header.
var RequiredFields = []string{"name", "description", "version"}

var (
	versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	namePattern    = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Issue messages.
const (
	MsgMissingFrontmatter = "Missing or invalid YAML frontmatter"
	MsgInvalidVersion     = "Invalid version format (expected X.Y.Z)"
	MsgInvalidName        = "Invalid name format (use lowercase, numbers, hyphens)"
)

// Issue is a single validation diagnostic.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// String formats the issue as "<path>: <message>".
func (i Issue) String() string {
	return i.Path + ": " + i.Message
}

// Report is the result of validating a directory.
type Report struct {
	// Checked is the number of prompt files examined.
	Checked int `json:"checked"`

	// Issues are collected in file order.
	Issues []Issue `json:"issues"`

	// SchemaLoaded reports whether the schema file was found.
	SchemaLoaded bool `json:"schema_loaded"`
}

// OK reports whether no issues were found.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

// Validator validates prompt files.
type Validator struct {
	schema map[string]any
	logger zerolog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(v *Validator) { v.logger = logger }
}

// WithSchema sets an already loaded schema.
func WithSchema(schema map[string]any) Option {
	return func(v *Validator) { v.schema = schema }
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{logger: logging.Component("validate")}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// LoadSchema reads a JSON schema file. A missing file logs a warning and
// returns a nil schema; an unreadable or invalid file is an error.
func (v *Validator) LoadSchema(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			v.logger.Warn().Str("path", path).Msgf("Schema not found at %s", path)
			return nil, nil
		}
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}

	var schema map[string]any
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", path, err)
	}
	v.schema = schema

	title, _ := schema["title"].(string)
	v.logger.Debug().Str("path", path).Str("title", title).Msg("schema loaded")
	return schema, nil
}

// ValidateDir validates every prompt file under dir against the schema at
// schemaPath. Per-file problems are collected; only schema and directory
// access failures are returned as errors.
func (v *Validator) ValidateDir(dir, schemaPath string) (*Report, error) {
	report := &Report{Issues: []Issue{}}

	if schemaPath != "" {
		schema, err := v.LoadSchema(schemaPath)
		if err != nil {
			return nil, err
		}
		report.SchemaLoaded = schema != nil
	}

	paths, err := prompt.Discover(dir, prompt.Extension)
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		report.Checked++
		report.Issues = append(report.Issues, v.ValidateFile(path)...)
	}
	return report, nil
}

// ValidateFile validates a single prompt file. Read failures are reported as
// an issue.
func (v *Validator) ValidateFile(path string) []Issue {
	data, err := os.ReadFile(path)
	if err != nil {
		v.logger.Warn().Err(err).Str("path", path).Msg("unreadable prompt")
		return []Issue{{Path: path, Message: fmt.Sprintf("Cannot read file: %v", err)}}
	}
	return v.ValidateContent(path, string(data))
}

// ValidateContent validates the frontmatter of content. A header that is
// absent, malformed or empty yields a single issue and no field checks.
func (v *Validator) ValidateContent(path, content string) []Issue {
	header, _, ok := frontmatter.Extract(content)
	if !ok {
		return []Issue{{Path: path, Message: MsgMissingFrontmatter}}
	}

	fm, err := frontmatter.Decode(header)
	if err != nil || len(fm) == 0 {
		if err != nil {
			v.logger.Debug().Err(err).Str("path", path).Msg("frontmatter decode failed")
		}
		return []Issue{{Path: path, Message: MsgMissingFrontmatter}}
	}

	return checkFields(path, fm)
}

func checkFields(path string, fm map[string]any) []Issue {
	var issues []Issue

	for _, field := range RequiredFields {
		if _, ok := fm[field]; !ok {
			issues = append(issues, Issue{
				Path:    path,
				Message: fmt.Sprintf("Missing required field '%s'", field),
			})
		}
	}

	if value, ok := fm["version"]; ok && !matches(versionPattern, value) {
		issues = append(issues, Issue{Path: path, Message: MsgInvalidVersion})
	}

	if value, ok := fm["name"]; ok && !matches(namePattern, value) {
		issues = append(issues, Issue{Path: path, Message: MsgInvalidName})
	}

	return issues
}

// matches reports whether value is a string matching pattern. Numbers and
// other non-string values never match.
func matches(pattern *regexp.Regexp, value any) bool {
	text, ok := value.(string)
	return ok && pattern.MatchString(text)
}
