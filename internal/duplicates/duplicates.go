// Package duplicates finds prompt files whose bodies are identical.
package duplicates

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/djahlor/prompt-library/internal/frontmatter"
	"github.com/djahlor/prompt-library/internal/logging"
	"github.com/djahlor/prompt-library/internal/prompt"
	"github.com/rs/zerolog"
)

// Group is a set of files sharing one body fingerprint.
type Group struct {
	Fingerprint string   `json:"fingerprint"`
	Paths       []string `json:"paths"`
}

// Report is the result of a duplicate scan.
type Report struct {
	// Scanned is the number of prompt files examined.
	Scanned int `json:"scanned"`

	// Groups holds every fingerprint shared by two or more files, in the
	// order the fingerprint was first seen.
	Groups []Group `json:"groups"`

	// Errors are per-file diagnostics; affected files are skipped.
	Errors []string `json:"errors,omitempty"`
}

// HasDuplicates reports whether any duplicate set was found.
func (r *Report) HasDuplicates() bool {
	return len(r.Groups) > 0
}

// Detector scans a prompts directory for duplicate bodies.
type Detector struct {
	logger zerolog.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithLogger sets the logger used for per-file warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Detector) { d.logger = logger }
}

// NewDetector creates a Detector.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{logger: logging.Component("duplicates")}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Fingerprint hashes a document body with its frontmatter removed and
// surrounding whitespace trimmed.
func Fingerprint(content string) string {
	_, body, _ := frontmatter.Extract(content)
	sum := xxhash.Sum64String(strings.TrimSpace(body))
	return strconv.FormatUint(sum, 16)
}

// Scan fingerprints every prompt file under dir. Unreadable files are
// recorded in Report.Errors and do not stop the scan; only a failure to walk
// dir itself is returned as an error.
func (d *Detector) Scan(dir string) (*Report, error) {
	paths, err := prompt.Discover(dir, prompt.Extension)
	if err != nil {
		return nil, err
	}

	report := &Report{Groups: []Group{}}
	byHash := make(map[string][]string)
	order := make([]string, 0)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			d.logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable prompt")
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", path, err))
			continue
		}
		report.Scanned++

		hash := Fingerprint(string(data))
		if _, exists := byHash[hash]; !exists {
			order = append(order, hash)
		}
		byHash[hash] = append(byHash[hash], path)
	}

	for _, hash := range order {
		group := byHash[hash]
		if len(group) < 2 {
			continue
		}
		sort.Strings(group)
		report.Groups = append(report.Groups, Group{Fingerprint: hash, Paths: group})
	}

	d.logger.Debug().
		Int("scanned", report.Scanned).
		Int("groups", len(report.Groups)).
		Msg("duplicate scan complete")
	return report, nil
}
