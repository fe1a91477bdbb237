package validate

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed builtin/prompt.schema.json
var builtinFS embed.FS

// BuiltinSchema returns the bundled prompt frontmatter schema.
func BuiltinSchema() ([]byte, error) {
	data, err := builtinFS.ReadFile("builtin/prompt.schema.json")
	if err != nil {
		return nil, fmt.Errorf("read builtin schema: %w", err)
	}
	return data, nil
}

// WriteBuiltinSchema writes the bundled schema to path. An existing file is
// only replaced when force is set.
func WriteBuiltinSchema(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("schema already exists at %s (use --force to overwrite)", path)
		}
	}

	data, err := BuiltinSchema()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create schema dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write schema %s: %w", path, err)
	}
	return nil
}
