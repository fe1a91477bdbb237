package cli

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// WriteOutput writes value as indented JSON.
func WriteOutput(out io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
