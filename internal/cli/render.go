package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/djahlor/prompt-library/internal/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultWrapWidth = 100

var (
	renderVars      []string
	renderUseSample bool
	renderPretty    bool
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringArrayVarP(&renderVars, "var", "v", nil, "variable to substitute as KEY=VALUE (repeatable)")
	renderCmd.Flags().BoolVarP(&renderUseSample, "use-sample", "s", false, "use sample values from frontmatter")
	renderCmd.Flags().BoolVar(&renderPretty, "pretty", false, "render the result as terminal markdown")
}

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a prompty file with variables",
	Long: `Render a .prompty file: expand {% include '...' %} directives, then replace
{{key}} placeholders with the supplied variables. Unknown placeholders and
missing includes are left as written; missing includes are reported on stderr.`,
	Example: `  # Substitute two variables
  promptlib render prompts/review.prompty -v language=go -v focus=errors

  # Fill placeholders from the frontmatter sample block
  promptlib render prompts/review.prompty --use-sample`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]

		vars := make([]render.Var, 0, len(renderVars))
		for _, raw := range renderVars {
			v, err := render.ParseVar(raw)
			if err != nil {
				return err
			}
			vars = append(vars, v)
		}

		cfg := GetConfig()
		result, err := render.RenderFile(file, render.FileOptions{
			IncludeRoot: cfg.IncludeRootFor(file),
			Vars:        vars,
			UseSample:   renderUseSample,
		})
		if err != nil {
			if errors.Is(err, render.ErrFileNotFound) {
				return &ExitError{Code: 1, Message: fmt.Sprintf("Error: File not found: %s", file)}
			}
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, map[string]any{
				"file":             file,
				"text":             result.Text,
				"missing_includes": result.MissingIncludes,
			})
		}

		text := result.Text
		if renderPretty {
			text, err = renderMarkdown(text)
			if err != nil {
				return err
			}
			text = strings.TrimRight(text, "\n")
		}

		fmt.Fprintln(out, text)
		return nil
	},
}

func renderMarkdown(text string) (string, error) {
	width := defaultWrapWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	style := glamour.WithStandardStyle("notty")
	if colorEnabled() {
		style = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return rendered, nil
}
