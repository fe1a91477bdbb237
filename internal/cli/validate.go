package cli

import (
	"fmt"

	"github.com/djahlor/prompt-library/internal/validate"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate prompt frontmatter",
	Long: `Check every .prompty file under the prompts directory for the required
name, description and version fields, an X.Y.Z version and a lowercase
hyphenated name. All problems are collected and printed; exits 1 if any were
found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		report, err := validate.New().ValidateDir(cfg.PromptsDir, cfg.SchemaPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			if err := WriteOutput(out, report); err != nil {
				return err
			}
		} else if report.OK() {
			fmt.Fprintln(out, formatOK(fmt.Sprintf("All %d prompts validated successfully", report.Checked)))
		} else {
			fmt.Fprintln(out, formatFailure("Validation errors found:"))
			for _, issue := range report.Issues {
				fmt.Fprintf(out, "  - %s\n", issue)
			}
		}

		if !report.OK() {
			return &ExitError{Code: 1}
		}
		return nil
	},
}
