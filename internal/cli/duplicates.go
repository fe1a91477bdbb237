package cli

import (
	"fmt"
	"strings"

	"github.com/djahlor/prompt-library/internal/duplicates"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(duplicatesCmd)
}

var duplicatesCmd = &cobra.Command{
	Use:     "duplicates",
	Aliases: []string{"check-duplicates", "dupes"},
	Short:   "Report prompts with identical bodies",
	Long: `Fingerprint the body of every .prompty file under the prompts directory,
ignoring frontmatter and surrounding whitespace, and report files that share
a fingerprint. Exits 1 when any duplicate set is found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		report, err := duplicates.NewDetector().Scan(cfg.PromptsDir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			if err := WriteOutput(out, report); err != nil {
				return err
			}
		} else {
			for _, msg := range report.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), formatWarning("Warning: "+msg))
			}
			if report.HasDuplicates() {
				fmt.Fprintln(out, formatFailure("Duplicate prompts found:"))
				for _, group := range report.Groups {
					fmt.Fprintf(out, "  - %s\n", strings.Join(group.Paths, ", "))
				}
			} else {
				fmt.Fprintln(out, formatOK("No duplicate prompts found"))
			}
		}

		if report.HasDuplicates() {
			return &ExitError{Code: 1}
		}
		return nil
	},
}
