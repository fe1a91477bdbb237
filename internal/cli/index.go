package cli

import (
	"fmt"

	"github.com/djahlor/prompt-library/internal/index"
	"github.com/djahlor/prompt-library/internal/prompt"
	"github.com/spf13/cobra"
)

var indexOutput string

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringVarP(&indexOutput, "output", "o", "", "index file to write (default: configured index_path)")
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Generate the JSON index of prompts and fragments",
	Long: `Collect every prompt and fragment in the library, with the unique tags and
categories they use, into a single JSON file for the web browser UI.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		output := cfg.IndexPath
		if indexOutput != "" {
			output = indexOutput
		}

		progress := startProgress(cmd.ErrOrStderr(), "Generating prompt index")
		idx, err := index.Build(index.Options{
			Root:         cfg.Root,
			PromptsDir:   cfg.PromptsDir,
			FragmentsDir: cfg.FragmentsDir,
		})
		if err == nil {
			err = index.Write(output, idx)
		}
		if err != nil {
			progress.Fail(err)
			return err
		}
		progress.Done()

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, map[string]any{
				"output":     output,
				"prompts":    len(idx.Prompts),
				"fragments":  len(idx.Fragments),
				"tags":       len(idx.Tags),
				"categories": len(idx.Categories),
			})
		}

		fmt.Fprintf(out, "  Found %d prompts\n", len(idx.Prompts))
		fmt.Fprintf(out, "  Found %d fragments\n", len(idx.Fragments))
		fmt.Fprintf(out, "  Index written to %s\n", prompt.RelPath(cfg.Root, output))
		return nil
	},
}
