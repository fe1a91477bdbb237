package cli

import (
	"fmt"
	"strings"

	"github.com/djahlor/prompt-library/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	listTags     []string
	listCategory string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringSliceVar(&listTags, "tag", nil, "only prompts with any of these tags")
	listCmd.Flags().StringVar(&listCategory, "category", "", "only prompts in this category")
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List prompts in the library",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		scan, err := prompt.ScanPromptsFromDir(cfg.PromptsDir)
		if err != nil {
			return err
		}
		for _, msg := range scan.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), formatWarning("Warning: "+msg))
		}
		prompts := filterPrompts(scan.Prompts, listTags)
		prompts = filterCategory(prompts, listCategory)

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			items := make([]map[string]any, 0, len(prompts))
			for _, p := range prompts {
				items = append(items, map[string]any{
					"id":          p.ID,
					"path":        prompt.RelPath(cfg.Root, p.Path),
					"version":     p.Meta.Version,
					"category":    p.Meta.Category,
					"description": p.Meta.Description,
					"tags":        p.Meta.Tags,
				})
			}
			return WriteOutput(out, items)
		}

		if len(prompts) == 0 {
			fmt.Fprintln(out, "No prompts found")
			return nil
		}

		rows := make([][]string, 0, len(prompts))
		for _, p := range prompts {
			rows = append(rows, []string{
				p.ID,
				valueOrDash(p.Meta.Version),
				valueOrDash(p.Meta.Category),
				prompt.RelPath(cfg.Root, p.Path),
			})
		}
		return writeTable(out, []string{"ID", "VERSION", "CATEGORY", "PATH"}, rows)
	},
}

// filterPrompts keeps prompts carrying any of tags. No tags keeps everything.
func filterPrompts(items []*prompt.Prompt, tags []string) []*prompt.Prompt {
	if len(tags) == 0 {
		return items
	}

	filtered := make([]*prompt.Prompt, 0, len(items))
	for _, item := range items {
		if hasAnyTag(item.Meta.Tags, tags) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func filterCategory(items []*prompt.Prompt, category string) []*prompt.Prompt {
	category = strings.TrimSpace(category)
	if category == "" {
		return items
	}

	filtered := make([]*prompt.Prompt, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(item.Meta.Category, category) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
