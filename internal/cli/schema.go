package cli

import (
	"fmt"

	"github.com/djahlor/prompt-library/internal/validate"
	"github.com/spf13/cobra"
)

var (
	schemaWrite bool
	schemaForce bool
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolVar(&schemaWrite, "write", false, "write the schema to the configured schema_path")
	schemaCmd.Flags().BoolVar(&schemaForce, "force", false, "overwrite an existing schema file")
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or install the bundled frontmatter schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if !schemaWrite {
			data, err := validate.BuiltinSchema()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}

		cfg := GetConfig()
		if err := validate.WriteBuiltinSchema(cfg.SchemaPath, schemaForce); err != nil {
			return err
		}
		fmt.Fprintf(out, "Schema written to %s\n", cfg.SchemaPath)
		return nil
	},
}
