// Package cli implements the promptlib command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/djahlor/prompt-library/internal/config"
	"github.com/djahlor/prompt-library/internal/logging"
	"github.com/spf13/cobra"
)

var (
	rootDir    string
	configFile string
	logLevel   string
	logFormat  string
	jsonOutput bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "promptlib",
	Short: "Manage a library of prompty prompt templates",
	Long: `promptlib renders, validates and de-duplicates a library of .prompty files:
text templates with YAML frontmatter, {{placeholder}} tokens and
{% include 'fragments/...' %} directives.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.LoadOptions{
			ConfigFile: configFile,
			Root:       rootDir,
		})
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Logging.Format = logFormat
		}
		logging.InitTo(cmd.ErrOrStderr(), logging.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})

		appConfig = cfg
		logger := logging.Component("cli")
		logger.Debug().
			Str("root", cfg.Root).
			Str("prompts", cfg.PromptsDir).
			Msg("configuration loaded")
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootDir, "root", "", "prompt library root (default: current directory)")
	flags.StringVar(&configFile, "config", "", "config file (default: <root>/.promptlib.yaml)")
	flags.StringVar(&logLevel, "log-level", "warn", "diagnostic log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "console", "diagnostic log format: console or json")
	flags.BoolVar(&jsonOutput, "json", false, "write machine-readable JSON output")
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(stderr, exitErr.Message)
		}
		return exitErr.Code
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

// GetConfig returns the configuration loaded for the running command.
func GetConfig() *config.Config {
	return appConfig
}

// IsJSONOutput reports whether --json was requested.
func IsJSONOutput() bool {
	return jsonOutput
}
