// Package config loads promptlib configuration.
//
// Every path the tools touch is an explicit setting with a documented default.
// Relative paths are resolved against Root, which itself defaults to the
// current working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. PROMPTLIB_PROMPTS_DIR.
const EnvPrefix = "PROMPTLIB"

// Config is the resolved tool configuration.
type Config struct {
	// Root is the prompt library root.
	// Default: ".".
	Root string `mapstructure:"root"`

	// PromptsDir holds the *.prompty files.
	// Default: "prompts".
	PromptsDir string `mapstructure:"prompts_dir"`

	// FragmentsDir holds reusable *.md fragments.
	// Default: "fragments".
	FragmentsDir string `mapstructure:"fragments_dir"`

	// IncludeRoot is the directory include directives are resolved against.
	// Default: empty, meaning the grandparent directory of the rendered file,
	// so that prompts/foo.prompty resolves 'fragments/x.md' next to prompts/.
	IncludeRoot string `mapstructure:"include_root"`

	// SchemaPath is the frontmatter JSON schema.
	// Default: "schemas/prompt.schema.json".
	SchemaPath string `mapstructure:"schema_path"`

	// IndexPath is where the JSON index is written.
	// Default: "web/src/data/index.json".
	IndexPath string `mapstructure:"index_path"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadOptions selects where configuration comes from.
type LoadOptions struct {
	// ConfigFile is an explicit config file. When empty the search paths
	// are tried and a missing file is not an error.
	ConfigFile string

	// Root overrides the configured library root when non-empty.
	Root string

	// EnvFile is loaded into the process environment before reading
	// overrides. Default: ".env". A missing file is ignored.
	EnvFile string
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Root:         ".",
		PromptsDir:   "prompts",
		FragmentsDir: "fragments",
		SchemaPath:   filepath.Join("schemas", "prompt.schema.json"),
		IndexPath:    filepath.Join("web", "src", "data", "index.json"),
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads defaults, an optional config file and PROMPTLIB_* environment
// variables, in increasing precedence, and resolves relative paths.
func Load(opts LoadOptions) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := opts.ConfigFile
	if configFile == "" {
		root := opts.Root
		if root == "" {
			root = v.GetString("root")
		}
		configFile = findConfigFile(SearchPaths(root))
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if opts.Root != "" {
		cfg.Root = opts.Root
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.resolve()
	return &cfg, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return errors.New("root is required")
	}
	if strings.TrimSpace(c.PromptsDir) == "" {
		return errors.New("prompts_dir is required")
	}
	if strings.TrimSpace(c.FragmentsDir) == "" {
		return errors.New("fragments_dir is required")
	}
	return nil
}

// IncludeRootFor returns the include root used when rendering file.
func (c *Config) IncludeRootFor(file string) string {
	if c.IncludeRoot != "" {
		return c.IncludeRoot
	}
	return filepath.Dir(filepath.Dir(file))
}

func (c *Config) resolve() {
	c.PromptsDir = c.join(c.PromptsDir)
	c.FragmentsDir = c.join(c.FragmentsDir)
	c.SchemaPath = c.join(c.SchemaPath)
	c.IndexPath = c.join(c.IndexPath)
	if c.IncludeRoot != "" {
		c.IncludeRoot = c.join(c.IncludeRoot)
	}
}

func (c *Config) join(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Root, path)
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("root", cfg.Root)
	v.SetDefault("prompts_dir", cfg.PromptsDir)
	v.SetDefault("fragments_dir", cfg.FragmentsDir)
	v.SetDefault("include_root", cfg.IncludeRoot)
	v.SetDefault("schema_path", cfg.SchemaPath)
	v.SetDefault("index_path", cfg.IndexPath)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
}
