package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Output formats understood by the driver
const (
	FormatTokens     = "tokens"
	FormatTokensYAML = "tokens-yaml"
	FormatAST        = "ast"
	FormatSource     = "source"
	FormatYAML       = "yaml"
)

// DefaultFile is looked up in the working directory when no path is given
const DefaultFile = "lox.toml"

// Config holds the driver configuration
type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
	REPL   REPLConfig   `toml:"repl"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// OutputConfig controls what is printed for a scanned and parsed source
type OutputConfig struct {
	Format  string `toml:"format"`
	NoColor bool   `toml:"no_color"`
}

// REPLConfig holds interactive prompt settings
type REPLConfig struct {
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the config file at path. An empty path means LOX_CONFIG or
// ./lox.toml, and finding neither is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv("LOX_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultFile
	}
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return Default(), nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values that have a closed set of options
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatTokens, FormatTokensYAML, FormatAST, FormatSource, FormatYAML:
	default:
		return fmt.Errorf("invalid output format: %q", c.Output.Format)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Output.Format == "" {
		c.Output.Format = FormatAST
	}

	if c.REPL.Prompt == "" {
		c.REPL.Prompt = ">> "
	}
	if c.REPL.History == "" {
		c.REPL.History = filepath.Join(os.Getenv("HOME"), ".lox_history")
	}
}
