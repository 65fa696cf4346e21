// Package config loads and saves the .exportall.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the project directory.
const FileName = ".exportall.yaml"

// EnvPrefix prefixes environment overrides, e.g. EXPORTALL_MODE.
const EnvPrefix = "EXPORTALL"

// ErrConfigExists is returned by Save when the file is already there.
var ErrConfigExists = errors.New("config file already exists")

// Barrel describes one barrel file to generate.
type Barrel struct {
	Source string `mapstructure:"source" yaml:"source"`
	Target string `mapstructure:"target" yaml:"target,omitempty"`
	Mode   string `mapstructure:"mode" yaml:"mode,omitempty"`
}

// Config represents .exportall.yaml.
type Config struct {
	// Mode and Target are defaults for barrels that do not set their own.
	Mode   string `mapstructure:"mode" yaml:"mode"`
	Target string `mapstructure:"target" yaml:"target"`
	// Source declares a single barrel when Barrels is empty.
	Source  string   `mapstructure:"source" yaml:"source,omitempty"`
	Barrels []Barrel `mapstructure:"barrels" yaml:"barrels,omitempty"`
}

// LoadOptions tells Load where to look.
type LoadOptions struct {
	// Path is an explicit config file. It must exist when set.
	Path string
	// ProjectDir is searched for FileName when Path is empty.
	ProjectDir string
	// EnvFile is a dotenv file loaded before env overrides are read. A
	// missing file is ignored.
	EnvFile string
}

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{
		Mode:   "esm",
		Target: ".",
		Barrels: []Barrel{
			{Source: "./src"},
		},
	}
}

// Load reads the config file, if any, and applies EXPORTALL_* environment
// overrides on top of the built-in defaults.
func Load(opts LoadOptions) (*Config, error) {
	if opts.EnvFile != "" {
		if _, err := os.Stat(opts.EnvFile); err == nil {
			if err := godotenv.Load(opts.EnvFile); err != nil {
				return nil, fmt.Errorf("loading %s: %w", opts.EnvFile, err)
			}
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("mode", "esm")
	v.SetDefault("target", ".")
	v.SetDefault("source", "")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	configFile := opts.Path
	if configFile == "" {
		dir := opts.ProjectDir
		if dir == "" {
			dir = "."
		}

		// Without an explicit path the file is optional.
		configFile = filepath.Join(dir, FileName)
		if _, err := os.Stat(configFile); err != nil {
			configFile = ""
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Resolve returns the barrels to generate with defaults filled in. A
// top-level Source without Barrels yields a single barrel.
func (c *Config) Resolve() []Barrel {
	barrels := c.Barrels
	if len(barrels) == 0 && c.Source != "" {
		barrels = []Barrel{{Source: c.Source}}
	}

	out := make([]Barrel, 0, len(barrels))

	for _, b := range barrels {
		if b.Target == "" {
			b.Target = c.Target
		}

		if b.Mode == "" {
			b.Mode = c.Mode
		}

		out = append(out, b)
	}

	return out
}

// Save writes cfg as YAML to path. An existing file is only replaced when
// force is set.
func Save(path string, cfg *Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
