// Package config loads dotup configuration.
//
// Configuration is layered: embedded defaults, then dotup.toml or
// dotup.yaml from the dotfiles root, then DOTUP_* environment variables.
// Later layers win.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	tomlv2 "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dotup/pkg/errors"
)

//go:embed defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix for configuration environment variables
const EnvPrefix = "DOTUP_"

// Config controls which steps run and what the packages step installs
type Config struct {
	Steps    map[string]bool `koanf:"steps" toml:"steps"`
	Packages Packages        `koanf:"packages" toml:"packages"`
}

// Packages configures the package-install step
type Packages struct {
	Brew []string `koanf:"brew" toml:"brew"`
}

// StepEnabled reports whether a step is enabled. Steps absent from the
// configuration default to enabled.
func (c *Config) StepEnabled(name string) bool {
	if enabled, ok := c.Steps[name]; ok {
		return enabled
	}
	return true
}

// Load builds the configuration for the given dotfiles root
func Load(dotfilesRoot string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// First matching config file wins; TOML is the primary format.
	candidates := []struct {
		name   string
		parser koanf.Parser
	}{
		{"dotup.toml", toml.Parser()},
		{"dotup.yaml", yaml.Parser()},
		{"dotup.yml", yaml.Parser()},
	}
	for _, candidate := range candidates {
		path := filepath.Join(dotfilesRoot, candidate.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), candidate.parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
		}
		break
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envToKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	return &cfg, nil
}

// Default returns the embedded default configuration
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal default config")
	}
	return &cfg, nil
}

// DefaultTOML renders the default configuration as TOML, for gen-config
func DefaultTOML() ([]byte, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	out, err := tomlv2.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal default config")
	}
	return out, nil
}

// envToKey maps DOTUP_STEPS_VSCODE to steps.vscode
func envToKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}
