// Package config loads and validates krlstyle configuration.
//
// Sources are layered: built-in defaults, then the first config file
// found (explicit path, project file, user config dir), then KRLSTYLE_*
// environment variables on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/krlwerk/krlstyle/internal/reporter"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "KRLSTYLE_"

// FileNames are the config file names looked for during discovery, in
// order of preference.
var FileNames = []string{".krlstyle.toml", "krlstyle.toml"}

// Config holds every option of the linter.
type Config struct {
	// IndentChar is the single whitespace character used for indentation.
	IndentChar string `koanf:"indent-char" toml:"indent-char"`

	// IndentSize is the number of indent characters per nesting level.
	IndentSize int `koanf:"indent-size" toml:"indent-size"`

	// Disable lists issue codes that are never reported.
	Disable []string `koanf:"disable" toml:"disable"`

	// Reporter selects the output format ("text" or "colorized").
	Reporter string `koanf:"reporter" toml:"reporter"`

	// ConfigFile is the path the config was loaded from, if any.
	ConfigFile string `koanf:"-" toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		IndentChar: " ",
		IndentSize: 3,
		Disable:    []string{},
		Reporter:   reporter.TextReporterName,
	}
}

// Load resolves and loads the configuration. When configPath is empty,
// discovery looks for a project file in the working directory and then
// the user config directory; no file found means defaults. A non-empty
// configPath that does not exist is an error.
func Load(configPath string) (*Config, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
	} else {
		configPath = Discover()
	}
	return loadWithConfigPath(configPath)
}

// Discover returns the first existing config file from the search
// path, or "" when none exists.
func Discover() string {
	for _, name := range FileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "krlstyle", "krlstyle.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func loadWithConfigPath(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, err
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKeyTransform,
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.ConfigFile = configPath
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKeyTransform converts environment variable names to config keys.
// KRLSTYLE_INDENT_SIZE -> indent-size. List values are comma separated.
func envKeyTransform(k, v string) (string, any) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, EnvPrefix)), "_", "-")
	if key == "disable" {
		var codes []string
		for _, code := range strings.Split(v, ",") {
			if code = strings.TrimSpace(code); code != "" {
				codes = append(codes, code)
			}
		}
		return key, codes
	}
	return key, v
}

// Validate checks the option values.
func (c *Config) Validate() error {
	if c.IndentSize < 1 {
		return fmt.Errorf("indent-size must be positive, got %d", c.IndentSize)
	}
	if c.IndentChar != " " && c.IndentChar != "\t" {
		return fmt.Errorf("indent-char must be a single space or tab character")
	}

	known := false
	for _, name := range reporter.Names {
		if c.Reporter == name {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown reporter %q (known: %s)",
			c.Reporter, strings.Join(reporter.Names, ", "))
	}
	return nil
}

// Disabled returns the disable list as a set.
func (c *Config) Disabled() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Disable))
	for _, code := range c.Disable {
		set[code] = struct{}{}
	}
	return set
}

// WriteDefault writes the default configuration as TOML to path. The
// destination must not exist.
func WriteDefault(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	if err := gotoml.NewEncoder(f).Encode(Default()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
