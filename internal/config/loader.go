package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the encoding from the file extension. Anything other
// than .toml is read as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// ParseFormat accepts "yaml", "yml" or "toml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unknown config format %q (want yaml or toml)", s)
}

// Path returns the default config file location, ~/.config/gopanel/config.yaml.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gopanel", "config.yaml")
}

// Load loads configuration from the default path, falling back to defaults
// when the file is missing or unreadable.
func Load() Config {
	cfg := DefaultConfig()

	path := Path()
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)
	return cfg
}

// LoadFile loads configuration from path on top of the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := decode(data, FormatOf(path), &cfg); err != nil {
		return DefaultConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte, f Format, cfg *Config) error {
	if f == FormatTOML {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing config TOML: %w", err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config YAML: %w", err)
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return MarshalFormat(cfg, FormatYAML)
}

// MarshalFormat renders cfg in the given encoding.
func MarshalFormat(cfg Config, f Format) ([]byte, error) {
	if f != FormatTOML {
		return yaml.Marshal(cfg)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config TOML: %w", err)
	}
	return buf.Bytes(), nil
}
