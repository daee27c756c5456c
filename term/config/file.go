package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"ghostterm.arpa/term/tui"
)

// FileConfig represents the entire configuration file structure
type FileConfig struct {
	// Read once at startup through the env flag.
	Env      string         `json:"env" yaml:"env" toml:"env"`
	LogLevel *string        `json:"log_level" yaml:"log_level" toml:"log_level"`
	Terminal tui.FileConfig `json:"terminal" yaml:"terminal" toml:"terminal"`
}

// ReadConfig reads and parses a config file into the provided struct
func ReadConfig(filePath string, v any) error {
	ext := filepath.Ext(filePath)

	content, err := os.ReadFile(filePath) // #nosec G304 -- filePath is controlled by configuration
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	switch ext {
	case ".json":
		if err := json.Unmarshal(content, v); err != nil {
			return fmt.Errorf("unmarshal json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, v); err != nil {
			return fmt.Errorf("unmarshal yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(content, v); err != nil {
			return fmt.Errorf("unmarshal toml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", ext)
	}

	return nil
}
