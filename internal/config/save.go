package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Marshal encodes the worksheet in the given format ("yaml", "json" or "toml").
func (conf *Configuration) Marshal(format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal(conf)
	case "json":
		return json.MarshalIndent(conf, "", "  ")
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported worksheet format %q", format)
	}
}

// Save writes the worksheet to path in the format implied by its extension.
// Files that LoadConfiguration would read as YAML are written as YAML.
func (conf *Configuration) Save(path string) error {
	data, err := conf.Marshal(configType(path))
	if err != nil {
		return fmt.Errorf("failed to encode worksheet: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write worksheet %s: %w", path, err)
	}
	return nil
}
