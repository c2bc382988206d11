package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr              string `json:"addr" yaml:"addr" toml:"addr"`
	DBPath            string `json:"db_path" yaml:"db_path" toml:"db_path"`
	UploadsDir        string `json:"uploads_dir" yaml:"uploads_dir" toml:"uploads_dir"`
	OllamaHost        string `json:"ollama_host" yaml:"ollama_host" toml:"ollama_host"`
	VisionModel       string `json:"vision_model" yaml:"vision_model" toml:"vision_model"`
	TranslateEndpoint string `json:"translate_endpoint" yaml:"translate_endpoint" toml:"translate_endpoint"`
	MaxUploadMB       int    `json:"max_upload_mb" yaml:"max_upload_mb" toml:"max_upload_mb"`
	RequestTimeoutS   int    `json:"request_timeout_s" yaml:"request_timeout_s" toml:"request_timeout_s"`
	CORSDisabled      bool   `json:"cors_disabled" yaml:"cors_disabled" toml:"cors_disabled"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
