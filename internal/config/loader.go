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

// MQTT holds the optional frame-sink broker settings. An empty URL
// disables the sink.
type MQTT struct {
	URL      string `json:"url" yaml:"url" toml:"url"`
	Username string `json:"username" yaml:"username" toml:"username"`
	Password string `json:"password" yaml:"password" toml:"password"`
	Topic    string `json:"topic" yaml:"topic" toml:"topic"`
}

// Config holds runtime parameters for the daemon.
// Zero values mean "unspecified" and will be replaced by defaults in main.
// The policy booleans are pointers so an absent key keeps the default
// (both default to true) while an explicit false still turns them off.
type Config struct {
	Addr            string  `json:"addr" yaml:"addr" toml:"addr"`
	TargetFPS       float64 `json:"target_fps" yaml:"target_fps" toml:"target_fps"`
	IgnoreRateCap   bool    `json:"ignore_rate_cap" yaml:"ignore_rate_cap" toml:"ignore_rate_cap"`
	PauseOnHidden   *bool   `json:"pause_on_hidden" yaml:"pause_on_hidden" toml:"pause_on_hidden"`
	ResumeOnShown   *bool   `json:"resume_on_shown" yaml:"resume_on_shown" toml:"resume_on_shown"`
	FrameIntervalMS int     `json:"frame_interval_ms" yaml:"frame_interval_ms" toml:"frame_interval_ms"`
	Pixels          int     `json:"pixels" yaml:"pixels" toml:"pixels"`
	MQTT            MQTT    `json:"mqtt" yaml:"mqtt" toml:"mqtt"`
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
