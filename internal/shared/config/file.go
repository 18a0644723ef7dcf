package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the optional TOML configuration file named by CONFIG_FILE.
type fileConfig struct {
	Port             string   `toml:"port"`
	Env              string   `toml:"env"`
	DatabaseURL      string   `toml:"database_url"`
	CORSAllowOrigins []string `toml:"cors_allow_origins"`
	MaxUploadSize    string   `toml:"max_upload_size"`
	LLM              struct {
		Provider    string `toml:"provider"`
		Model       string `toml:"model"`
		VisionModel string `toml:"vision_model"`
	} `toml:"llm"`
	PDF struct {
		Extraction string `toml:"extraction"`
		RenderDPI  int    `toml:"render_dpi"`
	} `toml:"pdf"`
	RateLimit struct {
		AIPerMinute int `toml:"ai_per_minute"`
	} `toml:"rate_limit"`
}

// loadFile parses the TOML file at path. An empty path yields a zero config.
func loadFile(path string) (fileConfig, error) {
	var cfg fileConfig
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
