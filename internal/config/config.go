package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents a batch review run configuration.
type Config struct {
	// Components lists the component names to review. For a component
	// "button" the data directory must hold figma_button.json and
	// pr_button.jsx.
	Components []string `yaml:"components"`
	DataDir    string   `yaml:"dataDir"`
	OutputDir  string   `yaml:"outputDir"`
	// Tokens is a file path or an http(s) URL to the token dictionary.
	Tokens string `yaml:"tokens"`
	// MinSeverity filters CLI output; issues below it are not printed.
	MinSeverity string `yaml:"minSeverity"`
}

// DefaultComponents is the review set used when no config file is given.
var DefaultComponents = []string{"dropdown", "button", "avatar", "header", "checkbox"}

// LoadConfig loads configuration from a YAML file. An empty path yields the
// defaults; missing fields are filled with defaults after parsing.
func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if len(config.Components) == 0 {
		config.Components = DefaultComponents
	}
	if config.DataDir == "" {
		config.DataDir = "./data"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.Tokens == "" {
		config.Tokens = "./data/token.json"
	}

	return config, nil
}
