package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
)

// FileName is the optional tool-config file looked up in the working
// directory.
const FileName = "quickapp.yaml"

// Config holds all tool configuration. Precedence: defaults, then the
// optional quickapp.yaml, then environment variables.
type Config struct {
	SDK     SDKConfig   `yaml:"sdk"`
	Tools   ToolsConfig `yaml:"tools"`
	Logging LogConfig   `yaml:"logging"`
}

// SDKConfig locates the platform SDK. Root is intentionally defaultless:
// its absence surfaces as an external-tool error at first use, not upfront.
type SDKConfig struct {
	Root string `envconfig:"ANDROID_HOME" yaml:"root"`
}

// ToolsConfig names the external build tool and device bridge executables.
type ToolsConfig struct {
	Gradle string `envconfig:"QUICKAPP_GRADLE" yaml:"gradle"`
	ADB    string `envconfig:"QUICKAPP_ADB" yaml:"adb"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" yaml:"level"`
	Development bool   `envconfig:"LOG_DEV" yaml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Tools: ToolsConfig{
			Gradle: "gradle",
			ADB:    "adb",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}

// Load builds the effective configuration: defaults, overlaid with
// quickapp.yaml when present, overlaid with set environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(FileName); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", FileName, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	// envconfig fields carry no defaults, so unset variables leave the
	// file or built-in values in place.
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads configuration or falls back to the defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}
