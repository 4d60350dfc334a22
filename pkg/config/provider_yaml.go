package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLProvider implements ConfigProvider for YAML configuration files.
// A missing file is not an error: defaults and environment overrides
// still apply.
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from the YAML file, then
// applies SUNDIAL_* environment overrides and defaults
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	if y.config != nil {
		return y.config, nil
	}

	cfg := &ConfigData{}
	if y.filename != "" {
		data, err := os.ReadFile(y.filename)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", y.filename, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	y.config = cfg
	return cfg, nil
}

// GetRESTServer returns the HTTP API configuration
func (y *YAMLProvider) GetRESTServer() (*RESTServerData, error) {
	cfg, err := y.LoadConfig()
	if err != nil {
		return nil, err
	}
	return &cfg.REST, nil
}

// GetRender returns the rendering configuration
func (y *YAMLProvider) GetRender() (*RenderData, error) {
	cfg, err := y.LoadConfig()
	if err != nil {
		return nil, err
	}
	return &cfg.Render, nil
}

// IsReadOnly returns true; YAML files are never written back
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML files
func (y *YAMLProvider) Close() error {
	return nil
}

func applyEnvOverrides(cfg *ConfigData) error {
	if v := os.Getenv("SUNDIAL_LISTEN_ADDR"); v != "" {
		cfg.REST.ListenAddr = v
	}
	if v := os.Getenv("SUNDIAL_HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SUNDIAL_HTTP_PORT: %w", err)
		}
		cfg.REST.Port = port
	}
	if v := os.Getenv("SUNDIAL_RENDER_RADIUS"); v != "" {
		radius, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("SUNDIAL_RENDER_RADIUS: %w", err)
		}
		cfg.Render.Radius = radius
	}
	if v := os.Getenv("SUNDIAL_OUTPUT_DIR"); v != "" {
		cfg.Render.OutputDir = v
	}
	if v := strings.TrimSpace(os.Getenv("SUNDIAL_UTC_OFFSET")); v != "" {
		off, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("SUNDIAL_UTC_OFFSET: %w", err)
		}
		cfg.Timezone.UTCOffset = &off
	}
	return nil
}
