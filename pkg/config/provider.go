package config

import (
	"fmt"
	"math"
	"time"
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetRESTServer() (*RESTServerData, error)
	GetRender() (*RenderData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	REST     RESTServerData `yaml:"rest" json:"rest"`
	Render   RenderData     `yaml:"render" json:"render"`
	Timezone TimezoneData   `yaml:"timezone" json:"timezone"`
}

// RESTServerData configures the HTTP API
type RESTServerData struct {
	ListenAddr   string        `yaml:"listen_addr" json:"listen_addr,omitempty"`
	Port         int           `yaml:"port" json:"port,omitempty"`
	Cert         string        `yaml:"cert" json:"cert,omitempty"`
	Key          string        `yaml:"key" json:"key,omitempty"`
	ReadTimeout  time.Duration `yaml:"read_timeout" json:"read_timeout,omitempty"`
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout,omitempty"`
}

// Addr is the host:port the server listens on
func (r RESTServerData) Addr() string {
	return fmt.Sprintf("%s:%d", r.ListenAddr, r.Port)
}

// RenderData controls dial images and report files
type RenderData struct {
	Radius    float64 `yaml:"radius" json:"radius,omitempty"`
	Margin    float64 `yaml:"margin" json:"margin,omitempty"`
	OutputDir string  `yaml:"output_dir" json:"output_dir,omitempty"`
	ImageFile string  `yaml:"image_file" json:"image_file,omitempty"`
	InfoFile  string  `yaml:"info_file" json:"info_file,omitempty"`
}

// TimezoneData lets a deployment pin the UTC offset instead of looking it up
// from coordinates.
type TimezoneData struct {
	UTCOffset *float64 `yaml:"utc_offset" json:"utc_offset,omitempty"`
}

// Defaults
const (
	DefaultListenAddr   = "0.0.0.0"
	DefaultPort         = 8080
	DefaultRadius       = 250.0
	DefaultMargin       = 80.0
	DefaultImageFile    = "sundial_template.png"
	DefaultInfoFile     = "info.txt"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second
)

// DefaultConfig returns a configuration with every default filled in
func DefaultConfig() *ConfigData {
	cfg := &ConfigData{}
	cfg.applyDefaults()
	return cfg
}

func (c *ConfigData) applyDefaults() {
	if c.REST.ListenAddr == "" {
		c.REST.ListenAddr = DefaultListenAddr
	}
	if c.REST.Port == 0 {
		c.REST.Port = DefaultPort
	}
	if c.REST.ReadTimeout == 0 {
		c.REST.ReadTimeout = DefaultReadTimeout
	}
	if c.REST.WriteTimeout == 0 {
		c.REST.WriteTimeout = DefaultWriteTimeout
	}
	if c.Render.Radius == 0 {
		c.Render.Radius = DefaultRadius
	}
	if c.Render.Margin == 0 {
		c.Render.Margin = DefaultMargin
	}
	if c.Render.OutputDir == "" {
		c.Render.OutputDir = "."
	}
	if c.Render.ImageFile == "" {
		c.Render.ImageFile = DefaultImageFile
	}
	if c.Render.InfoFile == "" {
		c.Render.InfoFile = DefaultInfoFile
	}
}

// Validate checks values that would make the program misbehave
func (c *ConfigData) Validate() error {
	if c.REST.Port < 1 || c.REST.Port > 65535 {
		return fmt.Errorf("rest.port %d is not a valid TCP port", c.REST.Port)
	}
	if (c.REST.Cert == "") != (c.REST.Key == "") {
		return fmt.Errorf("rest.cert and rest.key must be set together")
	}
	if c.Render.Radius <= 0 {
		return fmt.Errorf("render.radius must be positive, got %v", c.Render.Radius)
	}
	if c.Render.Margin < 0 {
		return fmt.Errorf("render.margin must not be negative, got %v", c.Render.Margin)
	}
	if off := c.Timezone.UTCOffset; off != nil {
		if math.IsNaN(*off) || *off < -14 || *off > 14 {
			return fmt.Errorf("timezone.utc_offset %v is outside [-14, 14]", *off)
		}
	}
	return nil
}
