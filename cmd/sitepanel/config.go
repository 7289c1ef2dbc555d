package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/flipr/sitepanel"
	"github.com/flipr/sitepanel/ui"
	"gopkg.in/yaml.v3"
)

// Config holds all server configuration.
// Values come from defaults, then the YAML file, then the environment, then flags.
type Config struct {
	Server ServerConfig `yaml:"server"`
	API    APIConfig    `yaml:"api"`
	UI     UIConfig     `yaml:"ui"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// APIConfig configures the REST collaborator.
type APIConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	LogRequests bool          `yaml:"log_requests"`
}

// UIConfig mirrors ui.Config for the file format.
type UIConfig struct {
	BasePath        string        `yaml:"base_path"`
	AdminPath       string        `yaml:"admin_path"`
	ReadOnly        bool          `yaml:"read_only"`
	FlashDuration   time.Duration `yaml:"flash_duration"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// defaultConfig returns the configuration used when nothing overrides it.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		API: APIConfig{
			BaseURL: sitepanel.DefaultBaseURL,
			Timeout: sitepanel.DefaultTimeout,
		},
		UI: UIConfig{
			AdminPath:       ui.DefaultAdminPath,
			FlashDuration:   ui.DefaultFlashDuration,
			RefreshInterval: ui.DefaultRefreshInterval,
		},
	}
}

// loadConfig reads the optional YAML file at path and applies environment
// overrides. An empty path skips the file.
func loadConfig(path string, getenv func(string) string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := getenv("API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks the values the libraries do not check themselves.
func (c *Config) validate() error {
	if c.Server.Addr == "" {
		return errors.New("config: server.addr is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("config: server.shutdown_timeout must be positive")
	}
	return nil
}

// clientConfig builds the API client configuration.
func (c *Config) clientConfig() *sitepanel.ClientConfig {
	return &sitepanel.ClientConfig{
		BaseURL: c.API.BaseURL,
		Timeout: c.API.Timeout,
	}
}

// uiConfig builds the UI handler configuration.
func (c *Config) uiConfig() *ui.Config {
	return &ui.Config{
		BasePath:        c.UI.BasePath,
		AdminPath:       c.UI.AdminPath,
		ReadOnly:        c.UI.ReadOnly,
		FlashDuration:   c.UI.FlashDuration,
		RefreshInterval: c.UI.RefreshInterval,
	}
}
