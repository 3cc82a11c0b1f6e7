package naver

import (
	"errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the Naver Open API search root.
	DefaultBaseURL = "https://openapi.naver.com/v1/search"
	// DefaultTimeoutSecs bounds each upstream call.
	DefaultTimeoutSecs = 10
)

// Config holds Naver API credentials and connection settings.
type Config struct {
	BaseURL      string `yaml:"base_url"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	TimeoutSecs  int    `yaml:"timeout_seconds"`
}

// WithDefaults fills unset fields with defaults.
func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

// Validate checks that both credentials are present. A failure here is fatal
// at startup, never reported per call.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return errors.New("missing Naver client ID (set NAVER_CLIENT_ID)")
	}
	if strings.TrimSpace(c.ClientSecret) == "" {
		return errors.New("missing Naver client secret (set NAVER_CLIENT_SECRET)")
	}
	return nil
}

// LoadConfigFile parses a YAML config file and overlays environment values on
// top of it.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return ApplyEnvDefaults(cfg), nil
}
