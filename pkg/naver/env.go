package naver

import (
	"os"
	"strconv"
	"strings"
)

// ConfigFromEnv builds a config using environment variables only.
func ConfigFromEnv() *Config {
	return ApplyEnvDefaults(&Config{})
}

// ApplyEnvDefaults overlays environment variables onto cfg (env wins when set)
// and applies defaults.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.ClientID = envOr(cfg.ClientID, os.Getenv("NAVER_CLIENT_ID"))
	cfg.ClientSecret = envOr(cfg.ClientSecret, os.Getenv("NAVER_CLIENT_SECRET"))
	cfg.BaseURL = envOr(cfg.BaseURL, os.Getenv("NAVER_BASE_URL"))
	if cfg.TimeoutSecs <= 0 {
		if secs, err := strconv.Atoi(strings.TrimSpace(os.Getenv("NAVER_TIMEOUT_SECONDS"))); err == nil && secs > 0 {
			cfg.TimeoutSecs = secs
		}
	}
	return cfg.WithDefaults()
}

func envOr(existing, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return existing
	}
	return value
}
