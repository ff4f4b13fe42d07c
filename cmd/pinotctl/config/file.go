package config

import (
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors the flag surface but uses strings for durations to make
// TOML friendly.
type FileConfig struct {
	APIKey      string `toml:"api_key"`
	APIURL      string `toml:"api_url"`
	RateLimit   string `toml:"rate_limit"`
	Timeout     string `toml:"timeout"`
	LogFile     string `toml:"log_file"`
	MockPricing *bool  `toml:"enable_mock_pricing"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.pinotctl/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".pinotctl", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Global struct.
// It respects flags that have been explicitly set (changed map), so the
// precedence is flags > config file > built-in defaults.
func ApplyFileConfig(fc FileConfig, changed map[string]bool) error {
	setString := func(flag, value string, target *string) {
		if !changed[flag] && value != "" {
			*target = value
		}
	}
	setDuration := func(flag, value string, target *time.Duration) error {
		if changed[flag] || value == "" {
			return nil
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*target = d
		return nil
	}

	setString("api-key", fc.APIKey, &Global.APIKey)
	setString("api-url", fc.APIURL, &Global.APIURL)
	setString("log-file", fc.LogFile, &Global.LogFile)

	if err := setDuration("rate-limit", fc.RateLimit, &Global.RateLimit); err != nil {
		return err
	}
	if err := setDuration("timeout", fc.Timeout, &Global.Timeout); err != nil {
		return err
	}

	if !changed["enable-mock-pricing"] && fc.MockPricing != nil {
		Global.MockPricing = *fc.MockPricing
	}

	return nil
}
