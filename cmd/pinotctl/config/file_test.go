package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// TestLoadFileConfig tests TOML parsing
func TestLoadFileConfig(t *testing.T) {
	path := writeConfigFile(t, `
api_key = "file_key"
api_url = "https://example.com/get"
rate_limit = "2s"
enable_mock_pricing = true
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() returned error: %v", err)
	}
	if fc.APIKey != "file_key" || fc.APIURL != "https://example.com/get" || fc.RateLimit != "2s" {
		t.Errorf("unexpected file config: %+v", fc)
	}
	if fc.MockPricing == nil || !*fc.MockPricing {
		t.Error("expected enable_mock_pricing to parse as true")
	}
}

// TestLoadFileConfigBadTOML tests that malformed files error
func TestLoadFileConfigBadTOML(t *testing.T) {
	path := writeConfigFile(t, "api_key = [unclosed")
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("Expected error for malformed TOML, got nil")
	}
}

// TestApplyFileConfig tests flags-win precedence over file values
func TestApplyFileConfig(t *testing.T) {
	prev := Global
	t.Cleanup(func() { Global = prev })

	Global.APIKey = "flag_key"
	Global.APIURL = "https://default.example.com/get"
	Global.RateLimit = time.Second
	Global.MockPricing = false

	enable := true
	fc := FileConfig{
		APIKey:      "file_key",
		APIURL:      "https://file.example.com/get",
		RateLimit:   "3s",
		MockPricing: &enable,
	}

	// api-key was set on the command line, everything else was not
	changed := map[string]bool{"api-key": true}
	if err := ApplyFileConfig(fc, changed); err != nil {
		t.Fatalf("ApplyFileConfig() returned error: %v", err)
	}

	if Global.APIKey != "flag_key" {
		t.Errorf("explicit flag overridden by file: %q", Global.APIKey)
	}
	if Global.APIURL != "https://file.example.com/get" {
		t.Errorf("file value not applied to unset flag: %q", Global.APIURL)
	}
	if Global.RateLimit != 3*time.Second {
		t.Errorf("file duration not applied: %v", Global.RateLimit)
	}
	if !Global.MockPricing {
		t.Error("file bool not applied")
	}
}

// TestApplyFileConfigBadDuration tests duration parse failures
func TestApplyFileConfigBadDuration(t *testing.T) {
	prev := Global
	t.Cleanup(func() { Global = prev })

	fc := FileConfig{RateLimit: "not-a-duration"}
	if err := ApplyFileConfig(fc, map[string]bool{}); err == nil {
		t.Error("Expected error for bad duration, got nil")
	}
}
