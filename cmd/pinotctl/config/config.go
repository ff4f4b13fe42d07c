// Package config provides configuration management for the pinotctl CLI.
package config

import (
	"time"

	"github.com/halex5000/pinot-noir-code/internal/version"
)

// Version returns the current pinotctl CLI version from the centralized version package
var Version = version.PinotctlVersion

// Global holds the global CLI configuration
var Global struct {
	Input       string        // Path to the delimited input table
	APIKey      string        // Credential token sent with every call
	APIURL      string        // Base URL of the market API endpoint
	RateLimit   time.Duration // Delay between outbound calls
	Timeout     time.Duration // Per-call timeout
	Verbose     bool          // Enable debug logging
	MockPricing bool          // Generate synthetic prices (testing/demo only)
	ConfigFile  string        // Optional TOML config file path
	LogFile     string        // Append-mode run log path
}

// Serve holds the serve command configuration
var Serve struct {
	Listen string // Listen address for the local echo endpoint
}
