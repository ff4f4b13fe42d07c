// Package config provides common default configuration values shared across
// pinotctl components (submitter, market client, CLI shells). This centralizes
// configuration management and ensures the interactive and flag-driven flows
// apply identical defaults.
package config

import "time"

const (
	// DefaultAPIKey is the placeholder credential applied when the operator
	// does not supply one. Matches the documented demo key so runs against
	// the echo endpoint work out of the box.
	DefaultAPIKey = "test_api_key_123"

	// DefaultAPIURL is the default outbound endpoint. An echo service, so a
	// default-configured run is harmless and always classifies as Success.
	DefaultAPIURL = "https://postman-echo.com/get"

	// DefaultRateLimit is the default inter-row delay between outbound calls.
	DefaultRateLimit = 1 * time.Second

	// DefaultTimeout bounds each outbound call. Exceeding it marks the row
	// Failed, never aborts the run.
	DefaultTimeout = 30 * time.Second

	// DefaultLogFile is the append-mode run log written next to the working
	// directory, independent of the results file.
	DefaultLogFile = "pinotctl.log"

	// DefaultLogLevel is the default log level for batch runs.
	// INFO provides per-row visibility without the field-mapping debug noise.
	DefaultLogLevel = "INFO"
)
