// Package validate provides input validation utilities for pinotctl batch runs,
// ensuring configuration integrity before any outbound call is attempted.
//
// Implements validation rules for API endpoints, credentials, and run timing
// parameters using the go-playground/validator library. Prevents malformed
// configuration from surfacing mid-run as confusing transport failures.
//
// VALIDATION COVERAGE:
//   - Endpoint URLs: scheme and format validation for the outbound API
//   - Credentials: required non-empty API key checking
//   - Timing: positive timeout and non-negative rate-limit delays
//
// Used by the CLI flag validation, the interactive shell, and the config file
// loader so every configuration path is held to the same rules.
package validate

import (
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: url, required, min, max - no custom registration needed
}

// ValidateField validates individual values against specified validation rules using
// the go-playground/validator library. Provides flexible validation for single fields
// without requiring struct definitions.
//
// Example: ValidateField("https://api.example.com/get", "required,url")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// EndpointURL validates an outbound API endpoint string. Requires an absolute
// http or https URL so the request builder never has to guess a scheme.
//
// Essential for catching copy-paste mistakes in interactive mode before a run
// burns its rate-limited call budget against an unreachable endpoint.
func EndpointURL(endpoint string) error {
	if err := ValidateField(endpoint, "required,url"); err != nil {
		return fmt.Errorf("invalid endpoint URL '%s'", endpoint)
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint URL '%s': %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint URL '%s' must use http or https", endpoint)
	}

	return nil
}

// RequiredString validates that a string field is not empty.
// Uses the validator library for consistent error handling across config validation.
func RequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// PositiveTimeout validates that a timeout duration is positive (> 0).
// Ensures each outbound call is bounded rather than waiting forever on a
// stalled endpoint.
func PositiveTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}

// RateLimitDelay validates the inter-row delay. Zero is allowed (no pacing,
// used by tests and local echo runs) but negative delays are rejected.
func RateLimitDelay(delay time.Duration) error {
	if delay < 0 {
		return fmt.Errorf("rate limit delay cannot be negative")
	}
	return nil
}
