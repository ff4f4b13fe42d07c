// Package config provides configuration management for the pinotctl CLI.
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halex5000/pinot-noir-code/internal/validate"
)

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ValidateEndpoint(); err != nil {
		return err
	}

	if err := ValidateTiming(); err != nil {
		return err
	}

	return nil
}

// ValidateEndpoint validates the --api-url flag
func ValidateEndpoint() error {
	if err := validate.EndpointURL(Global.APIURL); err != nil {
		return fmt.Errorf("invalid API endpoint - expected an absolute http(s) URL (e.g., https://postman-echo.com/get): %w", err)
	}
	return nil
}

// ValidateTiming validates the --rate-limit and --timeout flags
func ValidateTiming() error {
	if err := validate.RateLimitDelay(Global.RateLimit); err != nil {
		return err
	}
	if err := validate.PositiveTimeout(Global.Timeout, "request timeout"); err != nil {
		return err
	}
	return nil
}
