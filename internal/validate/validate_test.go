package validate

import (
	"testing"
	"time"
)

// TestEndpointURL tests EndpointURL validation
func TestEndpointURL(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		description string
	}{
		{
			name:        "https endpoint",
			input:       "https://postman-echo.com/get",
			expectError: false,
			description: "absolute https URLs should be valid",
		},
		{
			name:        "http endpoint",
			input:       "http://127.0.0.1:8080/get",
			expectError: false,
			description: "absolute http URLs should be valid",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			description: "empty endpoint should be invalid",
		},
		{
			name:        "missing scheme",
			input:       "postman-echo.com/get",
			expectError: true,
			description: "bare host should be invalid",
		},
		{
			name:        "unsupported scheme",
			input:       "ftp://example.com/get",
			expectError: true,
			description: "non-http schemes should be invalid",
		},
		{
			name:        "whitespace garbage",
			input:       "not a url",
			expectError: true,
			description: "arbitrary text should be invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EndpointURL(tt.input)
			if tt.expectError && err == nil {
				t.Errorf("Expected error for %s, got nil (%s)", tt.input, tt.description)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error for %s, got: %v (%s)", tt.input, err, tt.description)
			}
		})
	}
}

// TestRequiredString tests RequiredString validation
func TestRequiredString(t *testing.T) {
	if err := RequiredString("", "api key"); err == nil {
		t.Error("Expected error for empty string, got nil")
	}
	if err := RequiredString("test_api_key_123", "api key"); err != nil {
		t.Errorf("Expected no error for non-empty string, got: %v", err)
	}
}

// TestPositiveTimeout tests PositiveTimeout validation
func TestPositiveTimeout(t *testing.T) {
	tests := []struct {
		name        string
		timeout     time.Duration
		expectError bool
	}{
		{name: "positive timeout", timeout: 30 * time.Second, expectError: false},
		{name: "zero timeout", timeout: 0, expectError: true},
		{name: "negative timeout", timeout: -time.Second, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PositiveTimeout(tt.timeout, "request timeout")
			if tt.expectError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

// TestRateLimitDelay tests RateLimitDelay validation
func TestRateLimitDelay(t *testing.T) {
	if err := RateLimitDelay(-time.Second); err == nil {
		t.Error("Expected error for negative delay, got nil")
	}
	if err := RateLimitDelay(0); err != nil {
		t.Errorf("Expected zero delay to be valid, got: %v", err)
	}
	if err := RateLimitDelay(time.Second); err != nil {
		t.Errorf("Expected positive delay to be valid, got: %v", err)
	}
}
