// Package commands provides the command tree implementation for pinotctl.
//
// This package defines the command structure for the wine catalog batch
// submitter. The root command runs the submitter itself (interactively when
// invoked bare, flag-driven otherwise) and a single subcommand hosts the
// local echo endpoint used for offline dry runs.
//
// COMMAND STRUCTURE:
//   - pinotctl: read a catalog file and submit every record to the market API
//   - pinotctl serve: local echo endpoint standing in for the remote service
//
// All commands follow consistent patterns with standardized flag handling and
// error messages.
package commands

import (
	"time"

	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "pinotctl",
	Short: "Batch submitter that loads wine catalog records into a market API",
	Long: `pinotctl reads tabular wine records from a delimited catalog file and,
for each record, issues one outbound call to a configured market API,
recording the outcome of every row in a sibling results file.

Run it bare for a guided interactive setup, or drive it entirely with
flags for scripted use.`,
	SilenceUsage: true,
	Example: `  # Interactive mode (just run the tool)
  pinotctl

  # Flag-driven mode with defaults for credential and endpoint
  pinotctl --input wines.csv

  # Fully specified run
  pinotctl --input wines.csv --api-key my_key --api-url https://api.example.com/get

  # Slow down the calls and enable synthetic prices for a demo
  pinotctl --input wines.csv --rate-limit 2s --enable-mock-pricing

  # Dry run against the built-in echo endpoint
  pinotctl serve --listen 127.0.0.1:8080 &
  pinotctl --input wines.csv --api-url http://127.0.0.1:8080/get

  # Show verbose output including field mappings
  pinotctl --input wines.csv --verbose`,
}

// serveCmd hosts the local echo endpoint
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local echo endpoint for offline dry runs",
	Long: `Starts a small HTTP server that reflects received query parameters back
with status 200, the submitter's success indicator. Point --api-url at it
to exercise a full batch run without touching the network edge.`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(serveCmd)
}

// SetupGlobalFlags configures the root command's run flags
func SetupGlobalFlags(rootCmd *cobra.Command, inputPtr *string, apiKeyPtr *string,
	apiURLPtr *string, rateLimitPtr *time.Duration, timeoutPtr *time.Duration,
	verbosePtr *bool, mockPricingPtr *bool, configPtr *string, logFilePtr *string,
	defaultAPIKey, defaultAPIURL string, defaultRateLimit, defaultTimeout time.Duration,
	defaultLogFile string) {
	rootCmd.Flags().StringVar(inputPtr, "input", "",
		"Path to the delimited input file (required in flag mode)")
	rootCmd.Flags().StringVar(apiKeyPtr, "api-key", defaultAPIKey,
		"API key for authentication")
	rootCmd.Flags().StringVar(apiURLPtr, "api-url", defaultAPIURL,
		"Base URL for the API endpoint")
	rootCmd.Flags().DurationVar(rateLimitPtr, "rate-limit", defaultRateLimit,
		"Delay between outbound calls")
	rootCmd.Flags().DurationVar(timeoutPtr, "timeout", defaultTimeout,
		"Per-call timeout; exceeding it marks the row Failed")
	rootCmd.Flags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.Flags().BoolVar(mockPricingPtr, "enable-mock-pricing", false,
		"Generate synthetic prices for testing (default: false)")
	rootCmd.Flags().StringVar(configPtr, "config", "",
		"TOML config file path (default: ~/.pinotctl/config.toml)")
	rootCmd.Flags().StringVar(logFilePtr, "log-file", defaultLogFile,
		"Append-mode run log path")
}

// SetupServeFlags configures flags for the serve command
func SetupServeFlags(cmd *cobra.Command, listenPtr *string) {
	cmd.Flags().StringVar(listenPtr, "listen", "127.0.0.1:8080",
		"Listen address for the echo endpoint")
}

// GetServeCommand returns the serve command for handler assignment
func GetServeCommand() *cobra.Command {
	return serveCmd
}
