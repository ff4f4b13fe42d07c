// Package main provides the entry point for the pinotctl batch submitter.
//
// This package implements the main executable for the wine catalog data
// loader. The CLI reads tabular records from a delimited input file, issues
// one outbound call per record to a configured market API, and records
// per-row outcomes in a sibling results file plus an append-mode run log.
//
// CLI ARCHITECTURE:
// The main package wires the complete CLI system:
//   - Command Structure: root command runs the submitter, serve hosts a
//     local echo endpoint for offline dry runs
//   - Flag Management: run-defining flags with documented defaults, plus an
//     optional TOML config file overlaid under explicit flags
//   - Handler Integration: command execution with batch processing logic
//   - Configuration Binding: CLI state management and validation pipeline
//
// INITIALIZATION FLOW:
// 1. Command structure setup
// 2. Flag configuration with built-in defaults
// 3. Handler assignment linking commands to the batch runner
// 4. Flag validation before any command runs
// 5. Command execution with proper error handling and exit codes
package main

import (
	"os"

	"github.com/halex5000/pinot-noir-code/cmd/pinotctl/commands"
	"github.com/halex5000/pinot-noir-code/cmd/pinotctl/config"
	"github.com/halex5000/pinot-noir-code/cmd/pinotctl/handlers"
	appconfig "github.com/halex5000/pinot-noir-code/internal/config"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup command structure
	commands.SetupCommands()

	// Setup run flags with built-in defaults
	commands.SetupGlobalFlags(rootCmd,
		&config.Global.Input, &config.Global.APIKey, &config.Global.APIURL,
		&config.Global.RateLimit, &config.Global.Timeout,
		&config.Global.Verbose, &config.Global.MockPricing,
		&config.Global.ConfigFile, &config.Global.LogFile,
		appconfig.DefaultAPIKey, appconfig.DefaultAPIURL,
		appconfig.DefaultRateLimit, appconfig.DefaultTimeout,
		appconfig.DefaultLogFile)

	// Setup serve flags
	serveCmd := commands.GetServeCommand()
	commands.SetupServeFlags(serveCmd, &config.Serve.Listen)

	// Setup command handlers
	rootCmd.RunE = handlers.HandleSubmit
	serveCmd.RunE = handlers.HandleServe
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
