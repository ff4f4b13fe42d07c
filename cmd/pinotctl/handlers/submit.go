// Package handlers provides command handler functions for pinotctl batch runs.
//
// This file contains the root command handler: it resolves the effective run
// settings (flags over config file over defaults), constructs the run logger
// and collaborators, and drives the batch submitter. Fatal errors (missing
// input, unreadable table) propagate so the process exits non-zero; row-level
// failures stay inside the run's results and statistics.
package handlers

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/halex5000/pinot-noir-code/cmd/pinotctl/config"
	"github.com/halex5000/pinot-noir-code/internal/logging"
	"github.com/halex5000/pinot-noir-code/internal/market"
	"github.com/halex5000/pinot-noir-code/internal/pricing"
	"github.com/halex5000/pinot-noir-code/internal/results"
	"github.com/halex5000/pinot-noir-code/internal/submit"
)

// runSettings is the fully-specified configuration for one batch run. The
// interactive flow and the flag-driven flow both reduce to this struct.
type runSettings struct {
	Input       string
	APIKey      string
	APIURL      string
	RateLimit   time.Duration
	Timeout     time.Duration
	MockPricing bool
	Verbose     bool
	LogFile     string
}

// HandleSubmit handles the root command. With no run-defining flags it drops
// into the interactive prompt flow; otherwise --input is required and the
// remaining settings come from flags, the config file, and defaults.
func HandleSubmit(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("input") && !cmd.Flags().Changed("api-key") && !cmd.Flags().Changed("api-url") {
		return runInteractive(cmd)
	}

	if config.Global.Input == "" {
		return fmt.Errorf("--input is required in flag mode (run without arguments for interactive mode)")
	}

	if err := applyConfigFile(cmd); err != nil {
		return err
	}

	return runBatch(cmd.InOrStdin(), cmd.OutOrStdout(), runSettings{
		Input:       config.Global.Input,
		APIKey:      config.Global.APIKey,
		APIURL:      config.Global.APIURL,
		RateLimit:   config.Global.RateLimit,
		Timeout:     config.Global.Timeout,
		MockPricing: config.Global.MockPricing,
		Verbose:     config.Global.Verbose,
		LogFile:     config.Global.LogFile,
	})
}

// applyConfigFile overlays TOML config file values under explicitly-set
// flags. An explicit --config path must load; the default path is optional.
func applyConfigFile(cmd *cobra.Command) error {
	path := config.Global.ConfigFile
	explicit := path != ""
	if !explicit {
		path = config.DefaultConfigPath()
	}
	if path == "" {
		return nil
	}

	fc, err := config.LoadFileConfig(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	changed := make(map[string]bool)
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if err := config.ApplyFileConfig(fc, changed); err != nil {
		return fmt.Errorf("invalid value in config file %s: %w", path, err)
	}

	// File values bypassed PersistentPreRunE, so they are held to the same
	// rules here.
	if err := config.ValidateGlobalFlags(cmd, nil); err != nil {
		return fmt.Errorf("invalid value in config file %s: %w", path, err)
	}
	return nil
}

// runBatch constructs the run logger and collaborators from fully-specified
// settings and executes one pass over the input table. The in reader must be
// the same one the calling shell prompts on, so buffered read-ahead from an
// earlier prompt cannot swallow the overwrite answer.
func runBatch(in io.Reader, out io.Writer, s runSettings) error {
	level := "INFO"
	if s.Verbose {
		level = "DEBUG"
	}

	logger, err := logging.New(logging.Options{Level: level, LogFile: s.LogFile})
	if err != nil {
		return err
	}
	defer logger.Close()

	pricer := pricing.New(s.MockPricing, nil)
	client := market.New(market.Config{
		Endpoint: s.APIURL,
		APIKey:   s.APIKey,
		Timeout:  s.Timeout,
	}, logger)
	writer := results.NewWriter(s.MockPricing,
		results.StdinPrompter(in, out))

	processor := submit.New(submit.Options{
		Client:    client,
		Pricer:    pricer,
		Writer:    writer,
		Logger:    logger,
		RateLimit: s.RateLimit,
	})

	stats, err := processor.Run(s.Input)
	if err != nil {
		return err
	}

	logger.Success("Processed %d records: %d successful, %d failed, %d skipped",
		stats.Total, stats.Successful, stats.Failed, stats.Skipped)
	return nil
}
