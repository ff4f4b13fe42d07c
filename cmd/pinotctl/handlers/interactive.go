// Package handlers provides command handler functions for pinotctl batch runs.
//
// This file contains the interactive prompt flow: an optional outer shell
// that collects the same run settings the flag surface would, confirms them,
// and hands off to the shared batch runner.
package handlers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halex5000/pinot-noir-code/cmd/pinotctl/config"
	appconfig "github.com/halex5000/pinot-noir-code/internal/config"
	"github.com/halex5000/pinot-noir-code/internal/validate"
)

// runInteractive drives the guided setup loop. Declining the final
// confirmation restarts the flow; aborting any prompt exits cleanly without
// running a batch.
func runInteractive(cmd *cobra.Command) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for {
		settings, ok, err := promptForSettings(in, out)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Exiting...")
			return nil
		}

		confirmed, err := confirmSettings(in, out, settings)
		if err != nil {
			return err
		}
		if confirmed {
			fmt.Fprintln(out)
			return runBatch(in, out, settings)
		}

		fmt.Fprintln(out, "No problem, let's start over...")
		fmt.Fprintln(out)
	}
}

// promptForSettings collects a run configuration. Returns ok=false when the
// operator chooses to stop rather than retry a missing input file.
func promptForSettings(in *bufio.Reader, out io.Writer) (runSettings, bool, error) {
	fmt.Fprintln(out, "Welcome to the interactive wine catalog submitter!")
	fmt.Fprintln(out, "==================================================")
	fmt.Fprintln(out)

	// Step 1: input file, retried until it exists or the operator gives up
	var inputPath string
	for {
		path, err := promptLine(in, out, "What's the path to your input file? ")
		if err != nil {
			return runSettings{}, false, err
		}
		if _, statErr := os.Stat(path); statErr == nil {
			inputPath = path
			break
		}
		fmt.Fprintf(out, "File not found: %s\n", path)
		retry, err := promptLine(in, out, "Would you like to try again? (y/n): ")
		if err != nil {
			return runSettings{}, false, err
		}
		if !isYes(retry) {
			return runSettings{}, false, nil
		}
	}
	fmt.Fprintln(out)

	// Step 2: API configuration with documented defaults
	apiKey, err := promptLine(in, out,
		fmt.Sprintf("What's your API key? (default: %s): ", appconfig.DefaultAPIKey))
	if err != nil {
		return runSettings{}, false, err
	}
	if apiKey == "" {
		apiKey = appconfig.DefaultAPIKey
	}

	var apiURL string
	for {
		apiURL, err = promptLine(in, out,
			fmt.Sprintf("What's your API endpoint URL? (default: %s): ", appconfig.DefaultAPIURL))
		if err != nil {
			return runSettings{}, false, err
		}
		if apiURL == "" {
			apiURL = appconfig.DefaultAPIURL
		}
		if err := validate.EndpointURL(apiURL); err == nil {
			break
		}
		fmt.Fprintf(out, "That doesn't look like an http(s) URL: %s\n", apiURL)
	}
	fmt.Fprintln(out)

	// Step 3: mock pricing
	fmt.Fprintln(out, "Mock pricing generates synthetic prices for testing purposes.")
	mock, err := promptLine(in, out, "Enable mock pricing for testing? (y/N): ")
	if err != nil {
		return runSettings{}, false, err
	}

	return runSettings{
		Input:       inputPath,
		APIKey:      apiKey,
		APIURL:      apiURL,
		RateLimit:   appconfig.DefaultRateLimit,
		Timeout:     appconfig.DefaultTimeout,
		MockPricing: isYes(mock),
		LogFile:     config.Global.LogFile,
	}, true, nil
}

// confirmSettings shows the collected configuration and asks for a final
// go-ahead. Empty answers default to yes.
func confirmSettings(in *bufio.Reader, out io.Writer, s runSettings) (bool, error) {
	mockState := "Disabled"
	if s.MockPricing {
		mockState = "Enabled"
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Here's what we're about to run:")
	fmt.Fprintf(out, "  Input file:   %s\n", s.Input)
	fmt.Fprintf(out, "  API key:      %s\n", s.APIKey)
	fmt.Fprintf(out, "  API URL:      %s\n", s.APIURL)
	fmt.Fprintf(out, "  Mock pricing: %s\n", mockState)
	fmt.Fprintln(out)

	answer, err := promptLine(in, out, "Does this look correct? Ready to process? (Y/n): ")
	if err != nil {
		return false, err
	}
	return answer == "" || isYes(answer), nil
}

// promptLine prints a prompt and reads one trimmed answer line
func promptLine(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func isYes(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	return a == "y" || a == "yes"
}
