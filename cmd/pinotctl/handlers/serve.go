// Package handlers provides command handler functions for pinotctl batch runs.
//
// This file contains the serve handler hosting the local echo endpoint used
// for offline dry runs.
package handlers

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/halex5000/pinot-noir-code/cmd/pinotctl/config"
	"github.com/halex5000/pinot-noir-code/internal/echoapi"
	"github.com/halex5000/pinot-noir-code/internal/logging"
)

// HandleServe handles the serve subcommand. Runs the echo endpoint until
// interrupted, then shuts it down gracefully.
func HandleServe(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(logging.Options{Level: "INFO"})
	if err != nil {
		return err
	}
	defer logger.Close()

	server := echoapi.NewServer(config.Serve.Listen, logger)
	if err := server.Start(); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
