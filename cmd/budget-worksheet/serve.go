package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/internal/server"
	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/constants"
	"github.com/spf13/cobra"
)

var (
	flagServerConfig string
	flagAddress      string
	flagMaxBodySize  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the worksheet API over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServerConfig, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().StringVar(&flagAddress, "address", "", "listen address override")
	serveCmd.Flags().StringVar(&flagMaxBodySize, "max-body-size", "", "request body limit override (e.g. 128K, 1M)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := server.LoadConfig(flagServerConfig)
	if err != nil {
		return err
	}
	if err := applyServeOverrides(cfg, flagAddress, flagMaxBodySize); err != nil {
		return err
	}

	logger, err := initializeLogger(cfg.Logging, flagLogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, logger, cfg, version)
}

// applyServeOverrides layers command-line flags over the loaded server config.
func applyServeOverrides(cfg *server.Config, address, maxBodySize string) error {
	if address != "" {
		cfg.Address = address
	}
	if maxBodySize != "" {
		size, err := server.ParseSize(maxBodySize)
		if err != nil {
			return fmt.Errorf("invalid --max-body-size: %w", err)
		}
		cfg.SetBodySizeBytes(size)
	}
	return nil
}
