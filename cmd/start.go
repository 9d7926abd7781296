package cmd

import (
	"context"
	"os"
	"os/signal"
	"portfolio/pkg/config"
	"portfolio/pkg/http/server"
	"syscall"

	"github.com/spf13/cobra"
)

var StartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the web server",
	Long: `Starts the web server on the configured host and port.
The projects table is created on first start. SIGINT or SIGTERM drains
in flight requests before exiting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configs := config.NewPortfolioConfig().GetConfigurations()
		logger := newLogger(configs)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("starting server", "port", configs.Port, "db", configs.DbFilePath, "siteDir", configs.SiteDir)
		return server.Start(ctx, logger, configs)
	},
}
