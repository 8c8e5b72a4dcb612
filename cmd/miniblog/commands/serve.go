package commands

import (
	"os/signal"
	"syscall"

	"miniblog/config"
	"miniblog/internal/app"
	"miniblog/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	servePort     string
	serveSnapshot string
	serveLogLevel string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.HTTP.Port = servePort
		}
		if cmd.Flags().Changed("snapshot") {
			cfg.Snapshot.Path = serveSnapshot
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = serveLogLevel
		}

		log := logger.New(cfg.LogLevel)
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ctx = logger.WithLogger(ctx, log)

		a, err := app.NewApp(ctx, cfg)
		if err != nil {
			return err
		}
		return a.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "5000", "HTTP port to listen on")
	serveCmd.Flags().StringVar(&serveSnapshot, "snapshot", "data.json", "Path to the snapshot file")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.AddCommand(serveCmd)
}
