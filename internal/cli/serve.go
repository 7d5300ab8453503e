package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raceday-ai/racerd/internal/logging"
	"github.com/raceday-ai/racerd/internal/racerd"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	serveHost string
	servePort int
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "bind hostname (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "bind port (overrides config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the racer agent daemon",
	Long:  "Start the HTTP daemon and serve the racer agent API until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		host := cfg.Server.Host
		if serveHost != "" {
			host = serveHost
		}
		port := cfg.Server.Port
		if servePort != 0 {
			port = servePort
		}

		daemon, err := racerd.New(cfg, logging.Component("racerd"), racerd.Options{
			Hostname: host,
			Port:     port,
			Version:  Version,
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return daemon.Run(ctx)
	},
}
