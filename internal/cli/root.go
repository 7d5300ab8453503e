// Package cli implements the racerd command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raceday-ai/racerd/internal/config"
	"github.com/raceday-ai/racerd/internal/logging"
)

var (
	cfgFile   string
	serverURL string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "racerd",
	Short: "F1 racer social agent daemon",
	Long: "racerd runs an F1 racer social media agent: it fills post templates\n" +
		"from a shared context, simulates social actions, and serves both over HTTP.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logging.Setup(cfg.Log.Level, cfg.Log.Format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "base URL of a running daemon (default http://<host>:<port> from config)")
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// GetConfig returns the configuration loaded for the current command.
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg
}

func serverBaseURL() string {
	if serverURL != "" {
		return serverURL
	}
	return "http://" + GetConfig().Server.Addr()
}
