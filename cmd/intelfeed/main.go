package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"IntelFeed/internal/app"
	"IntelFeed/internal/config"
	"IntelFeed/internal/logging"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		flagConfig string
		flagAddr   string
	)

	cmd := &cobra.Command{
		Use:           "intelfeed",
		Short:         "Security intelligence feed aggregation service",
		Long:          "intelfeed serves an aggregated security-intelligence feed built from announcement pages, advisory feeds and exploit-prediction data.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load(flagConfig)
			if flagAddr != "" {
				cfg.Server.Addr = flagAddr
			}

			logger := logging.New(cfg.Logging.Level)
			return app.New(cfg, logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "path to yaml config file")
	cmd.Flags().StringVar(&flagAddr, "addr", "", "listen address override")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("intelfeed %s\n", version)
		},
	})

	return cmd
}
