package commands

import (
	"github.com/spf13/cobra"

	"github.com/ecritures-dev/ecritures/internal/config"
	"github.com/ecritures-dev/ecritures/internal/server"
)

func newServeCommand() *cobra.Command {
	var listen string
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload/download web form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(cfgPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Server.Listen = listen
			}
			if cfg.Server.Listen == "" {
				cfg.Server.Listen = ":8080"
			}

			chart, opts, err := buildPipeline(cfg)
			if err != nil {
				return err
			}
			return server.New(chart, opts).Start(cfg.Server.Listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", `listen address (default ":8080")`)
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to ecritures.yaml")

	return cmd
}
