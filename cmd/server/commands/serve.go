package commands

import (
	"net/http"

	"github.com/spf13/cobra"

	"ballistics_calculator/internal/api"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				cfg.Port = port
			}
			handler := api.New(svc, cfg, log)
			log.Info("server listening", "port", cfg.Port, "prefix", cfg.APIPrefix)
			return http.ListenAndServe(":"+cfg.Port, handler)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (default $PORT or 8000)")
	return cmd
}
