package commands

import (
	"github.com/spf13/cobra"

	"ballistics_calculator/internal/ballistics"
	"ballistics_calculator/internal/config"
	"ballistics_calculator/internal/logging"
)

var (
	logLevel string
	logDir   string

	cfg config.Config
	log *logging.Logger
	svc *ballistics.Service
)

func Execute() error {
	root := &cobra.Command{
		Use:   "ballistics-server",
		Short: "Exterior ballistics trajectory calculator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg = config.Load()
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logDir != "" {
				cfg.LogDir = logDir
			}
			log = logging.New(cfg.LogLevel, cfg.LogDir)
			svc = ballistics.NewService(cfg.Bounds, log)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logDir, "log-dir", "", "directory for rotating log files (default stderr)")

	root.AddCommand(serveCmd(), trajectoryCmd())
	return root.Execute()
}
