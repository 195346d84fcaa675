package cmd

import (
	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/manager"
	"github.com/curatord/curatord/server"

	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// serveCmd starts the HTTP server: the webhook receiver and the task
// orchestrator behind it.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reconciliation engine's HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := readConfig()
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		m, store, err := buildManager(cfg)
		if err != nil {
			log.Fatal("failed to build manager", zap.Error(err))
		}

		scheduler := manager.NewScheduler(m)
		srv := server.New(log, m, scheduler, store, cfg.Server)

		if err := srv.Serve(cfg.Server.Port); err != nil {
			log.Fatal("server exited with error", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
