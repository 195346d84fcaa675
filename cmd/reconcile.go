package cmd

import (
	"context"

	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/manager"

	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// reconcileCmd runs a single named task through the orchestrator and
// exits, for cron-driven or ad-hoc invocation outside the HTTP server.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile [task]",
	Short: "Run one reconciliation task and exit",
	Long: `Runs a single task key from the orchestrator's task table
(full-scan, populate-metadata, process-watchlist, refresh-collections,
custom-collections, actor-tracking, auto-subscribe, sync-person-map,
enrich-aliases) and exits once it completes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := readConfig()
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		m, _, err := buildManager(cfg)
		if err != nil {
			log.Fatal("failed to build manager", zap.Error(err))
		}

		scheduler := manager.NewScheduler(m)
		ctx := logger.WithCtx(context.Background(), log)

		task := manager.TaskKey(args[0])
		progress := func(percent int, message string) {
			log.Infow("reconcile progress", "task", task, "percent", percent, "message", message)
		}

		if err := scheduler.Run(ctx, manager.RunRequest{Task: task}, progress); err != nil {
			log.Fatal("task failed", zap.String("task", string(task)), zap.Error(err))
		}

		log.Info("task completed successfully")
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}
