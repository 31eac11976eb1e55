package app

import (
	"context"
	"time"

	"github.com/routein/core/internal/modules/storage/backup"
	pkgcron "github.com/routein/core/internal/pkg/cron"
	"go.uber.org/zap"
)

// registerCronJobs registers scheduled background jobs and starts the
// scheduler when any are enabled.
func (a *App) registerCronJobs(ctx context.Context) {
	if !a.cfg.Backup.Enable {
		return
	}

	cronLogger := a.logger.Named("CronService")
	backupSvc := backup.NewService(a.db, a.cfg)

	interval := time.Duration(a.cfg.Backup.IntervalHours) * time.Hour
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	a.sched.Register(pkgcron.Job{
		Name:        "auto_backup",
		Description: "Export collections to a local backup archive (and S3 when configured)",
		Interval:    interval,
		Fn: func(ctx context.Context) error {
			cronLogger.Info("creating backup")
			if err := backupSvc.Run(ctx); err != nil {
				cronLogger.Warn("backup failed", zap.Error(err))
				return err
			}
			cronLogger.Info("backup complete")
			return nil
		},
	})

	go a.sched.Start(ctx)
}
