package cron

import (
	"context"
	"log/slog"

	"github.com/biotrack-id/attendance-backend-go/internal/config"
	"github.com/biotrack-id/attendance-backend-go/internal/domain/punch"
)

// SyncJobs periodically reconciles fingerprint-reader punches into the
// store. The original workflow synced on demand when the operator opened
// the attendance view; as a headless service the equivalent is a timer.
type SyncJobs struct {
	syncService punch.SyncService
	cfg         config.DeviceConfig
}

func NewSyncJobs(syncService punch.SyncService, cfg config.DeviceConfig) *SyncJobs {
	return &SyncJobs{
		syncService: syncService,
		cfg:         cfg,
	}
}

func (j *SyncJobs) RegisterJobs(scheduler *Scheduler) {
	if !j.cfg.SyncEnabled {
		slog.Info("Cron: device sync disabled by configuration")
		return
	}
	scheduler.AddJob("device_punch_sync", j.cfg.SyncInterval, j.SyncDevicePunches)
}

func (j *SyncJobs) SyncDevicePunches(ctx context.Context) error {
	resp, err := j.syncService.Sync(ctx)
	if err != nil {
		return err
	}

	slog.Info("Cron: device punch sync completed",
		"device_reachable", resp.DeviceReachable,
		"fetched", resp.FetchedCount,
		"inserted", resp.InsertedCount)
	return nil
}
