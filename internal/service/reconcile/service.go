package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/biotrack-id/attendance-backend-go/internal/domain/punch"
	"github.com/google/uuid"
)

// DeviceClient is what the service needs from the fingerprint reader.
type DeviceClient interface {
	Connect(ctx context.Context) (string, error)
	FetchPunchEvents(ctx context.Context) ([]punch.PunchEvent, error)
}

type SyncServiceImpl struct {
	punchRepo punch.PunchRepository
	device    DeviceClient
}

func NewSyncService(punchRepo punch.PunchRepository, device DeviceClient) punch.SyncService {
	return &SyncServiceImpl{
		punchRepo: punchRepo,
		device:    device,
	}
}

// LoadAttendance implements punch.SyncService.
func (s *SyncServiceImpl) LoadAttendance(ctx context.Context) ([]punch.PunchEvent, error) {
	events, _, err := s.run(ctx)
	return events, err
}

// Sync implements punch.SyncService.
func (s *SyncServiceImpl) Sync(ctx context.Context) (punch.SyncResponse, error) {
	events, outcome, err := s.run(ctx)
	if err != nil {
		return punch.SyncResponse{}, err
	}

	punches := make([]punch.PunchResponse, 0, len(events))
	for _, e := range events {
		punches = append(punches, punch.PunchResponse{
			ID:         e.ID,
			EmployeeID: e.EmployeeID,
			FingerID:   e.FingerID,
			Date:       e.Date,
			Time:       e.Time,
			Synced:     e.Synced,
		})
	}

	return punch.SyncResponse{
		DeviceReachable: outcome.deviceReachable,
		FetchedCount:    outcome.fetched,
		InsertedCount:   outcome.inserted,
		Punches:         punches,
	}, nil
}

type runOutcome struct {
	deviceReachable bool
	fetched         int
	inserted        int
}

// run fetches best-effort from the reader, merges through the atomic bulk
// dedup insert, then re-reads the store. The store, post-merge, is the
// single source of truth for what is returned. The returned slice is never
// nil; a store failure yields an empty slice and the error.
func (s *SyncServiceImpl) run(ctx context.Context) ([]punch.PunchEvent, runOutcome, error) {
	log := slog.With("sync_id", uuid.NewString())
	outcome := runOutcome{}

	// Device fetch is best-effort: unreachable, unconfigured or failing
	// readers degrade to store-only data.
	var deviceEvents []punch.PunchEvent
	if _, err := s.device.Connect(ctx); err != nil {
		log.Warn("fingerprint reader unavailable, using store only", "error", err)
	} else {
		outcome.deviceReachable = true
		deviceEvents, err = s.device.FetchPunchEvents(ctx)
		if err != nil {
			log.Warn("fingerprint reader fetch failed, using store only", "error", err)
			outcome.deviceReachable = false
			deviceEvents = nil
		}
	}
	outcome.fetched = len(deviceEvents)

	if len(deviceEvents) > 0 {
		inserted, err := s.punchRepo.SaveBulk(ctx, deviceEvents)
		if err != nil {
			return []punch.PunchEvent{}, outcome, fmt.Errorf("failed to merge reader punches into store: %w", err)
		}
		outcome.inserted = inserted
		log.Info("reader punches merged", "fetched", outcome.fetched, "inserted", inserted)
	}

	events, err := s.punchRepo.List(ctx)
	if err != nil {
		return []punch.PunchEvent{}, outcome, fmt.Errorf("failed to read punch store: %w", err)
	}
	if events == nil {
		events = []punch.PunchEvent{}
	}

	return events, outcome, nil
}
