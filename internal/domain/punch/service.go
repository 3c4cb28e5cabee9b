package punch

import "context"

// SyncService reconciles device-sourced punch events with the store.
type SyncService interface {
	// LoadAttendance merges any reachable reader's punch events into the
	// store and returns the authoritative post-merge record set. Device
	// failures degrade to store-only data; the returned slice is never
	// nil. Only a store failure yields an error, alongside an empty slice.
	LoadAttendance(ctx context.Context) ([]PunchEvent, error)

	// Sync runs LoadAttendance and reports counts for the sync endpoint
	Sync(ctx context.Context) (SyncResponse, error)
}

// PunchService exposes direct store operations on punch events. Reads go
// straight to the store; reconciliation with the reader lives in SyncService.
type PunchService interface {
	ListPunches(ctx context.Context) ([]PunchResponse, error)
	ListPunchesByDate(ctx context.Context, date string) ([]PunchResponse, error)

	// CreatePunch records a manual entry for a known employee. The insert
	// is unconditional; manual entries bypass deduplication.
	CreatePunch(ctx context.Context, req CreatePunchRequest) (PunchResponse, error)

	DeletePunch(ctx context.Context, id int64) error
}
