package punch

import "context"

// PunchRepository defines data access methods for punch events.
type PunchRepository interface {
	// List retrieves all punch events ordered by date descending, then time descending
	List(ctx context.Context) ([]PunchEvent, error)

	// ListByDate retrieves punch events for exactly that date string
	ListByDate(ctx context.Context, date string) ([]PunchEvent, error)

	// Save inserts a punch event unconditionally (no dedup); used for
	// manual single-entry additions. Returns the stored row.
	Save(ctx context.Context, event PunchEvent) (PunchEvent, error)

	// SaveBulk inserts each event only if no existing row matches its
	// dedup key (employee_id, date, time). The whole batch is atomic:
	// either every candidate insert commits or none do. Returns the
	// number of rows actually inserted so callers can tell a failed
	// merge apart from "zero new records".
	SaveBulk(ctx context.Context, events []PunchEvent) (int, error)

	// Delete removes a single punch event by id
	Delete(ctx context.Context, id int64) error
}
