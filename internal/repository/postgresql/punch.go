package postgresql

import (
	"context"
	"fmt"

	"github.com/biotrack-id/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-id/attendance-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

const punchColumns = "id, employee_id, finger_id, date, time, synced, created_at"

// List implements punch.PunchRepository.
func (r *punchRepository) List(ctx context.Context) ([]punch.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM attendance
		ORDER BY date DESC, time DESC, id DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query punch events: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// ListByDate implements punch.PunchRepository.
func (r *punchRepository) ListByDate(ctx context.Context, date string) ([]punch.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM attendance
		WHERE date = $1
		ORDER BY time DESC, id DESC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query punch events by date: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// Save implements punch.PunchRepository. Unconditional insert; the dedup
// contract belongs to SaveBulk only.
func (r *punchRepository) Save(ctx context.Context, event punch.PunchEvent) (punch.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, finger_id, date, time, synced)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, event.EmployeeID, event.FingerID, event.Date, event.Time, event.Synced).
		Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return punch.PunchEvent{}, fmt.Errorf("failed to save punch event: %w", err)
	}

	return event, nil
}

// bulkMergeLockID is the advisory lock key serializing bulk merges.
// Two overlapping merges must not both pass the dedup check for the same
// logical punch; the table has no unique constraint on the dedup key
// because the single-insert path accepts duplicates by contract.
const bulkMergeLockID = 874220011

// SaveBulk implements punch.PunchRepository. Each candidate insert checks
// the dedup key inside one transaction, so a failed batch leaves no partial
// rows behind. The transaction-scoped advisory lock makes concurrent bulk
// merges run one at a time.
func (r *punchRepository) SaveBulk(ctx context.Context, events []punch.PunchEvent) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO attendance (employee_id, finger_id, date, time, synced)
		SELECT $1, $2, $3, $4, true
		WHERE NOT EXISTS (
			SELECT 1 FROM attendance
			WHERE employee_id = $1 AND date = $3 AND time = $4
		)
	`

	inserted := 0
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)
		if _, err := q.Exec(txCtx, `SELECT pg_advisory_xact_lock($1)`, bulkMergeLockID); err != nil {
			return fmt.Errorf("failed to acquire bulk merge lock: %w", err)
		}
		for _, event := range events {
			tag, err := q.Exec(txCtx, query, event.EmployeeID, event.FingerID, event.Date, event.Time)
			if err != nil {
				return fmt.Errorf("failed to bulk insert punch event: %w", err)
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// Delete implements punch.PunchRepository.
func (r *punchRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM attendance WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete punch event: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}

	return nil
}

type punchRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanPunches(rows punchRows) ([]punch.PunchEvent, error) {
	var events []punch.PunchEvent
	for rows.Next() {
		var event punch.PunchEvent
		err := rows.Scan(
			&event.ID, &event.EmployeeID, &event.FingerID,
			&event.Date, &event.Time, &event.Synced, &event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punch events: %w", err)
	}

	return events, nil
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}
