package punch

import "time"

// PunchEvent is one raw fingerprint-sensor observation. Date and Time keep
// the device wire form (yyyy-MM-dd and HH:mm); for valid values lexical
// ordering equals chronological ordering, which the store's sort order and
// the classification engine both rely on.
type PunchEvent struct {
	ID         int64
	EmployeeID string
	FingerID   int
	Date       string
	Time       string
	Synced     bool
	CreatedAt  time.Time
}

// DedupKey identifies a logically unique punch. Two punches with the same
// employee, date and time are the same event even if finger_id differs.
type DedupKey struct {
	EmployeeID string
	Date       string
	Time       string
}

// Key returns the dedup identity of the event.
func (p PunchEvent) Key() DedupKey {
	return DedupKey{EmployeeID: p.EmployeeID, Date: p.Date, Time: p.Time}
}
