package employee

import "time"

// Employee is the identity record for one enrolled person. EmployeeID is
// assigned by the organisation; FingerID is the slot on the fingerprint
// reader the person is enrolled under.
type Employee struct {
	EmployeeID string
	Name       string
	Email      string
	FingerID   int
	CreatedAt  time.Time
}
