package punch

import "errors"

var (
	ErrPunchNotFound = errors.New("punch event not found")
)
