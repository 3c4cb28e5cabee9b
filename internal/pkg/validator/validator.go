package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// DateLayout and TimeLayout are the wire formats for punch events. Sort
// order, the dedup key and classification all rely on lexical ordering of
// these forms matching chronological ordering, so both are re-validated at
// every ingestion point.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDateString checks that a string is a zero-padded, calendar-valid
// yyyy-MM-dd date. time.Parse alone accepts "2024-1-5", which would break
// lexical ordering, hence the shape check first.
func IsValidDateString(dateStr string) (time.Time, bool) {
	if !dateRegex.MatchString(dateStr) {
		return time.Time{}, false
	}
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

var timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// IsValidTimeString checks that a string is a zero-padded 24-hour HH:mm time.
func IsValidTimeString(timeStr string) bool {
	return timeRegex.MatchString(timeStr)
}

// ParseTimeOfDay parses an HH:mm string into a duration since midnight.
func ParseTimeOfDay(timeStr string) (time.Duration, bool) {
	if !timeRegex.MatchString(timeStr) {
		return 0, false
	}
	t, err := time.Parse(TimeLayout, timeStr)
	if err != nil {
		return 0, false
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, true
}
