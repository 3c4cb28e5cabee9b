package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDateString(t *testing.T) {
	valid := []string{"2024-01-15", "1999-12-31", "2024-02-29"}
	invalid := []string{
		"2024-1-5",      // not zero padded, lexical order would diverge
		"2024-13-01",    // no such month
		"2023-02-29",    // not a leap year
		"15-01-2024",    // wrong field order
		"2024/01/15",    // wrong separator
		"2024-01-15T00", // trailing junk
		"",
	}
	for _, d := range valid {
		if _, ok := IsValidDateString(d); !ok {
			t.Errorf("IsValidDateString(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDateString(d); ok {
			t.Errorf("IsValidDateString(%q) = true, want false", d)
		}
	}
}

func TestIsValidTimeString(t *testing.T) {
	valid := []string{"00:00", "09:05", "17:30", "23:59"}
	invalid := []string{"9:05", "24:00", "12:60", "12:5", "12:05:30", "noon", ""}
	for _, s := range valid {
		if !IsValidTimeString(s) {
			t.Errorf("IsValidTimeString(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeString(s) {
			t.Errorf("IsValidTimeString(%q) = true, want false", s)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  time.Duration
		ok    bool
	}{
		{"00:00", 0, true},
		{"09:00", 9 * time.Hour, true},
		{"17:30", 17*time.Hour + 30*time.Minute, true},
		{"23:59", 23*time.Hour + 59*time.Minute, true},
		{"24:00", 0, false},
		{"bogus", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseTimeOfDay(c.input)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseTimeOfDay(%q) = (%v, %v), want (%v, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "date must be in yyyy-MM-dd format"},
		{Field: "time", Message: "time must be in HH:mm format"},
	}
	m := errs.ToMap()
	if len(m) != 2 || m["date"] == "" || m["time"] == "" {
		t.Errorf("ToMap() = %v, want both fields present", m)
	}
}
