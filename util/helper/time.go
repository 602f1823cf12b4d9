package helper_util

import (
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string as used throughout the seeded
// records.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// BirthYear extracts the year component of a YYYY-MM-DD date of birth.
// Returns 0 when the date does not parse.
func BirthYear(dob string) int {
	t, err := ParseDate(dob)
	if err != nil {
		return 0
	}
	return t.Year()
}
