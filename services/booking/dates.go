package booking

import (
	"regexp"
	"strings"
	"time"
)

// canonicalDay matches the canonical "YYYY-MM-DD" form.
var canonicalDay = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dateLayouts are tried in order for non-canonical input.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// NormalizeDay canonicalizes any accepted date representation to the local
// calendar day in "YYYY-MM-DD" form. Already-canonical strings pass through
// untouched so values stored in canonical form never drift across timezones.
// Every duplicate check and sweep decision routes through this function.
func NormalizeDay(value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", ErrInvalidDate
	}
	if canonicalDay.MatchString(v) {
		// Reject canonical-looking strings that are not real dates.
		if _, err := time.ParseInLocation("2006-01-02", v, time.Local); err != nil {
			return "", ErrInvalidDate
		}
		return v, nil
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, v, time.Local)
		if err != nil {
			continue
		}
		if t.IsZero() {
			return "", ErrInvalidDate
		}
		return t.Local().Format("2006-01-02"), nil
	}
	return "", ErrInvalidDate
}

// Today returns the current local calendar day in canonical form.
func Today() string {
	return time.Now().Format("2006-01-02")
}
