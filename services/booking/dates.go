package booking

import (
	"fmt"
	"math"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate accepts an ISO date or timestamp. Values without a zone are read
// in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// StartOfDay floors t to 00:00:00.000 of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// EndOfDay ceils t to 23:59:59.999 of its calendar day in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc)
}

// NormalizeRange turns a stay into whole-day blocks: check-in at the start of
// its day, check-out at the end of its day.
func NormalizeRange(checkIn, checkOut time.Time, loc *time.Location) (time.Time, time.Time) {
	return StartOfDay(checkIn, loc), EndOfDay(checkOut, loc)
}

// Overlaps is the half-open interval test used by the availability query.
func Overlaps(existingIn, existingOut, requestedIn, requestedOut time.Time) bool {
	return existingIn.Before(requestedOut) && existingOut.After(requestedIn)
}

// Nights is the number of started 24h periods in a normalized range.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}
