package attendance

import (
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
)

// All attendance dates and clock strings are local-naive wall-clock values.
// Timestamps are assembled in UTC only as a neutral carrier; nothing is ever
// converted between zones.

const dateLayout = "2006-01-02"

// dateLayouts are tried in order when normalizing a stored date.
var dateLayouts = []string{
	dateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"Mon Jan 02 2006",
}

var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"15:04:05.999999999",
}

// normalizeDate reformats a stored date to YYYY-MM-DD. Values carrying a zone
// keep the calendar day as written. Unparseable input is returned trimmed so
// it still groups with identical strings.
func normalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout)
		}
	}
	return s
}

// combine builds the timestamp for a clock string on the given day.
func combine(date, clock string) (time.Time, bool) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, false
	}

	clock = strings.TrimSpace(clock)
	for _, layout := range clockLayouts {
		c, err := time.Parse(layout, clock)
		if err != nil {
			continue
		}
		return time.Date(day.Year(), day.Month(), day.Day(),
			c.Hour(), c.Minute(), c.Second(), c.Nanosecond(), time.UTC), true
	}
	return time.Time{}, false
}

// formatDuration renders milliseconds as zero-padded HH:MM:SS using floored
// division with remainder chaining. Zero renders the placeholder.
func formatDuration(ms int64) string {
	if ms == 0 {
		return attendance.PlaceholderDuration
	}
	h := floorDiv(ms, 3_600_000)
	m := floorDiv(ms%3_600_000, 60_000)
	s := floorDiv(ms%60_000, 1_000)
	return pad2(h) + ":" + pad2(m) + ":" + pad2(s)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func pad2(n int64) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
