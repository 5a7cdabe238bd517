package employee

import (
	"fmt"
	"strings"
	"time"
)

const notAvailable = "N/A"

// Experience renders the tenure between a joining date and today as
// "N years, M months, D days". Day and month underflow borrow from the
// previous calendar month and year.
func Experience(dateOfJoining string, today time.Time) string {
	joined, err := time.Parse("2006-01-02", strings.TrimSpace(dateOfJoining))
	if err != nil {
		return notAvailable
	}

	years := today.Year() - joined.Year()
	months := int(today.Month()) - int(joined.Month())
	days := today.Day() - joined.Day()

	if days < 0 {
		months--
		// day 0 of this month is the last day of the previous one
		days += time.Date(today.Year(), today.Month(), 0, 0, 0, 0, 0, time.UTC).Day()
	}
	if months < 0 {
		years--
		months += 12
	}

	return fmt.Sprintf("%d %s, %d %s, %d %s",
		years, plural(years, "year"),
		months, plural(months, "month"),
		days, plural(days, "day"),
	)
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
