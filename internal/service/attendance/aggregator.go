package attendance

import (
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
)

// Grace window around each nominal shift start.
const (
	graceBefore = 10 * time.Minute
	graceAfter  = 5 * time.Minute
)

// presenceThreshold is compared against the formatted totalHours string.
// The comparison is textual and relies on the fixed HH:MM:SS width.
const presenceThreshold = "06:00:00"

var shiftStarts = map[string][]string{
	"general": {"08:30", "09:00", "09:30", "10:00"},
	"shift-1": {"06:00", "07:00"},
	"shift-2": {"13:00", "14:00"},
}

// KeyOf returns the normalized person-day key of a raw record.
func KeyOf(employeeID, firstName, date string) attendance.GroupKey {
	return attendance.GroupKey{
		EmployeeID: strings.ToLower(strings.TrimSpace(employeeID)),
		FirstName:  strings.ToLower(strings.TrimSpace(firstName)),
		Date:       normalizeDate(date),
	}
}

// Group merges raw records sharing a GroupKey. Groups are returned in the
// order their key was first seen. The first record of a key seeds the
// identity fields, shift and remarks; later records only contribute tracker
// entries and source IDs.
func Group(raw []attendance.RawRecord) []*attendance.GroupedRecord {
	index := make(map[attendance.GroupKey]*attendance.GroupedRecord, len(raw))
	groups := make([]*attendance.GroupedRecord, 0, len(raw))

	for _, r := range raw {
		key := KeyOf(r.EmployeeID, r.FirstName, r.Date)

		g, ok := index[key]
		if !ok {
			g = &attendance.GroupedRecord{
				Key:             key,
				EmployeeID:      strings.TrimSpace(r.EmployeeID),
				FirstName:       strings.TrimSpace(r.FirstName),
				Date:            key.Date,
				Shift:           r.Shift,
				Tracker:         []attendance.TrackerEntry{},
				Remarks:         r.Remarks,
				RemarksEditedAt: r.RemarksEditedAt,
			}
			index[key] = g
			groups = append(groups, g)
		}

		for _, entry := range r.Tracker {
			if entry.HasPunch() {
				g.Tracker = append(g.Tracker, entry)
			}
		}
		if r.ID != "" {
			g.SourceIDs = append(g.SourceIDs, r.ID)
		}
	}

	return groups
}

// Summarize derives first clock-in, last clock-out, worked time, elapsed
// span, punctuality and presence from a grouped record.
func Summarize(g *attendance.GroupedRecord) attendance.Summary {
	sorted := sortedEntries(g.Date, g.Tracker)

	var (
		firstClockIn string
		lastClockOut string
		totalMs      int64
		spanMs       int64
	)

	for _, e := range sorted {
		if e.ClockIn != "" && firstClockIn == "" {
			firstClockIn = e.ClockIn
		}
		if e.ClockOut != "" {
			lastClockOut = e.ClockOut
		}

		if e.ClockIn == "" || e.ClockOut == "" {
			continue
		}
		in, okIn := combine(g.Date, e.ClockIn)
		out, okOut := combine(g.Date, e.ClockOut)
		if okIn && okOut && out.After(in) {
			totalMs += out.Sub(in).Milliseconds()
		}
	}

	if firstClockIn != "" && lastClockOut != "" {
		start, okStart := combine(g.Date, firstClockIn)
		end, okEnd := combine(g.Date, lastClockOut)
		if okStart && okEnd {
			spanMs = end.Sub(start).Milliseconds()
		}
	}

	totalHours := formatDuration(totalMs)
	present := attendance.PresenceAbsent
	if totalHours >= presenceThreshold {
		present = attendance.PresencePresent
	}

	return attendance.Summary{
		GroupedRecord: *g,
		FirstClockIn:  firstClockIn,
		LastClockOut:  lastClockOut,
		TotalHours:    totalHours,
		TotalDuration: formatDuration(spanMs),
		Status:        classify(g.Date, g.Shift, firstClockIn),
		Present:       present,
	}
}

// Aggregate groups and summarizes raw records in one stateless pass.
func Aggregate(raw []attendance.RawRecord) []attendance.Summary {
	groups := Group(raw)
	out := make([]attendance.Summary, 0, len(groups))
	for _, g := range groups {
		out = append(out, Summarize(g))
	}
	return out
}

// ApplyRemarks replaces the remarks of a summary and stamps the edit time.
func ApplyRemarks(s *attendance.Summary, text string, now time.Time) {
	s.Remarks = text
	s.RemarksEditedAt = now.UTC().Format(time.RFC3339)
}

type sortable struct {
	entry attendance.TrackerEntry
	at    time.Time
	ok    bool
}

// sortedEntries orders punches by the clock-in (or clock-out when there is
// no clock-in) on the record's date. Ties keep input order; entries whose
// time cannot be parsed go last.
func sortedEntries(date string, tracker []attendance.TrackerEntry) []attendance.TrackerEntry {
	items := make([]sortable, 0, len(tracker))
	for _, e := range tracker {
		if !e.HasPunch() {
			continue
		}
		stamp := e.ClockIn
		if stamp == "" {
			stamp = e.ClockOut
		}
		at, ok := combine(date, stamp)
		items = append(items, sortable{entry: e, at: at, ok: ok})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ok != items[j].ok {
			return items[i].ok
		}
		return items[i].ok && items[i].at.Before(items[j].at)
	})

	out := make([]attendance.TrackerEntry, len(items))
	for i, it := range items {
		out[i] = it.entry
	}
	return out
}

func classify(date, shift, firstClockIn string) attendance.Status {
	starts, known := shiftStarts[strings.ToLower(strings.TrimSpace(shift))]
	if firstClockIn == "" || !known {
		return attendance.StatusUnknown
	}

	clockIn, ok := combine(date, firstClockIn)
	if !ok {
		return attendance.StatusLate
	}

	for _, s := range starts {
		start, ok := combine(date, s)
		if !ok {
			continue
		}
		if !clockIn.Before(start.Add(-graceBefore)) && !clockIn.After(start.Add(graceAfter)) {
			return attendance.StatusOnTime
		}
	}
	return attendance.StatusLate
}
