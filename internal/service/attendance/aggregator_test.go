package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func in(clock string) attendance.TrackerEntry  { return attendance.TrackerEntry{ClockIn: clock} }
func out(clock string) attendance.TrackerEntry { return attendance.TrackerEntry{ClockOut: clock} }
func pair(i, o string) attendance.TrackerEntry {
	return attendance.TrackerEntry{ClockIn: i, ClockOut: o}
}

func grouped(shift string, tracker ...attendance.TrackerEntry) *attendance.GroupedRecord {
	return &attendance.GroupedRecord{
		EmployeeID: "E1",
		FirstName:  "Alice",
		Date:       "2024-01-10",
		Shift:      shift,
		Tracker:    tracker,
	}
}

func TestGroup_MergesSameKey(t *testing.T) {
	raw := []attendance.RawRecord{
		{ID: "a", EmployeeID: "E1", FirstName: "Alice", Date: "2024-01-10", Shift: "general",
			Tracker: []attendance.TrackerEntry{in("09:00"), out("12:00")}, Remarks: "first"},
		{ID: "b", EmployeeID: "e2", FirstName: "Bob", Date: "2024-01-10",
			Tracker: []attendance.TrackerEntry{in("10:00")}},
		{ID: "c", EmployeeID: " e1 ", FirstName: "ALICE", Date: "2024-01-10T00:00:00Z", Shift: "shift-1",
			Tracker: []attendance.TrackerEntry{in("13:00"), {}, out("18:00")}, Remarks: "second"},
	}

	groups := Group(raw)
	require.Len(t, groups, 2)

	alice := groups[0]
	assert.Equal(t, "E1", alice.EmployeeID)
	assert.Equal(t, "Alice", alice.FirstName)
	assert.Equal(t, "2024-01-10", alice.Date)
	assert.Equal(t, "general", alice.Shift)
	assert.Equal(t, "first", alice.Remarks)
	assert.Equal(t, []string{"a", "c"}, alice.SourceIDs)
	assert.Equal(t, []attendance.TrackerEntry{
		in("09:00"), out("12:00"), in("13:00"), out("18:00"),
	}, alice.Tracker)

	assert.Equal(t, "e2", groups[1].EmployeeID)
}

func TestGroup_ConcatenationFollowsInputOrder(t *testing.T) {
	a := attendance.RawRecord{ID: "a", EmployeeID: "E1", FirstName: "Alice", Date: "2024-01-10",
		Tracker: []attendance.TrackerEntry{in("09:00"), out("10:00")}}
	b := attendance.RawRecord{ID: "b", EmployeeID: "E1", FirstName: "Alice", Date: "2024-01-10",
		Tracker: []attendance.TrackerEntry{in("11:00")}}

	ab := Group([]attendance.RawRecord{a, b})
	ba := Group([]attendance.RawRecord{b, a})
	require.Len(t, ab, 1)
	require.Len(t, ba, 1)

	assert.Equal(t, []attendance.TrackerEntry{in("09:00"), out("10:00"), in("11:00")}, ab[0].Tracker)
	assert.Equal(t, []attendance.TrackerEntry{in("11:00"), in("09:00"), out("10:00")}, ba[0].Tracker)
	assert.ElementsMatch(t, ab[0].Tracker, ba[0].Tracker)
}

func TestGroup_KeepsDistinctKeysApart(t *testing.T) {
	raw := []attendance.RawRecord{
		{EmployeeID: "E1-a", FirstName: "b", Date: "2024-01-10"},
		{EmployeeID: "E1", FirstName: "a-b", Date: "2024-01-10"},
		{EmployeeID: "E1", FirstName: "Alice", Date: "2024-01-11"},
	}
	assert.Len(t, Group(raw), 3)
}

func TestGroup_AnonymousRecordsShareDateBucket(t *testing.T) {
	raw := []attendance.RawRecord{
		{ID: "x", Date: "2024-01-10", Tracker: []attendance.TrackerEntry{in("09:00")}},
		{ID: "y", Date: "2024-01-10", Tracker: []attendance.TrackerEntry{out("17:00")}},
	}
	groups := Group(raw)
	require.Len(t, groups, 1)
	assert.Equal(t, "", groups[0].EmployeeID)
	assert.Len(t, groups[0].Tracker, 2)
}

func TestSummarize_FirstClockInIsEarliest(t *testing.T) {
	s := Summarize(grouped("general", in("09:05"), in("08:58")))
	assert.Equal(t, "08:58", s.FirstClockIn)
}

func TestSummarize_LastClockOutOverwrites(t *testing.T) {
	s := Summarize(grouped("general", pair("09:00", "18:00"), pair("18:30", "19:30")))
	assert.Equal(t, "19:30", s.LastClockOut)
	assert.Equal(t, "10:00:00", s.TotalHours)
	assert.Equal(t, "10:30:00", s.TotalDuration)
}

func TestSummarize_SkipsInvalidPairs(t *testing.T) {
	s := Summarize(grouped("general", pair("10:00", "09:00"), pair("11:00", "11:30"), pair("bad", "12:00")))
	assert.Equal(t, "00:30:00", s.TotalHours)
}

func TestSummarize_PlaceholderWithoutPairs(t *testing.T) {
	s := Summarize(grouped("general", in("09:00"), out("17:00")))
	assert.Equal(t, attendance.PlaceholderDuration, s.TotalHours)
	assert.Equal(t, "08:00:00", s.TotalDuration)
	assert.Equal(t, attendance.PresenceAbsent, s.Present)

	empty := Summarize(grouped("general"))
	assert.Equal(t, "", empty.FirstClockIn)
	assert.Equal(t, "", empty.LastClockOut)
	assert.Equal(t, attendance.PlaceholderDuration, empty.TotalHours)
	assert.Equal(t, attendance.PlaceholderDuration, empty.TotalDuration)
	assert.Equal(t, attendance.StatusUnknown, empty.Status)
	assert.Equal(t, attendance.PresenceAbsent, empty.Present)
}

func TestSummarize_Punctuality(t *testing.T) {
	tests := []struct {
		name    string
		shift   string
		clockIn string
		want    attendance.Status
	}{
		{"inside window", "general", "08:51", attendance.StatusOnTime},
		{"window lower bound", "general", "08:50", attendance.StatusOnTime},
		{"window upper bound", "general", "09:05", attendance.StatusOnTime},
		{"between windows", "general", "08:49", attendance.StatusLate},
		{"after last window", "general", "10:06", attendance.StatusLate},
		{"seconds past bound", "general", "09:05:01", attendance.StatusLate},
		{"shift case insensitive", "Shift-1", "06:58", attendance.StatusOnTime},
		{"shift-2", "shift-2", "14:20", attendance.StatusLate},
		{"unknown shift", "night", "09:00", attendance.StatusUnknown},
		{"missing shift", "", "09:00", attendance.StatusUnknown},
		{"unparseable clock in", "general", "nine", attendance.StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(grouped(tt.shift, in(tt.clockIn)))
			assert.Equal(t, tt.want, s.Status)
		})
	}
}

func TestSummarize_PresenceUsesFormattedHours(t *testing.T) {
	present := Summarize(grouped("general", pair("09:00", "15:00")))
	assert.Equal(t, "06:00:00", present.TotalHours)
	assert.Equal(t, attendance.PresencePresent, present.Present)

	absent := Summarize(grouped("general", pair("08:00", "13:59:59")))
	assert.Equal(t, "05:59:59", absent.TotalHours)
	assert.Equal(t, attendance.PresenceAbsent, absent.Present)
}

func TestSummarize_NegativeSpanIsNotClamped(t *testing.T) {
	// Clock-out sorts before the clock-in, so the span runs backwards.
	s := Summarize(grouped("general", in("10:00"), out("09:00")))
	assert.Equal(t, "10:00", s.FirstClockIn)
	assert.Equal(t, "09:00", s.LastClockOut)
	assert.Equal(t, "-1:00:00", s.TotalDuration)
}

func TestSummarize_StableOnEqualTimestamps(t *testing.T) {
	s := Summarize(grouped("general", pair("09:00", "10:00"), pair("09:00", "09:30")))
	assert.Equal(t, "09:30", s.LastClockOut)
	assert.Equal(t, "01:30:00", s.TotalHours)
}

func TestSummarize_UnparseableEntriesSortLast(t *testing.T) {
	s := Summarize(grouped("general", in("??"), in("09:00"), out("17:00")))
	assert.Equal(t, "09:00", s.FirstClockIn)
}

func TestAggregate_EndToEnd(t *testing.T) {
	raw := []attendance.RawRecord{
		{ID: "a", EmployeeID: "E1", FirstName: "Alice", Date: "2024-01-10", Shift: "general",
			Tracker: []attendance.TrackerEntry{in("09:01")}},
		{ID: "b", EmployeeID: "E1", FirstName: "Alice", Date: "2024-01-10", Shift: "general",
			Tracker: []attendance.TrackerEntry{out("18:02")}},
	}

	summaries := Aggregate(raw)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "09:01", s.FirstClockIn)
	assert.Equal(t, "18:02", s.LastClockOut)
	assert.Equal(t, "--:--:--", s.TotalHours)
	assert.Equal(t, "09:01:00", s.TotalDuration)
	assert.Equal(t, attendance.StatusOnTime, s.Status)
	assert.Equal(t, attendance.PresenceAbsent, s.Present)
}

func TestApplyRemarks(t *testing.T) {
	s := Summarize(grouped("general", in("09:00")))
	ApplyRemarks(&s, "left early", time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC))

	assert.Equal(t, "left early", s.Remarks)
	assert.Equal(t, "2024-01-10T18:00:00Z", s.RemarksEditedAt)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "--:--:--", formatDuration(0))
	assert.Equal(t, "00:00:01", formatDuration(1_500))
	assert.Equal(t, "27:46:40", formatDuration(100_000_000))
	assert.Equal(t, "-1:-1:00", formatDuration(-60_000))
}

func TestNormalizeDate(t *testing.T) {
	tests := map[string]string{
		"2024-01-10":           "2024-01-10",
		" 2024-01-10 ":         "2024-01-10",
		"2024-01-10T23:30:00Z": "2024-01-10",
		"2024-01-10T08:00":     "2024-01-10",
		"2024/01/10":           "2024-01-10",
		"01/10/2024":           "2024-01-10",
		"Jan 10, 2024":         "2024-01-10",
		"10 Jan 2024":          "2024-01-10",
		"not a date":           "not a date",
	}
	for input, want := range tests {
		assert.Equal(t, want, normalizeDate(input), input)
	}
}

func TestFilter(t *testing.T) {
	summaries := Aggregate([]attendance.RawRecord{
		{EmployeeID: "EMP-01", FirstName: "Alice", Date: "2024-01-10"},
		{EmployeeID: "EMP-02", FirstName: "Bob", Date: "2024-01-10"},
		{EmployeeID: "EMP-01", FirstName: "Alice", Date: "2024-01-11"},
	})

	assert.Len(t, Filter(summaries, "", ""), 3)
	assert.Len(t, Filter(summaries, "2024-01-10", ""), 2)
	assert.Len(t, Filter(summaries, "", "emp-01"), 2)
	assert.Len(t, Filter(summaries, "2024-01-11", "BOB"), 0)
	assert.Len(t, Filter(summaries, "", "ob"), 1)
}

func TestExportTable(t *testing.T) {
	summaries := Aggregate([]attendance.RawRecord{
		{EmployeeID: "E1", FirstName: "Alice", Date: "2024-01-10", Shift: "general",
			Tracker: []attendance.TrackerEntry{pair("09:00", "17:00")}, Remarks: "ok"},
		{EmployeeID: "E2", FirstName: "Bob", Date: "2024-01-10"},
	})

	table := ExportTable(summaries)
	assert.Equal(t, "Attendance", table.SheetName)
	assert.Equal(t, []string{
		"Date", "EmployeeID", "Name", "Shift", "Status", "ClockIn", "ClockOut",
		"TotalActiveHours", "TotalDuration", "Attendance", "Remarks", "RemarksEditedAt",
	}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{
		"2024-01-10", "E1", "Alice", "general", "On time", "09:00", "17:00",
		"08:00:00", "08:00:00", "Present", "ok", "",
	}, table.Rows[0])
	assert.Equal(t, "--:--:--", table.Rows[1][5])
	assert.Equal(t, "--:--:--", table.Rows[1][6])
}

func TestExportBaseName(t *testing.T) {
	assert.Equal(t, "Attendance_All", ExportBaseName(""))
	assert.Equal(t, "Attendance_2024-01-10", ExportBaseName("2024-01-10"))
}
